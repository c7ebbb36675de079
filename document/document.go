package document

// Document is the ordered block sequence persisted and rendered for one
// page record in one language. Order is render order; block ids are the only
// uniqueness invariant.
type Document []Block

// MoveDirection names the two directions a block can travel in its document.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// IndexOf returns the position of the block with the given id, or -1.
func (d Document) IndexOf(id string) int {
	for i := range d {
		if d[i].ID == id {
			return i
		}
	}
	return -1
}

// Block returns the block with the given id, or nil when absent.
func (d Document) Block(id string) *Block {
	if idx := d.IndexOf(id); idx >= 0 {
		return &d[idx]
	}
	return nil
}

// MoveBlock swaps the block with the given id with its immediate neighbour in
// the requested direction. Moving past a boundary, or referencing a stale id,
// is a no-op rather than an error.
func (d Document) MoveBlock(id string, direction MoveDirection) Document {
	idx := d.IndexOf(id)
	if idx < 0 {
		return d
	}
	switch direction {
	case MoveUp:
		if idx == 0 {
			return d
		}
		d[idx-1], d[idx] = d[idx], d[idx-1]
	case MoveDown:
		if idx == len(d)-1 {
			return d
		}
		d[idx], d[idx+1] = d[idx+1], d[idx]
	}
	return d
}

// Validate checks the document invariants: unique block ids and props whose
// concrete type matches the block's declared type.
func (d Document) Validate() error {
	seen := make(map[string]struct{}, len(d))
	for i := range d {
		block := &d[i]
		if _, dup := seen[block.ID]; dup {
			return ErrDuplicateBlockID
		}
		seen[block.ID] = struct{}{}

		if !block.Type.Valid() {
			return ErrUnknownBlockType
		}
		if block.Props != nil && block.Props.blockProps() != block.Type {
			return ErrPropsMismatch
		}
	}
	return nil
}

// Clone returns a deep copy of the document so editor mutations never leak
// into rendered snapshots.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i := range d {
		out[i] = d[i]
		out[i].Props = cloneProps(d[i].Props)
	}
	return out
}

func cloneProps(p Props) Props {
	switch v := p.(type) {
	case ListProps:
		items := append([]string(nil), v.Items...)
		return ListProps{Items: items}
	case *TableProps:
		if v == nil {
			return (*TableProps)(nil)
		}
		cloned := &TableProps{
			Headers: append([]string(nil), v.Headers...),
			Rows:    make([]Row, len(v.Rows)),
		}
		for i, row := range v.Rows {
			cloned.Rows[i] = Row{
				ID:    row.ID,
				Cells: append([]Cell(nil), row.Cells...),
			}
		}
		return cloned
	default:
		// Remaining props are flat value types; a copy is already isolated.
		return p
	}
}

// Partition splits the document into its public and private blocks, keeping
// relative order within each group. The renderer uses this for privacy gating.
func (d Document) Partition() (public Document, private Document) {
	for i := range d {
		if d[i].IsPrivate {
			private = append(private, d[i])
		} else {
			public = append(public, d[i])
		}
	}
	return public, private
}
