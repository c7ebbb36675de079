package editor

import "github.com/goliatone/go-blockdoc/document"

// tableProps returns the table props for a block id, or nil when the id is
// stale or the block is not a table. Callers treat nil as a no-op.
func (s *Session) tableProps(id string) *document.TableProps {
	block := s.doc.Block(id)
	if block == nil || block.Type != document.TypeTable {
		return nil
	}
	props, _ := block.Props.(*document.TableProps)
	return props
}

// SetColumnCount resizes the table block's headers and rows to n columns,
// preserving every value below the new boundary.
func (s *Session) SetColumnCount(id string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	props := s.tableProps(id)
	if props == nil {
		return nil
	}
	return props.SetColumnCount(n)
}

// AddTableRow appends a row with one empty text cell per current header.
func (s *Session) AddTableRow(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(id)
	if props == nil {
		return
	}
	props.AddRow(s.id())
}

// DeleteTableRow removes the row with the given id from the table block.
func (s *Session) DeleteTableRow(id, rowID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(id)
	if props == nil {
		return
	}
	props.DeleteRow(rowID)
	if s.cellEdit != nil && s.cellEdit.BlockID == id && s.cellEdit.RowID == rowID {
		s.cellEdit = nil
	}
}

// SetCellType replaces the addressed cell with a default-valued cell of the
// new type, discarding the prior value.
func (s *Session) SetCellType(id, rowID string, cellIndex int, newType document.CellType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(id)
	if props == nil {
		return
	}
	props.SetCellType(rowID, cellIndex, newType)
}

// SetCell stores a cell value at the addressed position.
func (s *Session) SetCell(id, rowID string, cellIndex int, cell document.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(id)
	if props == nil {
		return
	}
	props.SetCell(rowID, cellIndex, cell)
}

// SetCellField updates one named field on the addressed cell, keeping the
// rest of the cell's value.
func (s *Session) SetCellField(id, rowID string, cellIndex int, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(id)
	if props == nil {
		return
	}
	props.SetCellField(rowID, cellIndex, field, value)
}

// SetTableHeader updates the header label at the given column index.
func (s *Session) SetTableHeader(id string, index int, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(id)
	if props == nil {
		return
	}
	props.SetHeader(index, label)
}

// EditCell puts the addressed table cell into edit mode. Stale references
// clear cell edit mode instead.
func (s *Session) EditCell(ref CellRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	props := s.tableProps(ref.BlockID)
	if props == nil {
		s.cellEdit = nil
		return
	}
	row := props.Row(ref.RowID)
	if row == nil || ref.CellIndex < 0 || ref.CellIndex >= len(row.Cells) {
		s.cellEdit = nil
		return
	}
	s.cellEdit = &ref
}
