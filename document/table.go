package document

import "strconv"

// ColumnCount returns the number of columns the table currently carries.
func (t *TableProps) ColumnCount() int {
	return len(t.Headers)
}

// SetColumnCount resizes headers and every row to n columns. Shrinking
// truncates from the end; growing appends empty headers and empty text cells.
// Values below the new boundary are preserved.
func (t *TableProps) SetColumnCount(n int) error {
	if n < 1 {
		return ErrColumnCountInvalid
	}
	t.Headers = resizeStrings(t.Headers, n)
	for i := range t.Rows {
		t.Rows[i].Cells = resizeCells(t.Rows[i].Cells, n)
	}
	return nil
}

// AddRow appends a row whose cell count matches the current header count,
// with every cell an empty text cell.
func (t *TableProps) AddRow(id string) *Row {
	cells := make([]Cell, len(t.Headers))
	for i := range cells {
		cells[i] = TextCell{}
	}
	t.Rows = append(t.Rows, Row{ID: id, Cells: cells})
	return &t.Rows[len(t.Rows)-1]
}

// DeleteRow removes the row with the given id. Stale ids are a no-op.
func (t *TableProps) DeleteRow(rowID string) {
	for i := range t.Rows {
		if t.Rows[i].ID == rowID {
			t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
			return
		}
	}
}

// Row returns the row with the given id, or nil when absent.
func (t *TableProps) Row(rowID string) *Row {
	for i := range t.Rows {
		if t.Rows[i].ID == rowID {
			return &t.Rows[i]
		}
	}
	return nil
}

// SetCellType replaces the cell at the given position with a default-valued
// cell of the new type, discarding the prior value. Stale row ids and
// out-of-range indexes are no-ops.
func (t *TableProps) SetCellType(rowID string, cellIndex int, newType CellType) {
	row := t.Row(rowID)
	if row == nil || cellIndex < 0 || cellIndex >= len(row.Cells) {
		return
	}
	if !newType.Valid() {
		return
	}
	row.Cells[cellIndex] = DefaultCell(newType)
}

// SetCell stores the given cell value at the position, normalizing it first.
// Stale row ids and out-of-range indexes are no-ops.
func (t *TableProps) SetCell(rowID string, cellIndex int, cell Cell) {
	row := t.Row(rowID)
	if row == nil || cellIndex < 0 || cellIndex >= len(row.Cells) {
		return
	}
	row.Cells[cellIndex] = NormalizeCell(cell)
}

// SetCellField updates one named field on the addressed cell, leaving the
// cell's other fields alone. Field names follow the wire form. Stale
// references, unknown fields and unparsable values are no-ops.
func (t *TableProps) SetCellField(rowID string, cellIndex int, field, value string) {
	row := t.Row(rowID)
	if row == nil || cellIndex < 0 || cellIndex >= len(row.Cells) {
		return
	}
	switch cell := row.Cells[cellIndex].(type) {
	case TextCell:
		if field != "value" {
			return
		}
		cell.Value = value
		row.Cells[cellIndex] = cell
	case LinkCell:
		switch field {
		case "text":
			cell.Text = value
		case "href":
			cell.Href = value
		case "target":
			target := LinkTarget(value)
			if !target.Valid() {
				return
			}
			cell.Target = target
		default:
			return
		}
		row.Cells[cellIndex] = cell
	case ImageCell:
		switch field {
		case "src":
			cell.Src = value
		case "alt":
			cell.Alt = value
		default:
			return
		}
		row.Cells[cellIndex] = cell
	case FileCell:
		switch field {
		case "fileName":
			cell.FileName = value
		case "fileUrl":
			cell.FileURL = value
		case "fileSize":
			size, err := strconv.ParseInt(value, 10, 64)
			if err != nil || size < 0 {
				return
			}
			cell.FileSize = size
		default:
			return
		}
		row.Cells[cellIndex] = cell
	}
}

// SetHeader updates the header label at the given index. Out-of-range indexes
// are a no-op.
func (t *TableProps) SetHeader(index int, label string) {
	if index < 0 || index >= len(t.Headers) {
		return
	}
	t.Headers[index] = label
}

// normalize re-establishes the row-width invariant after decoding: every row
// carries exactly len(Headers) cells and no nil cells remain.
func (t *TableProps) normalize() {
	if t.Headers == nil {
		t.Headers = []string{}
	}
	width := len(t.Headers)
	for i := range t.Rows {
		cells := t.Rows[i].Cells
		for j := range cells {
			if cells[j] == nil {
				cells[j] = TextCell{}
			}
		}
		if width > 0 {
			t.Rows[i].Cells = resizeCells(cells, width)
		}
	}
}

func resizeStrings(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	for len(values) < n {
		values = append(values, "")
	}
	return values
}

func resizeCells(cells []Cell, n int) []Cell {
	if len(cells) > n {
		return cells[:n]
	}
	for len(cells) < n {
		cells = append(cells, TextCell{})
	}
	return cells
}
