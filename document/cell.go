package document

import (
	"encoding/json"
	"fmt"
)

// CellType tags the variant carried by a table cell.
type CellType string

const (
	CellText  CellType = "text"
	CellLink  CellType = "link"
	CellImage CellType = "image"
	CellFile  CellType = "file"
)

// Valid reports whether the type is one of the supported cell variants.
func (t CellType) Valid() bool {
	switch t {
	case CellText, CellLink, CellImage, CellFile:
		return true
	}
	return false
}

// Cell is the closed union of table cell values. Legacy records stored bare
// strings in cell positions; those are normalized to TextCell on decode so a
// bare string never survives past the model boundary.
type Cell interface {
	cellType() CellType
}

// TextCell holds plain text content.
type TextCell struct {
	Value string `json:"value"`
}

// LinkCell holds a hyperlink with display text.
type LinkCell struct {
	Text   string     `json:"text,omitempty"`
	Href   string     `json:"href,omitempty"`
	Target LinkTarget `json:"target,omitempty"`
}

// ImageCell holds an inline image reference.
type ImageCell struct {
	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// FileCell holds a downloadable attachment reference.
type FileCell struct {
	FileName string `json:"fileName,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
}

func (TextCell) cellType() CellType  { return CellText }
func (LinkCell) cellType() CellType  { return CellLink }
func (ImageCell) cellType() CellType { return CellImage }
func (FileCell) cellType() CellType  { return CellFile }

// CellTypeOf returns the discriminator tag for a cell value.
func CellTypeOf(c Cell) CellType {
	if c == nil {
		return CellText
	}
	return c.cellType()
}

// DefaultCell returns the zero-valued cell for the given type. Used when a
// cell changes type: the prior value is discarded, not converted.
func DefaultCell(t CellType) Cell {
	switch t {
	case CellLink:
		return LinkCell{Target: TargetBlank}
	case CellImage:
		return ImageCell{}
	case CellFile:
		return FileCell{}
	default:
		return TextCell{}
	}
}

// NormalizeCell converts a legacy bare-string cell into a TextCell and passes
// typed cells through untouched. Pure, total and idempotent.
func NormalizeCell(input any) Cell {
	switch v := input.(type) {
	case nil:
		return TextCell{}
	case string:
		return TextCell{Value: v}
	case Cell:
		return v
	default:
		return TextCell{Value: fmt.Sprint(v)}
	}
}

func marshalCell(c Cell) ([]byte, error) {
	switch v := c.(type) {
	case TextCell:
		return json.Marshal(struct {
			Type  CellType `json:"type"`
			Value string   `json:"value"`
		}{CellText, v.Value})
	case LinkCell:
		return json.Marshal(struct {
			Type CellType `json:"type"`
			LinkCell
		}{CellLink, v})
	case ImageCell:
		return json.Marshal(struct {
			Type CellType `json:"type"`
			ImageCell
		}{CellImage, v})
	case FileCell:
		return json.Marshal(struct {
			Type CellType `json:"type"`
			FileCell
		}{CellFile, v})
	case nil:
		return marshalCell(TextCell{})
	default:
		return nil, fmt.Errorf("document: unsupported cell type %T", c)
	}
}

func unmarshalCell(data []byte) (Cell, error) {
	trimmed := trimJSONSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return TextCell{}, nil
	}

	// Legacy representation: a bare JSON string.
	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return nil, fmt.Errorf("document: decode legacy cell: %w", err)
		}
		return NormalizeCell(value), nil
	}

	var tag struct {
		Type CellType `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &tag); err != nil {
		return nil, fmt.Errorf("document: decode cell: %w", err)
	}

	switch tag.Type {
	case CellText, "":
		var cell TextCell
		if err := json.Unmarshal(trimmed, &cell); err != nil {
			return nil, err
		}
		return cell, nil
	case CellLink:
		var cell LinkCell
		if err := json.Unmarshal(trimmed, &cell); err != nil {
			return nil, err
		}
		return cell, nil
	case CellImage:
		var cell ImageCell
		if err := json.Unmarshal(trimmed, &cell); err != nil {
			return nil, err
		}
		return cell, nil
	case CellFile:
		var cell FileCell
		if err := json.Unmarshal(trimmed, &cell); err != nil {
			return nil, err
		}
		return cell, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCellType, tag.Type)
	}
}

// MarshalJSON encodes the row with tagged cells.
func (r Row) MarshalJSON() ([]byte, error) {
	cells := make([]json.RawMessage, 0, len(r.Cells))
	for _, cell := range r.Cells {
		encoded, err := marshalCell(cell)
		if err != nil {
			return nil, err
		}
		cells = append(cells, encoded)
	}
	return json.Marshal(struct {
		ID    string            `json:"id"`
		Cells []json.RawMessage `json:"cells"`
	}{r.ID, cells})
}

// UnmarshalJSON decodes the row, normalizing legacy bare-string cells.
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string            `json:"id"`
		Cells []json.RawMessage `json:"cells"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("document: decode row: %w", err)
	}
	cells := make([]Cell, 0, len(raw.Cells))
	for _, rawCell := range raw.Cells {
		cell, err := unmarshalCell(rawCell)
		if err != nil {
			return err
		}
		cells = append(cells, cell)
	}
	r.ID = raw.ID
	r.Cells = cells
	return nil
}

func trimJSONSpace(data []byte) []byte {
	start := 0
	for start < len(data) && isJSONSpace(data[start]) {
		start++
	}
	end := len(data)
	for end > start && isJSONSpace(data[end-1]) {
		end--
	}
	return data[start:end]
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
