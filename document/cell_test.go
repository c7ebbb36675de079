package document

import (
	"errors"
	"testing"
)

func TestNormalizeCellConvertsBareStrings(t *testing.T) {
	cell := NormalizeCell("Revenue")

	text, ok := cell.(TextCell)
	if !ok {
		t.Fatalf("expected TextCell, got %T", cell)
	}
	if text.Value != "Revenue" {
		t.Fatalf("expected value preserved, got %q", text.Value)
	}
}

func TestNormalizeCellIsIdempotent(t *testing.T) {
	typed := LinkCell{Text: "Docs", Href: "https://example.com", Target: TargetBlank}

	once := NormalizeCell(typed)
	twice := NormalizeCell(once)

	if once != twice {
		t.Fatalf("expected normalization to be idempotent, got %#v then %#v", once, twice)
	}
	if _, ok := twice.(LinkCell); !ok {
		t.Fatalf("expected LinkCell to pass through, got %T", twice)
	}
}

func TestNormalizeCellNilBecomesEmptyText(t *testing.T) {
	cell := NormalizeCell(nil)
	if cell != (TextCell{}) {
		t.Fatalf("expected empty text cell, got %#v", cell)
	}
}

func TestUnmarshalCellAcceptsLegacyString(t *testing.T) {
	cell, err := unmarshalCell([]byte(`"legacy value"`))
	if err != nil {
		t.Fatalf("unmarshalCell returned error: %v", err)
	}
	if cell != (TextCell{Value: "legacy value"}) {
		t.Fatalf("expected legacy string normalized to text cell, got %#v", cell)
	}
}

func TestUnmarshalCellRejectsUnknownType(t *testing.T) {
	_, err := unmarshalCell([]byte(`{"type":"chart"}`))
	if !errors.Is(err, ErrUnknownCellType) {
		t.Fatalf("expected ErrUnknownCellType, got %v", err)
	}
}

func TestUnmarshalCellDefaultsUntaggedObjectToText(t *testing.T) {
	cell, err := unmarshalCell([]byte(`{"value":"plain"}`))
	if err != nil {
		t.Fatalf("unmarshalCell returned error: %v", err)
	}
	if cell != (TextCell{Value: "plain"}) {
		t.Fatalf("expected text cell, got %#v", cell)
	}
}

func TestDefaultCellByType(t *testing.T) {
	if DefaultCell(CellLink) != (LinkCell{Target: TargetBlank}) {
		t.Fatal("expected link cell default to open in a new tab")
	}
	if DefaultCell(CellText) != (TextCell{}) {
		t.Fatal("expected empty text cell default")
	}
	if DefaultCell(CellImage) != (ImageCell{}) {
		t.Fatal("expected empty image cell default")
	}
	if DefaultCell(CellFile) != (FileCell{}) {
		t.Fatal("expected empty file cell default")
	}
}

func TestRowRoundTripKeepsCellVariants(t *testing.T) {
	row := Row{
		ID: "row-1",
		Cells: []Cell{
			TextCell{Value: "Q1"},
			LinkCell{Text: "Report", Href: "/reports/q1", Target: TargetSelf},
			FileCell{FileName: "q1.pdf", FileURL: "/files/q1.pdf", FileSize: 2048},
		},
	}

	encoded, err := row.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}

	var decoded Row
	if err := decoded.UnmarshalJSON(encoded); err != nil {
		t.Fatalf("UnmarshalJSON returned error: %v", err)
	}

	if decoded.ID != row.ID {
		t.Fatalf("expected row id %q, got %q", row.ID, decoded.ID)
	}
	if len(decoded.Cells) != len(row.Cells) {
		t.Fatalf("expected %d cells, got %d", len(row.Cells), len(decoded.Cells))
	}
	for i := range row.Cells {
		if decoded.Cells[i] != row.Cells[i] {
			t.Fatalf("cell %d changed across round trip: %#v vs %#v", i, row.Cells[i], decoded.Cells[i])
		}
	}
}
