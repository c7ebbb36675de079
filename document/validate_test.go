package document

import (
	"errors"
	"testing"
)

func TestValidateBlockHeadingLevelBounds(t *testing.T) {
	block := Block{ID: "b1", Type: TypeHeading, Props: HeadingProps{Level: 7, Color: "#000000"}}
	if err := ValidateBlock(block); !errors.Is(err, ErrHeadingLevelInvalid) {
		t.Fatalf("expected ErrHeadingLevelInvalid for level above 6, got %v", err)
	}

	block.Props = HeadingProps{Level: 0, Color: "#000000"}
	if err := ValidateBlock(block); !errors.Is(err, ErrHeadingLevelInvalid) {
		t.Fatalf("expected ErrHeadingLevelInvalid for level below 1, got %v", err)
	}

	block.Props = HeadingProps{Level: 3, Color: "#abc", TextAlign: AlignRight}
	if err := ValidateBlock(block); err != nil {
		t.Fatalf("expected valid heading, got %v", err)
	}
}

func TestValidateBlockRejectsBadColor(t *testing.T) {
	block := Block{ID: "b1", Type: TypeHeading, Props: HeadingProps{Level: 2, Color: "red"}}
	if err := ValidateBlock(block); !errors.Is(err, ErrColorInvalid) {
		t.Fatalf("expected ErrColorInvalid for non-hex color, got %v", err)
	}
}

func TestValidateBlockRejectsBadEnums(t *testing.T) {
	block := Block{ID: "b1", Type: TypeParagraph, Props: ParagraphProps{TextAlign: "middle"}}
	if err := ValidateBlock(block); !errors.Is(err, ErrTextAlignInvalid) {
		t.Fatalf("expected ErrTextAlignInvalid, got %v", err)
	}

	block = Block{ID: "b1", Type: TypeLink, Props: LinkProps{Href: "https://example.com", Target: "_parent"}}
	if err := ValidateBlock(block); !errors.Is(err, ErrLinkTargetInvalid) {
		t.Fatalf("expected ErrLinkTargetInvalid, got %v", err)
	}

	// Empty enum values fall back to renderer defaults and stay valid.
	block = Block{ID: "b1", Type: TypeParagraph, Props: ParagraphProps{}}
	if err := ValidateBlock(block); err != nil {
		t.Fatalf("expected empty align accepted, got %v", err)
	}
}

func TestIsValidationError(t *testing.T) {
	badHeading := Block{ID: "b1", Type: TypeHeading, Props: HeadingProps{Level: 9}}
	if err := ValidateBlock(badHeading); !IsValidationError(err) {
		t.Fatalf("expected heading bound failure recognized, got %v", err)
	}

	noHref := Block{ID: "b1", Type: TypeLink, Props: LinkProps{}}
	if err := ValidateBlock(noHref); !IsValidationError(err) {
		t.Fatalf("expected ozzo rule failure recognized, got %v", err)
	}

	if IsValidationError(nil) {
		t.Fatal("nil is not a validation error")
	}
	if IsValidationError(errors.New("connection refused")) {
		t.Fatal("infrastructure errors are not validation errors")
	}
}

func TestValidateBlockLinkRequiresHref(t *testing.T) {
	block := Block{ID: "b1", Type: TypeLink, Props: LinkProps{Target: TargetBlank}}
	if err := ValidateBlock(block); err == nil {
		t.Fatal("expected error for missing href")
	}

	block.Props = LinkProps{Href: "https://example.com", Target: TargetBlank}
	if err := ValidateBlock(block); err != nil {
		t.Fatalf("expected valid link, got %v", err)
	}
}

func TestValidateBlockPageLinkRequiresSlug(t *testing.T) {
	block := Block{ID: "b1", Type: TypePageLink, Props: PageLinkProps{PageTitle: "About"}}
	if err := ValidateBlock(block); err == nil {
		t.Fatal("expected error for missing page slug")
	}
}

func TestValidateBlockTableRowWidth(t *testing.T) {
	block := Block{ID: "b1", Type: TypeTable, Props: &TableProps{
		Headers: []string{"A", "B"},
		Rows:    []Row{{ID: "r1", Cells: []Cell{TextCell{}}}},
	}}
	if err := ValidateBlock(block); !errors.Is(err, ErrColumnCountInvalid) {
		t.Fatalf("expected ErrColumnCountInvalid, got %v", err)
	}
}

func TestValidateBlockRequiresID(t *testing.T) {
	block := Block{Type: TypeParagraph}
	if err := ValidateBlock(block); err == nil {
		t.Fatal("expected error for missing block id")
	}
}

func TestValidateForSaveWalksEveryBlock(t *testing.T) {
	doc := Document{
		{ID: "b1", Type: TypeParagraph, Props: DefaultProps(TypeParagraph)},
		{ID: "b2", Type: TypeLink, Props: LinkProps{}},
	}
	if err := ValidateForSave(doc); err == nil {
		t.Fatal("expected per-block rule failure to surface")
	}
}

func TestValidateEncodedAcceptsBothForms(t *testing.T) {
	native := `[{"id":"b1","type":"paragraph","isPrivate":"true"}]`
	wrapped := `"[{\"id\":\"b1\",\"type\":\"paragraph\"}]"`

	for _, payload := range []string{native, wrapped, "[]", ""} {
		if err := ValidateEncoded([]byte(payload)); err != nil {
			t.Fatalf("ValidateEncoded(%q) returned error: %v", payload, err)
		}
	}
}

func TestValidateEncodedRejectsUnknownType(t *testing.T) {
	if err := ValidateEncoded([]byte(`[{"id":"b1","type":"carousel"}]`)); err == nil {
		t.Fatal("expected schema violation for unknown type")
	}
	if err := ValidateEncoded([]byte(`[{"type":"paragraph"}]`)); err == nil {
		t.Fatal("expected schema violation for missing id")
	}
}
