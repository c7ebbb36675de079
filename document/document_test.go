package document

import (
	"errors"
	"testing"
)

func sampleDocument() Document {
	return Document{
		{ID: "b1", Type: TypeHeading, Content: "Title", Props: DefaultProps(TypeHeading)},
		{ID: "b2", Type: TypeParagraph, Content: "Body", Props: DefaultProps(TypeParagraph)},
		{ID: "b3", Type: TypeParagraph, Content: "Secret", Props: DefaultProps(TypeParagraph), IsPrivate: true},
	}
}

func TestMoveBlockSwapsNeighbours(t *testing.T) {
	doc := sampleDocument()

	doc.MoveBlock("b2", MoveUp)

	if doc[0].ID != "b2" || doc[1].ID != "b1" {
		t.Fatalf("expected b2 moved up, got order %s,%s,%s", doc[0].ID, doc[1].ID, doc[2].ID)
	}
}

func TestMoveBlockBoundaryIsNoOp(t *testing.T) {
	doc := sampleDocument()

	doc.MoveBlock("b1", MoveUp)
	doc.MoveBlock("b3", MoveDown)

	if doc[0].ID != "b1" || doc[2].ID != "b3" {
		t.Fatalf("expected order untouched, got %s,%s,%s", doc[0].ID, doc[1].ID, doc[2].ID)
	}
}

func TestMoveBlockStaleIDIsNoOp(t *testing.T) {
	doc := sampleDocument()
	doc.MoveBlock("missing", MoveDown)
	if doc[0].ID != "b1" {
		t.Fatalf("expected order untouched, got %s first", doc[0].ID)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	doc := sampleDocument()
	doc = append(doc, Block{ID: "b1", Type: TypeParagraph})

	if err := doc.Validate(); !errors.Is(err, ErrDuplicateBlockID) {
		t.Fatalf("expected ErrDuplicateBlockID, got %v", err)
	}
}

func TestValidateRejectsPropsMismatch(t *testing.T) {
	doc := Document{
		{ID: "b1", Type: TypeHeading, Props: ParagraphProps{}},
	}
	if err := doc.Validate(); !errors.Is(err, ErrPropsMismatch) {
		t.Fatalf("expected ErrPropsMismatch, got %v", err)
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	doc := Document{{ID: "b1", Type: "carousel"}}
	if err := doc.Validate(); !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}
}

func TestCloneIsolatesTableMutations(t *testing.T) {
	table := &TableProps{
		Headers: []string{"Name"},
		Rows:    []Row{{ID: "r1", Cells: []Cell{TextCell{Value: "original"}}}},
	}
	doc := Document{{ID: "b1", Type: TypeTable, Props: table}}

	clone := doc.Clone()
	cloned := clone[0].Props.(*TableProps)
	cloned.Rows[0].Cells[0] = TextCell{Value: "mutated"}
	cloned.Headers[0] = "Changed"

	if table.Rows[0].Cells[0] != (TextCell{Value: "original"}) {
		t.Fatal("clone mutation leaked into the source table row")
	}
	if table.Headers[0] != "Name" {
		t.Fatal("clone mutation leaked into the source headers")
	}
}

func TestCloneIsolatesListItems(t *testing.T) {
	doc := Document{{ID: "b1", Type: TypeList, Props: ListProps{Items: []string{"one"}}}}

	clone := doc.Clone()
	clone[0].Props.(ListProps).Items[0] = "changed"

	if doc[0].Props.(ListProps).Items[0] != "one" {
		t.Fatal("clone mutation leaked into the source list")
	}
}

func TestPartitionKeepsRelativeOrder(t *testing.T) {
	doc := Document{
		{ID: "pub1"},
		{ID: "priv1", IsPrivate: true},
		{ID: "pub2"},
		{ID: "priv2", IsPrivate: true},
	}

	public, private := doc.Partition()

	if len(public) != 2 || public[0].ID != "pub1" || public[1].ID != "pub2" {
		t.Fatalf("unexpected public partition: %#v", public)
	}
	if len(private) != 2 || private[0].ID != "priv1" || private[1].ID != "priv2" {
		t.Fatalf("unexpected private partition: %#v", private)
	}
}
