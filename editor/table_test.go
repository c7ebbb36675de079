package editor

import (
	"testing"

	"github.com/goliatone/go-blockdoc/document"
)

func newTableSession(t *testing.T) (*Session, string) {
	t.Helper()
	session := NewSession(nil, WithIDGenerator(sequentialIDs("id")))
	block, err := session.AddBlock(document.TypeTable)
	if err != nil {
		t.Fatalf("AddBlock returned error: %v", err)
	}
	if err := session.SetColumnCount(block.ID, 2); err != nil {
		t.Fatalf("SetColumnCount returned error: %v", err)
	}
	session.AddTableRow(block.ID)
	return session, block.ID
}

func TestTableOperationsThroughSession(t *testing.T) {
	session, blockID := newTableSession(t)

	session.SetTableHeader(blockID, 0, "Name")
	session.SetTableHeader(blockID, 1, "Link")

	doc := session.Document()
	table := doc.Block(blockID).Props.(*document.TableProps)
	if table.Headers[0] != "Name" || table.Headers[1] != "Link" {
		t.Fatalf("unexpected headers: %#v", table.Headers)
	}
	if len(table.Rows) != 1 || len(table.Rows[0].Cells) != 2 {
		t.Fatalf("unexpected row shape: %#v", table.Rows)
	}

	rowID := table.Rows[0].ID
	session.SetCell(blockID, rowID, 0, document.TextCell{Value: "Ada"})
	session.SetCellType(blockID, rowID, 1, document.CellLink)

	table = session.Document().Block(blockID).Props.(*document.TableProps)
	if table.Rows[0].Cells[0] != (document.TextCell{Value: "Ada"}) {
		t.Fatalf("unexpected cell value: %#v", table.Rows[0].Cells[0])
	}
	if table.Rows[0].Cells[1] != (document.LinkCell{Target: document.TargetBlank}) {
		t.Fatalf("expected default link cell after type change, got %#v", table.Rows[0].Cells[1])
	}
}

func TestSetCellFieldThroughSession(t *testing.T) {
	session, blockID := newTableSession(t)
	rowID := session.Document().Block(blockID).Props.(*document.TableProps).Rows[0].ID

	session.SetCellType(blockID, rowID, 1, document.CellLink)
	session.SetCellField(blockID, rowID, 1, "href", "https://example.com")

	table := session.Document().Block(blockID).Props.(*document.TableProps)
	link := table.Rows[0].Cells[1].(document.LinkCell)
	if link.Href != "https://example.com" {
		t.Fatalf("expected href updated, got %#v", link)
	}

	session.SetCellField("missing", rowID, 1, "href", "x")
	session.SetCellField(blockID, "missing", 1, "href", "x")
}

func TestTableOperationsOnNonTableAreNoOps(t *testing.T) {
	session := NewSession(nil, WithIDGenerator(sequentialIDs("id")))
	block, _ := session.AddBlock(document.TypeParagraph)

	if err := session.SetColumnCount(block.ID, 3); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	session.AddTableRow(block.ID)
	session.SetTableHeader(block.ID, 0, "x")
	session.SetCellType(block.ID, "r1", 0, document.CellLink)

	if session.Document().Block(block.ID).Props.(document.ParagraphProps) != (document.ParagraphProps{TextAlign: document.AlignLeft}) {
		t.Fatal("paragraph props changed by table operations")
	}
}

func TestDeleteTableRowClearsCellEditMode(t *testing.T) {
	session, blockID := newTableSession(t)
	rowID := session.Document().Block(blockID).Props.(*document.TableProps).Rows[0].ID

	session.EditCell(CellRef{BlockID: blockID, RowID: rowID, CellIndex: 0})
	if session.EditingCell() == nil {
		t.Fatal("expected cell in edit mode")
	}

	session.DeleteTableRow(blockID, rowID)
	if session.EditingCell() != nil {
		t.Fatal("expected cell edit mode cleared after row deletion")
	}
}

func TestEditCellStaleReferenceClearsMode(t *testing.T) {
	session, blockID := newTableSession(t)
	rowID := session.Document().Block(blockID).Props.(*document.TableProps).Rows[0].ID

	session.EditCell(CellRef{BlockID: blockID, RowID: rowID, CellIndex: 0})
	session.EditCell(CellRef{BlockID: blockID, RowID: "missing", CellIndex: 0})
	if session.EditingCell() != nil {
		t.Fatal("expected stale cell reference to clear edit mode")
	}

	session.EditCell(CellRef{BlockID: blockID, RowID: rowID, CellIndex: 9})
	if session.EditingCell() != nil {
		t.Fatal("expected out-of-range index to clear edit mode")
	}
}
