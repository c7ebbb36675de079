package markdown

import (
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/internal/identity"
)

const convertFixture = `# Welcome

This is the intro paragraph.

![Team photo](/img/team.png)

[Read the docs](https://example.com/docs)

- First item
- Second item

| Name | Role |
| ---- | ---- |
| Ada  | Lead |
`

func TestConvertMapsTopLevelNodes(t *testing.T) {
	pageID := identity.PageUUID("welcome")
	converter := NewConverter()

	doc, err := converter.Convert(pageID, []byte(convertFixture))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if len(doc) != 6 {
		t.Fatalf("expected 6 blocks, got %d: %#v", len(doc), doc)
	}

	if doc[0].Type != document.TypeHeading || doc[0].Content != "Welcome" {
		t.Fatalf("unexpected heading block: %#v", doc[0])
	}
	heading := doc[0].Props.(document.HeadingProps)
	if heading.Level != 1 {
		t.Fatalf("expected level 1 heading, got %d", heading.Level)
	}

	if doc[1].Type != document.TypeParagraph || doc[1].Content != "This is the intro paragraph." {
		t.Fatalf("unexpected paragraph block: %#v", doc[1])
	}

	if doc[2].Type != document.TypeImage {
		t.Fatalf("expected image block, got %s", doc[2].Type)
	}
	image := doc[2].Props.(document.ImageProps)
	if image.Src != "/img/team.png" || image.Alt != "Team photo" {
		t.Fatalf("unexpected image props: %#v", image)
	}

	if doc[3].Type != document.TypeLink || doc[3].Content != "Read the docs" {
		t.Fatalf("unexpected link block: %#v", doc[3])
	}
	if doc[3].Props.(document.LinkProps).Href != "https://example.com/docs" {
		t.Fatalf("unexpected link props: %#v", doc[3].Props)
	}

	if doc[4].Type != document.TypeList {
		t.Fatalf("expected list block, got %s", doc[4].Type)
	}
	list := doc[4].Props.(document.ListProps)
	if len(list.Items) != 2 || list.Items[0] != "First item" {
		t.Fatalf("unexpected list items: %#v", list.Items)
	}

	if doc[5].Type != document.TypeTable {
		t.Fatalf("expected table block, got %s", doc[5].Type)
	}
	table := doc[5].Props.(*document.TableProps)
	if len(table.Headers) != 2 || table.Headers[0] != "Name" {
		t.Fatalf("unexpected headers: %#v", table.Headers)
	}
	if len(table.Rows) != 1 || table.Rows[0].Cells[0] != (document.TextCell{Value: "Ada"}) {
		t.Fatalf("unexpected rows: %#v", table.Rows)
	}
}

func TestConvertBlockIDsAreDeterministic(t *testing.T) {
	pageID := identity.PageUUID("welcome")
	converter := NewConverter()

	first, err := converter.Convert(pageID, []byte(convertFixture))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	second, err := converter.Convert(pageID, []byte(convertFixture))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("block %d id changed across runs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}

	other, err := converter.Convert(identity.PageUUID("other-page"), []byte(convertFixture))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if other[0].ID == first[0].ID {
		t.Fatal("expected ids to differ across pages")
	}
}

func TestConvertEmptyBodyYieldsEmptyDocument(t *testing.T) {
	doc, err := NewConverter().Convert(uuid.New(), []byte(""))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %#v", doc)
	}
}

func TestConvertCodeBlockFoldsIntoParagraph(t *testing.T) {
	source := "```\nfmt.Println(\"hi\")\n```\n"
	doc, err := NewConverter().Convert(uuid.New(), []byte(source))
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if len(doc) != 1 || doc[0].Type != document.TypeParagraph {
		t.Fatalf("expected one paragraph block, got %#v", doc)
	}
	if doc[0].Content != `fmt.Println("hi")` {
		t.Fatalf("unexpected content: %q", doc[0].Content)
	}
}
