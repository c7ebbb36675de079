package document

import (
	"strings"
	"testing"
)

func TestEncodeEmptyDocumentIsArray(t *testing.T) {
	for _, doc := range []Document{nil, {}} {
		data, err := Encode(doc)
		if err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}
		if string(data) != "[]" {
			t.Fatalf("expected empty array, got %s", data)
		}
	}
}

func TestDecodeAcceptsStringEncodedForm(t *testing.T) {
	native := `[{"id":"b1","type":"paragraph","content":"hi"}]`
	wrapped := `"[{\"id\":\"b1\",\"type\":\"paragraph\",\"content\":\"hi\"}]"`

	for _, payload := range []string{native, wrapped} {
		doc, err := Decode([]byte(payload))
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", payload, err)
		}
		if len(doc) != 1 || doc[0].ID != "b1" || doc[0].Content != "hi" {
			t.Fatalf("unexpected document: %#v", doc)
		}
	}
}

func TestDecodeCoercesIsPrivateVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"1"`, true},
		{`1`, true},
		{`0`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		payload := `[{"id":"b1","type":"paragraph","isPrivate":` + tc.raw + `}]`
		doc, err := Decode([]byte(payload))
		if err != nil {
			t.Fatalf("Decode with isPrivate=%s returned error: %v", tc.raw, err)
		}
		if doc[0].IsPrivate != tc.want {
			t.Fatalf("isPrivate=%s: expected %v, got %v", tc.raw, tc.want, doc[0].IsPrivate)
		}
	}
}

func TestEncodeAlwaysWritesBooleanIsPrivate(t *testing.T) {
	doc := Document{{ID: "b1", Type: TypeParagraph, IsPrivate: true}}

	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(string(data), `"isPrivate":true`) {
		t.Fatalf("expected boolean isPrivate in output, got %s", data)
	}
}

func TestDecodeNormalizesLegacyTableCells(t *testing.T) {
	payload := `[{"id":"b1","type":"table","props":{"headers":["Name"],"rows":[{"id":"r1","cells":["bare string"]}]}}]`

	doc, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	table, ok := doc[0].Props.(*TableProps)
	if !ok {
		t.Fatalf("expected table props, got %T", doc[0].Props)
	}
	if table.Rows[0].Cells[0] != (TextCell{Value: "bare string"}) {
		t.Fatalf("expected legacy cell normalized, got %#v", table.Rows[0].Cells[0])
	}
}

func TestDecodeVideoControlsDefaultTrue(t *testing.T) {
	payload := `[{"id":"b1","type":"video","props":{"videoSrc":"/v.mp4"}}]`

	doc, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	video := doc[0].Props.(VideoProps)
	if !video.Controls {
		t.Fatal("expected controls to default to true when omitted")
	}

	payload = `[{"id":"b1","type":"video","props":{"videoSrc":"/v.mp4","controls":false}}]`
	doc, err = Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if doc[0].Props.(VideoProps).Controls {
		t.Fatal("expected explicit controls:false respected")
	}
}

func TestDecodeRejectsUnknownBlockType(t *testing.T) {
	_, err := Decode([]byte(`[{"id":"b1","type":"carousel"}]`))
	if err == nil {
		t.Fatal("expected error for unknown block type")
	}
}

func TestDecodeLenientFallsBackOnCorruptPayload(t *testing.T) {
	doc, ok := DecodeLenient([]byte(`{"not":"an array`))
	if ok {
		t.Fatal("expected ok=false for corrupt payload")
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %#v", doc)
	}

	doc, ok = DecodeLenient([]byte(`[]`))
	if !ok {
		t.Fatal("expected ok=true for clean payload")
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %#v", doc)
	}
}

func TestRoundTripPreservesDocument(t *testing.T) {
	doc := Document{
		{ID: "b1", Type: TypeHeading, Content: "Title", Props: HeadingProps{Level: 3, Color: "#112233", TextAlign: AlignCenter}},
		{ID: "b2", Type: TypeTable, Props: &TableProps{
			Headers: []string{"Name", "Link"},
			Rows: []Row{{
				ID:    "r1",
				Cells: []Cell{TextCell{Value: "Docs"}, LinkCell{Text: "open", Href: "/docs", Target: TargetSelf}},
			}},
		}},
		{ID: "b3", Type: TypePageLink, Content: "About us", Props: PageLinkProps{PageSlug: "about", PageTitle: "About"}, IsPrivate: true},
	}

	encoded, err := EncodeString(doc)
	if err != nil {
		t.Fatalf("EncodeString returned error: %v", err)
	}
	decoded, err := DecodeString(encoded)
	if err != nil {
		t.Fatalf("DecodeString returned error: %v", err)
	}

	if len(decoded) != len(doc) {
		t.Fatalf("expected %d blocks, got %d", len(doc), len(decoded))
	}
	if decoded[0].Props != doc[0].Props {
		t.Fatalf("heading props changed: %#v vs %#v", doc[0].Props, decoded[0].Props)
	}
	table := decoded[1].Props.(*TableProps)
	if table.Rows[0].Cells[1] != (LinkCell{Text: "open", Href: "/docs", Target: TargetSelf}) {
		t.Fatalf("link cell changed: %#v", table.Rows[0].Cells[1])
	}
	if !decoded[2].IsPrivate {
		t.Fatal("expected isPrivate preserved")
	}
}
