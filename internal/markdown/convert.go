package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/internal/identity"
)

// Converter maps a markdown body onto a block document. The converter is
// stateless, so one instance can be shared across imports.
//
// Block IDs are derived deterministically from the owning page ID and the
// block's ordinal, so re-importing the same source yields the same IDs and a
// diff-friendly document.
type Converter struct {
	engine goldmark.Markdown
}

// NewConverter builds a converter with GFM extensions enabled so tables and
// autolinks in the source survive the trip.
func NewConverter() *Converter {
	return &Converter{
		engine: goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Linkify)),
	}
}

// Convert parses the body and emits one block per top-level markdown node.
// Node kinds without a block equivalent are folded into paragraphs; nothing
// in the source is silently dropped.
func (c *Converter) Convert(pageID uuid.UUID, body []byte) (document.Document, error) {
	root := c.engine.Parser().Parse(text.NewReader(body))

	var doc document.Document
	ordinal := 0

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		block, ok, err := c.convertNode(pageID, ordinal, node, body)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		doc = append(doc, block)
		ordinal++
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return doc, nil
}

func (c *Converter) convertNode(pageID uuid.UUID, ordinal int, node ast.Node, source []byte) (document.Block, bool, error) {
	id := identity.BlockUUID(pageID, ordinal).String()

	switch n := node.(type) {
	case *ast.Heading:
		props := document.HeadingProps{Level: clampLevel(n.Level)}
		defaults := document.DefaultProps(document.TypeHeading).(document.HeadingProps)
		props.Color = defaults.Color
		props.TextAlign = defaults.TextAlign
		return document.Block{
			ID:      id,
			Type:    document.TypeHeading,
			Content: nodeText(n, source),
			Props:   props,
		}, true, nil

	case *ast.Paragraph:
		if img, ok := soleImage(n, source); ok {
			return document.Block{
				ID:   id,
				Type: document.TypeImage,
				Props: document.ImageProps{
					Src: string(img.Destination),
					Alt: nodeText(img, source),
				},
			}, true, nil
		}
		if link, ok := soleLink(n); ok {
			return document.Block{
				ID:      id,
				Type:    document.TypeLink,
				Content: nodeText(link, source),
				Props: document.LinkProps{
					Href:   string(link.Destination),
					Target: document.TargetBlank,
				},
			}, true, nil
		}
		return document.Block{
			ID:      id,
			Type:    document.TypeParagraph,
			Content: nodeText(n, source),
			Props:   document.DefaultProps(document.TypeParagraph),
		}, true, nil

	case *ast.List:
		items := listItems(n, source)
		if len(items) == 0 {
			return document.Block{}, false, nil
		}
		return document.Block{
			ID:    id,
			Type:  document.TypeList,
			Props: document.ListProps{Items: items},
		}, true, nil

	case *extast.Table:
		props := tableProps(id, n, source)
		if props == nil {
			return document.Block{}, false, nil
		}
		return document.Block{
			ID:    id,
			Type:  document.TypeTable,
			Props: props,
		}, true, nil

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		content := rawLines(node, source)
		if content == "" {
			return document.Block{}, false, nil
		}
		return document.Block{
			ID:      id,
			Type:    document.TypeParagraph,
			Content: content,
			Props:   document.DefaultProps(document.TypeParagraph),
		}, true, nil

	case *ast.Blockquote:
		return document.Block{
			ID:      id,
			Type:    document.TypeParagraph,
			Content: nodeText(n, source),
			Props:   document.DefaultProps(document.TypeParagraph),
		}, true, nil

	case *ast.ThematicBreak, *ast.HTMLBlock:
		return document.Block{}, false, nil

	default:
		content := nodeText(node, source)
		if content == "" {
			return document.Block{}, false, nil
		}
		return document.Block{
			ID:      id,
			Type:    document.TypeParagraph,
			Content: content,
			Props:   document.DefaultProps(document.TypeParagraph),
		}, true, nil
	}
}

// soleImage reports the single image child of a paragraph that has no other
// textual content, the "image on its own line" convention.
func soleImage(p *ast.Paragraph, source []byte) (*ast.Image, bool) {
	var img *ast.Image
	for child := p.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Image:
			if img != nil {
				return nil, false
			}
			img = c
		case *ast.Text:
			if len(bytes.TrimSpace(c.Segment.Value(source))) > 0 {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return img, img != nil
}

// soleLink reports the single link child of a paragraph with no surrounding
// text, which imports as a standalone link block.
func soleLink(p *ast.Paragraph) (*ast.Link, bool) {
	child := p.FirstChild()
	link, ok := child.(*ast.Link)
	if !ok || child.NextSibling() != nil {
		return nil, false
	}
	return link, true
}

func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if value := nodeText(item, source); value != "" {
			items = append(items, value)
		}
	}
	return items
}

func tableProps(blockID string, table *extast.Table, source []byte) *document.TableProps {
	props := &document.TableProps{}
	rowOrdinal := 0

	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *extast.TableHeader:
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				props.Headers = append(props.Headers, nodeText(cell, source))
			}
		case *extast.TableRow:
			cells := make([]document.Cell, 0, len(props.Headers))
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, document.TextCell{Value: nodeText(cell, source)})
			}
			props.Rows = append(props.Rows, document.Row{
				ID:    identity.RowUUID(blockID, rowOrdinal).String(),
				Cells: cells,
			})
			rowOrdinal++
		}
	}

	if len(props.Headers) == 0 && len(props.Rows) == 0 {
		return nil
	}
	return props
}

func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

func rawLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return strings.TrimSpace(buf.String())
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
