package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/i18n"
)

// Context carries the per-request facts the renderer needs: whether the
// viewer is authenticated and which language variant is being displayed.
type Context struct {
	IsAuthenticated bool
	Locale          i18n.Locale
}

// Option customises renderer behaviour.
type Option func(*Renderer)

// WithLinkResolver wires the resolver used to build page-link hrefs.
func WithLinkResolver(resolver LinkResolver) Option {
	return func(r *Renderer) {
		if resolver != nil {
			r.links = resolver
		}
	}
}

// WithAuthPrompt overrides the text shown in place of private blocks for
// unauthenticated viewers.
func WithAuthPrompt(prompt string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(prompt) != "" {
			r.prompt = prompt
		}
	}
}

// Renderer maps blocks to HTML fragments. Every page shares this one
// implementation; per-page render functions duplicating the type switch are
// a defect, not a pattern to follow.
type Renderer struct {
	links  LinkResolver
	prompt string
}

const defaultAuthPrompt = "Sign in to view this content"

// New constructs a renderer with a slug-prefix link resolver by default.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		links:  PrefixLinkResolver{},
		prompt: defaultAuthPrompt,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderDocument renders a whole document applying the privacy gating policy:
// authenticated viewers (and documents without private blocks) see every
// block in original order; everyone else sees the public blocks in order
// followed by exactly one authentication prompt.
func (r *Renderer) RenderDocument(doc document.Document, ctx Context) (string, error) {
	public, private := doc.Partition()

	visible := doc
	if !ctx.IsAuthenticated && len(private) > 0 {
		visible = public
	}

	var b strings.Builder
	for i := range visible {
		fragment, err := r.Render(visible[i], ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}
	if !ctx.IsAuthenticated && len(private) > 0 {
		b.WriteString(`<div class="auth-required">` + html.EscapeString(r.prompt) + `</div>`)
	}
	return b.String(), nil
}

// Render maps one block to its HTML fragment. The switch is exhaustive over
// document.BlockTypes; an unknown type is an error, never silent output.
func (r *Renderer) Render(block document.Block, ctx Context) (string, error) {
	switch block.Type {
	case document.TypeHeading:
		return renderHeading(block), nil
	case document.TypeParagraph:
		return renderParagraph(block), nil
	case document.TypeLink:
		return renderLink(block), nil
	case document.TypeImage:
		return renderImage(block), nil
	case document.TypeList:
		return renderList(block), nil
	case document.TypeTable:
		return renderTable(block), nil
	case document.TypeFile:
		return renderFile(block), nil
	case document.TypeVideo:
		return renderVideo(block), nil
	case document.TypePageLink:
		return r.renderPageLink(block, ctx), nil
	default:
		return "", fmt.Errorf("%w: %q", document.ErrUnknownBlockType, block.Type)
	}
}

func renderHeading(block document.Block) string {
	props, _ := block.Props.(document.HeadingProps)
	level := props.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	style := styleAttr(
		stylePair{"color", props.Color},
		stylePair{"text-align", string(props.TextAlign)},
	)
	return fmt.Sprintf("<h%d%s>%s</h%d>", level, style, html.EscapeString(block.Content), level)
}

func renderParagraph(block document.Block) string {
	props, _ := block.Props.(document.ParagraphProps)
	indent := ""
	if props.TextIndent {
		indent = "2em"
	}
	style := styleAttr(
		stylePair{"text-align", string(props.TextAlign)},
		stylePair{"text-indent", indent},
	)
	return "<p" + style + ">" + html.EscapeString(block.Content) + "</p>"
}

func renderLink(block document.Block) string {
	props, _ := block.Props.(document.LinkProps)
	label := block.Content
	if label == "" {
		label = props.Href
	}
	if props.Href == "" {
		return "<span>" + html.EscapeString(label) + "</span>"
	}
	return anchor(props.Href, props.Target, label)
}

func renderImage(block document.Block) string {
	props, _ := block.Props.(document.ImageProps)
	if props.Src == "" {
		return placeholder("image")
	}
	return fmt.Sprintf(`<img src=%q alt=%q>`, props.Src, props.Alt)
}

func renderList(block document.Block) string {
	props, _ := block.Props.(document.ListProps)
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range props.Items {
		b.WriteString("<li>" + html.EscapeString(item) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func renderTable(block document.Block) string {
	props, ok := block.Props.(*document.TableProps)
	if !ok || props == nil {
		return "<table></table>"
	}
	var b strings.Builder
	b.WriteString("<table>")
	if len(props.Headers) > 0 {
		b.WriteString("<thead><tr>")
		for _, header := range props.Headers {
			b.WriteString("<th>" + html.EscapeString(header) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range props.Rows {
		b.WriteString("<tr>")
		for _, cell := range row.Cells {
			b.WriteString("<td>" + renderCell(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// renderCell maps one table cell to its inline fragment. Legacy bare-string
// cells never reach this point; decode normalizes them to text cells first.
func renderCell(cell document.Cell) string {
	switch v := cell.(type) {
	case document.TextCell:
		return html.EscapeString(v.Value)
	case document.LinkCell:
		label := v.Text
		if label == "" {
			label = v.Href
		}
		if v.Href == "" {
			return html.EscapeString(label)
		}
		return anchor(v.Href, v.Target, label)
	case document.ImageCell:
		if v.Src == "" {
			return placeholder("image")
		}
		return fmt.Sprintf(`<img src=%q alt=%q>`, v.Src, v.Alt)
	case document.FileCell:
		if v.FileURL == "" {
			return placeholder("file")
		}
		label := v.FileName
		if label == "" {
			label = v.FileURL
		}
		return fmt.Sprintf(`<a href=%q download>%s</a>`, v.FileURL, html.EscapeString(label))
	default:
		return ""
	}
}

func renderFile(block document.Block) string {
	props, _ := block.Props.(document.FileProps)
	if props.FileURL == "" {
		return placeholder("file")
	}
	label := props.FileName
	if label == "" {
		label = props.FileURL
	}
	if props.FileSize > 0 {
		label = fmt.Sprintf("%s (%s)", label, formatFileSize(props.FileSize))
	}
	return fmt.Sprintf(`<a href=%q download>%s</a>`, props.FileURL, html.EscapeString(label))
}

func renderVideo(block document.Block) string {
	props, _ := block.Props.(document.VideoProps)
	if props.VideoSrc == "" {
		return placeholder("video")
	}
	var b strings.Builder
	b.WriteString("<video")
	b.WriteString(fmt.Sprintf(" src=%q", props.VideoSrc))
	if props.VideoTitle != "" {
		b.WriteString(fmt.Sprintf(" title=%q", props.VideoTitle))
	}
	if props.VideoWidth > 0 {
		b.WriteString(fmt.Sprintf(` width="%d"`, props.VideoWidth))
	}
	if props.VideoHeight > 0 {
		b.WriteString(fmt.Sprintf(` height="%d"`, props.VideoHeight))
	}
	if props.Controls {
		b.WriteString(" controls")
	}
	if props.Autoplay {
		b.WriteString(" autoplay")
	}
	if props.Loop {
		b.WriteString(" loop")
	}
	if props.Muted {
		b.WriteString(" muted")
	}
	b.WriteString("></video>")
	return b.String()
}

func (r *Renderer) renderPageLink(block document.Block, ctx Context) string {
	props, _ := block.Props.(document.PageLinkProps)
	label := props.LinkText
	if label == "" {
		label = props.PageTitle
	}
	if label == "" {
		label = block.Content
	}

	href := ""
	if r.links != nil && props.PageSlug != "" {
		if resolved, err := r.links.PageURL(props.PageSlug, ctx.Locale); err == nil {
			href = resolved
		}
	}
	if href == "" {
		return "<span>" + html.EscapeString(label) + "</span>"
	}
	return anchor(href, document.TargetSelf, label)
}

func anchor(href string, target document.LinkTarget, label string) string {
	attrs := fmt.Sprintf(" href=%q", href)
	if target == document.TargetBlank {
		attrs += ` target="_blank" rel="noopener noreferrer"`
	}
	return "<a" + attrs + ">" + html.EscapeString(label) + "</a>"
}

func placeholder(kind string) string {
	return fmt.Sprintf(`<div class="asset-placeholder" data-kind=%q></div>`, kind)
}

type stylePair struct {
	name  string
	value string
}

// styleAttr builds an inline style attribute from the props-driven pairs,
// skipping blanks. Styles bind declaratively here; there is no post-render
// pass touching rendered output.
func styleAttr(pairs ...stylePair) string {
	var parts []string
	for _, pair := range pairs {
		if strings.TrimSpace(pair.value) == "" {
			continue
		}
		parts = append(parts, pair.name+":"+pair.value)
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" style=%q", strings.Join(parts, ";"))
}

// formatFileSize renders a byte count with a coarse human unit.
func formatFileSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
