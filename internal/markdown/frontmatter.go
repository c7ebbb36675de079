package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-blockdoc/i18n"
)

// FrontMatter carries the page-level metadata a markdown source can declare
// ahead of its body.
type FrontMatter struct {
	Title    string `yaml:"title" toml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Slug     string `yaml:"slug" toml:"slug" json:"slug"`
	Locale   string `yaml:"locale" toml:"locale" json:"locale"`
	Private  bool   `yaml:"private" toml:"private" json:"private"`
}

// ParseFrontMatter splits a markdown source into metadata and body. Sources
// without a frontmatter block return zero metadata and the body untouched.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta.Title = strings.TrimSpace(meta.Title)
	meta.Subtitle = strings.TrimSpace(meta.Subtitle)
	meta.Slug = strings.TrimSpace(meta.Slug)
	meta.Locale = strings.TrimSpace(meta.Locale)
	return meta, body, nil
}

// ResolvedLocale maps the declared locale onto a supported one, falling back
// to the default locale for unknown codes.
func (fm FrontMatter) ResolvedLocale() i18n.Locale {
	return i18n.ParseLocale(fm.Locale)
}
