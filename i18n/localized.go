package i18n

import (
	"strings"

	"github.com/goliatone/go-blockdoc/document"
)

// Text holds the up-to-three parallel variants of a scalar record field
// (e.g. title/titleEn/titleBe). Each variant is independently optional.
type Text struct {
	Default string `json:"default"`
	En      string `json:"en,omitempty"`
	Be      string `json:"be,omitempty"`
}

// Resolve returns the variant for the requested locale, falling back to the
// default language when the foreign variant is absent or blank.
func (t Text) Resolve(locale Locale) string {
	switch locale {
	case LocaleEN:
		if strings.TrimSpace(t.En) != "" {
			return t.En
		}
	case LocaleBE:
		if strings.TrimSpace(t.Be) != "" {
			return t.Be
		}
	}
	return t.Default
}

// Set stores a variant under the given locale.
func (t *Text) Set(locale Locale, value string) {
	switch locale {
	case LocaleEN:
		t.En = value
	case LocaleBE:
		t.Be = value
	default:
		t.Default = value
	}
}

// Doc holds the up-to-three parallel Documents of a record (content,
// contentEn, contentBe). No cross-language invariant is enforced: variants
// may carry different block counts and order.
type Doc struct {
	Default document.Document `json:"default"`
	En      document.Document `json:"en,omitempty"`
	Be      document.Document `json:"be,omitempty"`
}

// Resolve returns the Document for the requested locale. A non-empty foreign
// Document is used whole; an empty or absent one falls back to the default
// language. Variants are never merged block-by-block.
func (d Doc) Resolve(locale Locale) document.Document {
	switch locale {
	case LocaleEN:
		if len(d.En) > 0 {
			return d.En
		}
	case LocaleBE:
		if len(d.Be) > 0 {
			return d.Be
		}
	}
	return d.Default
}

// Set stores a Document variant under the given locale.
func (d *Doc) Set(locale Locale, doc document.Document) {
	switch locale {
	case LocaleEN:
		d.En = doc
	case LocaleBE:
		d.Be = doc
	default:
		d.Default = doc
	}
}
