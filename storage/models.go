package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-blockdoc/i18n"
)

// Page is one owning record for up to three parallel document variants plus
// localized scalar fields. The document columns hold the string-encoded wire
// form; an empty document is stored as "[]", never NULL, so consumers can
// always decode a value.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID   uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug string    `bun:"slug,notnull" json:"slug"`

	Title   string `bun:"title" json:"title"`
	TitleEn string `bun:"title_en" json:"titleEn,omitempty"`
	TitleBe string `bun:"title_be" json:"titleBe,omitempty"`

	Subtitle   string `bun:"subtitle" json:"subtitle,omitempty"`
	SubtitleEn string `bun:"subtitle_en" json:"subtitleEn,omitempty"`
	SubtitleBe string `bun:"subtitle_be" json:"subtitleBe,omitempty"`

	Content   string `bun:"content" json:"content"`
	ContentEn string `bun:"content_en" json:"contentEn,omitempty"`
	ContentBe string `bun:"content_be" json:"contentBe,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// LocalizedTitle bundles the title variants for resolution.
func (p *Page) LocalizedTitle() i18n.Text {
	return i18n.Text{Default: p.Title, En: p.TitleEn, Be: p.TitleBe}
}

// LocalizedSubtitle bundles the subtitle variants for resolution.
func (p *Page) LocalizedSubtitle() i18n.Text {
	return i18n.Text{Default: p.Subtitle, En: p.SubtitleEn, Be: p.SubtitleBe}
}

// encodedContent returns the stored document column for a locale.
func (p *Page) encodedContent(locale i18n.Locale) string {
	switch locale {
	case i18n.LocaleEN:
		return p.ContentEn
	case i18n.LocaleBE:
		return p.ContentBe
	default:
		return p.Content
	}
}

func (p *Page) setEncodedContent(locale i18n.Locale, encoded string) {
	switch locale {
	case i18n.LocaleEN:
		p.ContentEn = encoded
	case i18n.LocaleBE:
		p.ContentBe = encoded
	default:
		p.Content = encoded
	}
}
