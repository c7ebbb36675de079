package markdown

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/i18n"
	"github.com/goliatone/go-blockdoc/internal/identity"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
	"github.com/goliatone/go-blockdoc/storage"
)

var (
	ErrStorageRequired = errors.New("markdown importer: storage service is required")
	ErrSlugMissing     = errors.New("markdown importer: slug could not be determined")
)

// ImporterConfig encapsulates the collaborators an importer needs.
type ImporterConfig struct {
	Storage storage.Service
	Logger  interfaces.Logger
}

// Importer converts markdown sources into stored pages. An import touches
// only the locale the source declares; the other locale documents on the
// page are carried over from the existing record.
type Importer struct {
	store     storage.Service
	converter *Converter
	logger    interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.MarkdownLogger(nil)
	}
	return &Importer{
		store:     cfg.Storage,
		converter: NewConverter(),
		logger:    logger,
	}
}

// ImportResult reports what one import produced.
type ImportResult struct {
	Page    *storage.Page
	Locale  i18n.Locale
	Blocks  int
	Created bool
}

// ImportSource imports a single markdown source into page storage.
func (i *Importer) ImportSource(ctx context.Context, source []byte) (*ImportResult, error) {
	if i.store == nil {
		return nil, ErrStorageRequired
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	pageSlug, err := resolveSlug(meta)
	if err != nil {
		return nil, err
	}

	locale := meta.ResolvedLocale()
	pageID := identity.PageUUID(pageSlug)

	doc, err := i.converter.Convert(pageID, body)
	if err != nil {
		return nil, err
	}
	if meta.Private {
		for idx := range doc {
			doc[idx].IsPrivate = true
		}
	}

	input, created, err := i.buildInput(ctx, pageID, pageSlug, meta, locale, doc)
	if err != nil {
		return nil, err
	}

	page, err := i.store.SavePage(ctx, input)
	if err != nil {
		return nil, err
	}

	i.logger.Info("markdown source imported",
		"slug", pageSlug, "locale", string(locale), "blocks", len(doc), "created", created)

	return &ImportResult{
		Page:    page,
		Locale:  locale,
		Blocks:  len(doc),
		Created: created,
	}, nil
}

// buildInput merges the import into the existing record so locales the
// source does not cover keep their documents and titles.
func (i *Importer) buildInput(ctx context.Context, pageID uuid.UUID, pageSlug string, meta FrontMatter, locale i18n.Locale, doc document.Document) (storage.SavePageInput, bool, error) {
	input := storage.SavePageInput{
		Slug: pageSlug,
		Docs: map[i18n.Locale]document.Document{},
	}

	existing, err := i.store.GetPage(ctx, pageSlug)
	switch {
	case err == nil:
		input.ID = existing.ID
		input.Title = existing.LocalizedTitle()
		input.Subtitle = existing.LocalizedSubtitle()
		for _, loc := range i18n.Locales() {
			if loc == locale {
				continue
			}
			stored, err := i.store.LoadDocument(ctx, pageSlug, loc)
			if err != nil {
				return storage.SavePageInput{}, false, err
			}
			input.Docs[loc] = stored
		}
	case errors.Is(err, storage.ErrPageNotFound):
		input.ID = pageID
	default:
		return storage.SavePageInput{}, false, fmt.Errorf("markdown importer: page lookup %s: %w", pageSlug, err)
	}

	created := existing == nil
	input.Title.Set(locale, meta.Title)
	input.Subtitle.Set(locale, meta.Subtitle)
	input.Docs[locale] = doc
	return input, created, nil
}

func resolveSlug(meta FrontMatter) (string, error) {
	candidate := meta.Slug
	if candidate == "" {
		candidate = meta.Title
	}
	if candidate == "" {
		return "", ErrSlugMissing
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", ErrSlugMissing
	}
	return normalized, nil
}
