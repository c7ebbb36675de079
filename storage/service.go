package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/i18n"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
)

// Service persists pages and their per-locale documents.
//
// SavePage is whole-record: every call writes the full record including all
// three document columns, and the last writer wins. Concurrent editors are
// expected to be rare enough that merge semantics are not worth their cost.
type Service interface {
	SavePage(ctx context.Context, input SavePageInput) (*Page, error)
	GetPage(ctx context.Context, slug string) (*Page, error)
	LoadDocument(ctx context.Context, slug string, locale i18n.Locale) (document.Document, error)
	ResolveDocument(ctx context.Context, slug string, locale i18n.Locale) (document.Document, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
}

// SavePageInput captures a full page write. Absent locale documents are
// stored as the empty document, never as NULL.
type SavePageInput struct {
	ID       uuid.UUID
	Slug     string
	Title    i18n.Text
	Subtitle i18n.Text
	Docs     map[i18n.Locale]document.Document
}

type service struct {
	repo   PageRepository
	logger interfaces.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// Option configures the storage service.
type Option func(*service)

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides page ID generation, mainly for tests.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService creates a page storage service backed by the given repository.
func NewService(repo PageRepository, opts ...Option) Service {
	svc := &service{
		repo:   repo,
		logger: logging.StorageLogger(nil),
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) SavePage(ctx context.Context, input SavePageInput) (*Page, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrPageSlugRequired
	}

	for locale, doc := range input.Docs {
		if err := document.ValidateForSave(doc); err != nil {
			s.logger.Error("document rejected on save",
				"slug", slug, "locale", string(locale), "error", err)
			return nil, err
		}
	}

	record := &Page{
		ID:         input.ID,
		Slug:       slug,
		Title:      input.Title.Default,
		TitleEn:    input.Title.En,
		TitleBe:    input.Title.Be,
		Subtitle:   input.Subtitle.Default,
		SubtitleEn: input.Subtitle.En,
		SubtitleBe: input.Subtitle.Be,
		UpdatedAt:  s.now(),
	}

	for _, locale := range i18n.Locales() {
		encoded, err := document.EncodeString(input.Docs[locale])
		if err != nil {
			return nil, err
		}
		record.setEncodedContent(locale, encoded)
	}

	if record.ID == uuid.Nil {
		record.ID = s.newID()
		record.CreatedAt = record.UpdatedAt
		return s.repo.Create(ctx, record)
	}

	// Callers may supply their own id for a record that does not exist yet,
	// e.g. the deterministic ids the markdown importer assigns to new pages.
	existing, err := s.repo.GetByID(ctx, record.ID)
	switch {
	case err == nil:
		record.CreatedAt = existing.CreatedAt
		return s.repo.Update(ctx, record)
	case errors.Is(err, ErrPageNotFound):
		record.CreatedAt = record.UpdatedAt
		return s.repo.Create(ctx, record)
	default:
		return nil, err
	}
}

func (s *service) GetPage(ctx context.Context, slug string) (*Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrPageSlugRequired
	}
	return s.repo.GetBySlug(ctx, slug)
}

// LoadDocument decodes the stored document for one locale exactly, without
// fallback. Corrupt or legacy payloads are normalized leniently and logged,
// never surfaced as errors to the caller.
func (s *service) LoadDocument(ctx context.Context, slug string, locale i18n.Locale) (document.Document, error) {
	page, err := s.GetPage(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.decodeColumn(page, locale), nil
}

// ResolveDocument applies the whole-document fallback rule: a locale with a
// non-empty document wins outright, otherwise the default document is used.
func (s *service) ResolveDocument(ctx context.Context, slug string, locale i18n.Locale) (document.Document, error) {
	page, err := s.GetPage(ctx, slug)
	if err != nil {
		return nil, err
	}

	docs := i18n.Doc{
		Default: s.decodeColumn(page, i18n.LocaleDefault),
		En:      s.decodeColumn(page, i18n.LocaleEN),
		Be:      s.decodeColumn(page, i18n.LocaleBE),
	}
	return docs.Resolve(locale), nil
}

func (s *service) DeletePage(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPageIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) decodeColumn(page *Page, locale i18n.Locale) document.Document {
	encoded := page.encodedContent(locale)
	doc, ok := document.DecodeLenient([]byte(encoded))
	if !ok {
		s.logger.Warn("stored document normalized during decode",
			"slug", page.Slug, "locale", string(locale))
	}
	return doc
}
