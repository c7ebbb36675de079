package blockdoc

import (
	"context"
	"errors"
	"strings"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/editor"
	"github.com/goliatone/go-blockdoc/i18n"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/internal/logging/gologger"
	"github.com/goliatone/go-blockdoc/internal/markdown"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
	"github.com/goliatone/go-blockdoc/render"
	"github.com/goliatone/go-blockdoc/storage"
	"github.com/goliatone/go-blockdoc/upload"
)

var ErrStorageDBRequired = errors.New("blockdoc: sql storage drivers require a database handle")

// Module bundles the configured collaborators: page storage, the public
// renderer, the markdown importer, and an editor session factory.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	store    storage.Service
	renderer *render.Renderer
	importer *markdown.Importer
	uploader upload.Uploader
	db       *bun.DB
}

// ModuleOption overrides collaborator defaults during New.
type ModuleOption func(*Module)

// WithDB supplies the database handle used by the sqlite and postgres
// storage drivers.
func WithDB(db *bun.DB) ModuleOption {
	return func(m *Module) { m.db = db }
}

// WithLoggerProvider replaces the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) ModuleOption {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithUploader replaces the resty upload client built from Config.Upload.
func WithUploader(uploader upload.Uploader) ModuleOption {
	return func(m *Module) { m.uploader = uploader }
}

// WithStorage replaces the storage service built from Config.Storage.
func WithStorage(store storage.Service) ModuleOption {
	return func(m *Module) { m.store = store }
}

// New validates the configuration and wires the module graph.
func New(cfg Config, opts ...ModuleOption) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.store == nil {
		repo, err := m.buildRepository()
		if err != nil {
			return nil, err
		}
		m.store = storage.NewService(repo,
			storage.WithLogger(logging.StorageLogger(m.provider)))
	}

	if m.uploader == nil && cfg.Upload.Enabled {
		m.uploader = upload.NewClient(cfg.Upload.BaseURL,
			upload.WithLogger(logging.UploadLogger(m.provider)))
	}

	m.renderer = render.New(
		render.WithLinkResolver(&render.PrefixLinkResolver{BasePath: cfg.Render.PageBasePath}),
		render.WithAuthPrompt(cfg.Render.AuthPrompt),
	)

	m.importer = markdown.NewImporter(markdown.ImporterConfig{
		Storage: m.store,
		Logger:  logging.MarkdownLogger(m.provider),
	})

	return m, nil
}

func (m *Module) buildRepository() (storage.PageRepository, error) {
	switch strings.ToLower(strings.TrimSpace(m.config.Storage.Driver)) {
	case "", "memory":
		return storage.NewMemoryPageRepository(), nil
	case "sqlite", "postgres":
		if m.db == nil {
			return nil, ErrStorageDBRequired
		}
		return storage.NewBunPageRepository(m.db), nil
	default:
		return nil, ErrStorageDriverUnknown
	}
}

// Storage exposes the configured page storage service.
func (m *Module) Storage() storage.Service { return m.store }

// Renderer exposes the configured public renderer.
func (m *Module) Renderer() *render.Renderer { return m.renderer }

// Importer exposes the configured markdown importer.
func (m *Module) Importer() *markdown.Importer { return m.importer }

// LoggerProvider exposes the configured logger provider for host wiring.
func (m *Module) LoggerProvider() interfaces.LoggerProvider { return m.provider }

// EditSession opens an editor session over the page's document for one
// locale. The session works on a private clone; nothing is persisted until
// SaveSession.
func (m *Module) EditSession(ctx context.Context, slug string, locale i18n.Locale) (*editor.Session, error) {
	doc, err := m.store.LoadDocument(ctx, slug, locale)
	if err != nil {
		return nil, err
	}

	sessionOpts := []editor.SessionOption{
		editor.WithLogger(logging.EditorLogger(m.provider)),
	}
	if m.uploader != nil {
		sessionOpts = append(sessionOpts, editor.WithUploader(m.uploader))
	}
	return editor.NewSession(doc, sessionOpts...), nil
}

// SaveSession writes the session's current document back to the page under
// the given locale, carrying the other locale variants over unchanged.
func (m *Module) SaveSession(ctx context.Context, slug string, locale i18n.Locale, session *editor.Session) (*storage.Page, error) {
	page, err := m.store.GetPage(ctx, slug)
	if err != nil {
		return nil, err
	}

	docs := map[i18n.Locale]document.Document{}
	for _, loc := range i18n.Locales() {
		if loc == locale {
			continue
		}
		stored, err := m.store.LoadDocument(ctx, slug, loc)
		if err != nil {
			return nil, err
		}
		docs[loc] = stored
	}
	docs[locale] = session.Document()

	return m.store.SavePage(ctx, storage.SavePageInput{
		ID:       page.ID,
		Slug:     page.Slug,
		Title:    page.LocalizedTitle(),
		Subtitle: page.LocalizedSubtitle(),
		Docs:     docs,
	})
}

// RenderPage resolves the locale document with whole-document fallback and
// renders it for the given viewer.
func (m *Module) RenderPage(ctx context.Context, slug string, rctx render.Context) (string, error) {
	doc, err := m.store.ResolveDocument(ctx, slug, rctx.Locale)
	if err != nil {
		return "", err
	}
	return m.renderer.RenderDocument(doc, rctx)
}
