package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/i18n"
	"github.com/goliatone/go-blockdoc/internal/commands"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
	"github.com/goliatone/go-blockdoc/storage"
)

const savePageMessageType = "blockdoc.pages.save"

// SavePageCommand requests a whole-record page write: every locale's document
// is carried on each call and the last writer wins.
type SavePageCommand struct {
	PageID   uuid.UUID                         `json:"page_id,omitempty"`
	Slug     string                            `json:"slug"`
	Title    i18n.Text                         `json:"title"`
	Subtitle i18n.Text                         `json:"subtitle"`
	Docs     map[i18n.Locale]document.Document `json:"docs"`
}

// Type implements command.Message.
func (SavePageCommand) Type() string { return savePageMessageType }

// Validate ensures the command captures the required fields before reaching handlers.
func (m SavePageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("blockdoc.pages.save.slug_required", "slug is required")
	}
	for locale, doc := range m.Docs {
		if err := doc.Validate(); err != nil {
			errs["docs."+string(locale)] = validation.NewError("blockdoc.pages.save.document_invalid", err.Error())
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SavePageHandler persists pages via the storage service using the shared
// command handler foundation.
type SavePageHandler struct {
	inner *commands.Handler[SavePageCommand]
}

// NewSavePageHandler constructs a handler wired to the provided storage service.
func NewSavePageHandler(store storage.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SavePageCommand]) *SavePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SavePageCommand) error {
		_, err := store.SavePage(ctx, storage.SavePageInput{
			ID:       msg.PageID,
			Slug:     msg.Slug,
			Title:    msg.Title,
			Subtitle: msg.Subtitle,
			Docs:     msg.Docs,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SavePageCommand]{
		commands.WithLogger[SavePageCommand](baseLogger),
		commands.WithOperation[SavePageCommand]("pages.save"),
		commands.WithMessageFields(func(msg SavePageCommand) map[string]any {
			fields := map[string]any{}
			if msg.PageID != uuid.Nil {
				fields["page_id"] = msg.PageID
			}
			if trimmed := strings.TrimSpace(msg.Slug); trimmed != "" {
				fields["slug"] = trimmed
			}
			if len(msg.Docs) > 0 {
				fields["locales"] = len(msg.Docs)
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SavePageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SavePageCommand].Execute.
func (h *SavePageHandler) Execute(ctx context.Context, msg SavePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
