package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blockdoc/internal/commands"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/internal/markdown"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
)

const importMarkdownMessageType = "blockdoc.pages.import_markdown"

// ImportMarkdownCommand imports one markdown source into page storage.
type ImportMarkdownCommand struct {
	Source []byte `json:"source"`
}

// Type implements command.Message.
func (ImportMarkdownCommand) Type() string { return importMarkdownMessageType }

// Validate rejects empty sources before they reach the importer.
func (m ImportMarkdownCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Source) == 0 {
		errs["source"] = validation.NewError("blockdoc.pages.import_markdown.source_required", "source is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportMarkdownHandler drives the markdown importer through the shared
// command handler foundation.
type ImportMarkdownHandler struct {
	inner *commands.Handler[ImportMarkdownCommand]
}

// NewImportMarkdownHandler constructs a handler wired to the provided importer.
func NewImportMarkdownHandler(importer *markdown.Importer, logger interfaces.Logger, opts ...commands.HandlerOption[ImportMarkdownCommand]) *ImportMarkdownHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportMarkdownCommand) error {
		_, err := importer.ImportSource(ctx, msg.Source)
		return err
	}

	handlerOpts := []commands.HandlerOption[ImportMarkdownCommand]{
		commands.WithLogger[ImportMarkdownCommand](baseLogger),
		commands.WithOperation[ImportMarkdownCommand]("pages.import_markdown"),
		commands.WithMessageFields(func(msg ImportMarkdownCommand) map[string]any {
			return map[string]any{"source_bytes": len(msg.Source)}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportMarkdownHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportMarkdownCommand].Execute.
func (h *ImportMarkdownHandler) Execute(ctx context.Context, msg ImportMarkdownCommand) error {
	return h.inner.Execute(ctx, msg)
}
