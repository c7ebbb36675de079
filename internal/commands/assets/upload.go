// Package assetscmd exposes asset upload operations as go-command messages.
package assetscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blockdoc/editor"
	"github.com/goliatone/go-blockdoc/internal/commands"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
	"github.com/goliatone/go-blockdoc/upload"
)

const uploadAssetMessageType = "blockdoc.assets.upload"

// UploadAssetCommand requests an asset upload into a block of an open editor
// session. The session enforces size/type limits and the per-block lock; the
// command layer adds validation, timeout and error tagging.
type UploadAssetCommand struct {
	Session *editor.Session `json:"-"`
	BlockID string          `json:"block_id"`
	Asset   upload.Asset    `json:"-"`
}

// Type implements command.Message.
func (UploadAssetCommand) Type() string { return uploadAssetMessageType }

// Validate ensures the command captures the required fields before reaching handlers.
func (m UploadAssetCommand) Validate() error {
	errs := validation.Errors{}
	if m.Session == nil {
		errs["session"] = validation.NewError("blockdoc.assets.upload.session_required", "editor session is required")
	}
	if strings.TrimSpace(m.BlockID) == "" {
		errs["block_id"] = validation.NewError("blockdoc.assets.upload.block_id_required", "block id is required")
	}
	if strings.TrimSpace(m.Asset.FileName) == "" {
		errs["asset.file_name"] = validation.NewError("blockdoc.assets.upload.file_name_required", "asset file name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UploadAssetHandler routes uploads through the session's mutation path using
// the shared command handler foundation.
type UploadAssetHandler struct {
	inner *commands.Handler[UploadAssetCommand]
}

// NewUploadAssetHandler constructs the handler.
func NewUploadAssetHandler(logger interfaces.Logger, opts ...commands.HandlerOption[UploadAssetCommand]) *UploadAssetHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg UploadAssetCommand) error {
		return msg.Session.UploadAsset(ctx, msg.BlockID, msg.Asset)
	}

	handlerOpts := []commands.HandlerOption[UploadAssetCommand]{
		commands.WithLogger[UploadAssetCommand](baseLogger),
		commands.WithOperation[UploadAssetCommand]("assets.upload"),
		commands.WithMessageFields(func(msg UploadAssetCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.BlockID); trimmed != "" {
				fields["block_id"] = trimmed
			}
			if trimmed := strings.TrimSpace(msg.Asset.FileName); trimmed != "" {
				fields["file_name"] = trimmed
			}
			if msg.Asset.Size > 0 {
				fields["size"] = msg.Asset.Size
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UploadAssetHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UploadAssetCommand].Execute.
func (h *UploadAssetHandler) Execute(ctx context.Context, msg UploadAssetCommand) error {
	return h.inner.Execute(ctx, msg)
}
