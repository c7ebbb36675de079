package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/upload"
)

// Size limits enforced before any bytes leave the editor.
const (
	MaxImageSize = 5 << 20
	MaxFileSize  = 10 << 20
	MaxVideoSize = 100 << 20
)

type uploadRule struct {
	field      upload.Field
	mimePrefix string
	maxSize    int64
}

var uploadRules = map[document.BlockType]uploadRule{
	document.TypeImage: {field: upload.FieldImage, mimePrefix: "image/", maxSize: MaxImageSize},
	document.TypeFile:  {field: upload.FieldFile, maxSize: MaxFileSize},
	document.TypeVideo: {field: upload.FieldFile, mimePrefix: "video/", maxSize: MaxVideoSize},
}

// UploadAsset validates the asset against the block type's constraints and
// delegates to the upload collaborator. On success the block's props are
// patched with the returned URL and derived metadata; on any failure the
// document is left unchanged. The block is locked against edits while its
// upload is pending, and the pending state is cleared on every path.
//
// The session stays usable for other blocks while an upload is in flight.
// If the block (or the whole session) is gone by the time the collaborator
// responds, the result is discarded.
func (s *Session) UploadAsset(ctx context.Context, id string, asset upload.Asset) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.uploader == nil {
		s.mu.Unlock()
		return ErrUploaderRequired
	}

	block := s.doc.Block(id)
	if block == nil {
		s.mu.Unlock()
		s.logger.Debug("editor.upload.stale", "block_id", id)
		return nil
	}
	rule, ok := uploadRules[block.Type]
	if !ok {
		s.mu.Unlock()
		return ErrUploadUnsupported
	}
	if err := validateAsset(rule, asset); err != nil {
		s.mu.Unlock()
		return err
	}
	if _, pending := s.uploads[id]; pending {
		s.mu.Unlock()
		return ErrUploadInFlight
	}
	s.uploads[id] = struct{}{}
	blockType := block.Type
	s.mu.Unlock()

	result, err := s.uploader.Upload(ctx, rule.field, asset)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.uploads, id)

	if err != nil {
		s.logger.Warn("editor.upload.failed", "block_id", id, "error", err)
		return err
	}
	if s.closed {
		s.logger.Debug("editor.upload.discarded", "block_id", id)
		return nil
	}
	block = s.doc.Block(id)
	if block == nil {
		s.logger.Debug("editor.upload.discarded", "block_id", id)
		return nil
	}

	patchAssetProps(block, blockType, asset, result.URL)
	s.logger.Info("editor.upload.completed", "block_id", id, "url", result.URL)
	return nil
}

// UploadPending reports whether the block has an upload in flight.
func (s *Session) UploadPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, pending := s.uploads[id]
	return pending
}

func validateAsset(rule uploadRule, asset upload.Asset) error {
	if rule.mimePrefix != "" && !strings.HasPrefix(asset.ContentType, rule.mimePrefix) {
		return fmt.Errorf("%w: got %q", ErrAssetTypeInvalid, asset.ContentType)
	}
	if asset.Size > rule.maxSize {
		return fmt.Errorf("%w: %d bytes over %d", ErrAssetTooLarge, asset.Size, rule.maxSize)
	}
	return nil
}

// patchAssetProps merges the collaborator's URL and the asset metadata into
// the block's type-specific props.
func patchAssetProps(block *document.Block, blockType document.BlockType, asset upload.Asset, url string) {
	switch blockType {
	case document.TypeImage:
		props, _ := block.Props.(document.ImageProps)
		props.Src = url
		if props.Alt == "" {
			props.Alt = asset.FileName
		}
		block.Props = props
	case document.TypeFile:
		props, _ := block.Props.(document.FileProps)
		props.FileName = asset.FileName
		props.FileURL = url
		props.FileType = asset.ContentType
		props.FileSize = asset.Size
		block.Props = props
	case document.TypeVideo:
		props, _ := block.Props.(document.VideoProps)
		props.VideoSrc = url
		if props.VideoTitle == "" {
			props.VideoTitle = asset.FileName
		}
		block.Props = props
	}
}
