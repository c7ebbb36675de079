package editor

import (
	"strings"
	"sync"

	slugpkg "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
	"github.com/goliatone/go-blockdoc/upload"
)

// IDGenerator mints opaque unique identifiers for blocks and rows.
type IDGenerator func() string

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithUploader wires the upload collaborator used by UploadAsset.
func WithUploader(uploader upload.Uploader) SessionOption {
	return func(s *Session) {
		if uploader != nil {
			s.uploader = uploader
		}
	}
}

// WithIDGenerator overrides the identifier generator, used mainly for tests.
func WithIDGenerator(generator IDGenerator) SessionOption {
	return func(s *Session) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger injects the logger used for session diagnostics.
func WithLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// CellRef addresses one table cell while it is in edit mode.
type CellRef struct {
	BlockID   string
	RowID     string
	CellIndex int
}

// Session owns the only mutation path to a Document plus the transient
// editing state: which block is in edit mode (at most one), which table cell
// is in edit mode, and which blocks have an upload in flight.
//
// Every operation referencing a stale block id or row id is a no-op, never a
// panic: editor code must survive references from outdated state snapshots.
type Session struct {
	mu sync.Mutex

	doc       document.Document
	editingID string
	cellEdit  *CellRef
	uploads   map[string]struct{}
	closed    bool

	uploader upload.Uploader
	id       IDGenerator
	logger   interfaces.Logger
}

// NewSession opens an editing session over a copy of the given document.
// Mutations stay in memory until the caller saves; closing without saving
// discards them.
func NewSession(doc document.Document, opts ...SessionOption) *Session {
	s := &Session{
		doc:     doc.Clone(),
		uploads: make(map[string]struct{}),
		id:      uuid.NewString,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns a snapshot of the session's current document.
func (s *Session) Document() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// EditingBlock returns the id of the block currently in edit mode, or "".
func (s *Session) EditingBlock() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// EditingCell returns the table cell currently in edit mode, or nil.
func (s *Session) EditingCell() *CellRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cellEdit == nil {
		return nil
	}
	ref := *s.cellEdit
	return &ref
}

// AddBlock appends a new block of the given type with a fresh id,
// type-appropriate default props, empty content and public visibility, then
// enters edit mode on it.
func (s *Session) AddBlock(blockType document.BlockType) (*document.Block, error) {
	if !blockType.Valid() {
		return nil, document.ErrUnknownBlockType
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}

	block := document.Block{
		ID:    s.id(),
		Type:  blockType,
		Props: document.DefaultProps(blockType),
	}
	s.doc = append(s.doc, block)
	s.editingID = block.ID

	s.logger.Debug("editor.block.added", "block_id", block.ID, "type", string(blockType))
	copied := block
	return &copied, nil
}

// BlockPatch carries the fields UpdateBlock merges into a block. Nil fields
// are left untouched. IsPrivate accepts any stored representation and is
// coerced to a real boolean on every update.
type BlockPatch struct {
	Content   *string
	IsPrivate any
	Props     document.Props
}

// UpdateBlock merges the patch into the block with the given id. A stale id
// is a no-op; a pending upload on the block rejects the edit.
func (s *Session) UpdateBlock(id string, patch BlockPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if _, pending := s.uploads[id]; pending {
		return ErrUploadInFlight
	}

	block := s.doc.Block(id)
	if block == nil {
		s.logger.Debug("editor.block.update.stale", "block_id", id)
		return nil
	}

	if patch.Content != nil {
		block.Content = *patch.Content
	}
	if patch.IsPrivate != nil {
		block.IsPrivate = coerceBool(patch.IsPrivate)
	}
	if patch.Props != nil {
		if err := applyProps(block, patch.Props); err != nil {
			return err
		}
	}
	return nil
}

// DeleteBlock removes the block with the given id. If it was in edit mode,
// edit mode is cleared. A stale id is a no-op.
func (s *Session) DeleteBlock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	idx := s.doc.IndexOf(id)
	if idx < 0 {
		return
	}
	s.doc = append(s.doc[:idx], s.doc[idx+1:]...)
	if s.editingID == id {
		s.editingID = ""
	}
	if s.cellEdit != nil && s.cellEdit.BlockID == id {
		s.cellEdit = nil
	}
	s.logger.Debug("editor.block.deleted", "block_id", id)
}

// MoveBlock swaps the block with its neighbour in the given direction.
// Boundary moves and stale ids are no-ops.
func (s *Session) MoveBlock(id string, direction document.MoveDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.doc = s.doc.MoveBlock(id, direction)
}

// EditBlock puts the block with the given id into edit mode, replacing any
// previous edit target. A stale id clears edit mode instead.
func (s *Session) EditBlock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.doc.IndexOf(id) < 0 {
		s.editingID = ""
		return
	}
	s.editingID = id
}

// StopEditing clears block and cell edit mode.
func (s *Session) StopEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = ""
	s.cellEdit = nil
}

// SetPageLink points a page-link block at a page, deriving the slug from the
// page title. A stale id is a no-op.
func (s *Session) SetPageLink(id, pageTitle, linkText string) error {
	pageSlug, err := slugpkg.Normalize(pageTitle)
	if err != nil {
		return err
	}
	return s.UpdateBlock(id, BlockPatch{
		Props: document.PageLinkProps{
			PageSlug:  pageSlug,
			PageTitle: pageTitle,
			LinkText:  linkText,
		},
	})
}

// Close discards all in-memory mutations. An upload still in flight is not
// cancelled; its result is discarded when it resolves.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.doc = nil
	s.editingID = ""
	s.cellEdit = nil
}

// applyProps replaces the block's props when the patch matches its type.
// A mismatched props payload is rejected; block types never change in place.
func applyProps(block *document.Block, props document.Props) error {
	if document.PropsTypeOf(props) != block.Type {
		return document.ErrPropsMismatch
	}
	block.Props = props
	return nil
}

// coerceBool folds the boolean representations seen in editor payloads
// (bool, "true", 1) into a real bool, mirroring the decode-side rule.
func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1":
			return true
		}
		return false
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
