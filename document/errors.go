package document

import "errors"

var (
	ErrUnknownBlockType    = errors.New("document: unknown block type")
	ErrUnknownCellType     = errors.New("document: unknown cell type")
	ErrDuplicateBlockID    = errors.New("document: duplicate block id")
	ErrPropsMismatch       = errors.New("document: props do not match block type")
	ErrColumnCountInvalid  = errors.New("document: column count must be at least 1")
	ErrHeadingLevelInvalid = errors.New("document: heading level must be between 1 and 6")
	ErrTextAlignInvalid    = errors.New("document: unsupported text alignment")
	ErrLinkTargetInvalid   = errors.New("document: unsupported link target")
	ErrColorInvalid        = errors.New("document: color must be a hex string")
)
