package document

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateBlock checks a single block's save-time constraints. Empty asset
// fields are allowed (the renderer shows a placeholder for those); required
// scalar fields and enum-valued props are not.
func ValidateBlock(b Block) error {
	if err := validation.Validate(b.ID, validation.Required.Error("block id is required")); err != nil {
		return err
	}
	if !b.Type.Valid() {
		return ErrUnknownBlockType
	}
	if b.Props != nil && b.Props.blockProps() != b.Type {
		return ErrPropsMismatch
	}

	switch p := b.Props.(type) {
	case HeadingProps:
		if p.Level < 1 || p.Level > 6 {
			return ErrHeadingLevelInvalid
		}
		if err := validateColor(p.Color); err != nil {
			return err
		}
		return validateAlign(p.TextAlign)
	case ParagraphProps:
		return validateAlign(p.TextAlign)
	case LinkProps:
		if err := validation.ValidateStruct(&p,
			validation.Field(&p.Href, validation.Required.Error("link href is required")),
		); err != nil {
			return err
		}
		return validateTarget(p.Target)
	case PageLinkProps:
		return validation.ValidateStruct(&p,
			validation.Field(&p.PageSlug, validation.Required.Error("page slug is required")),
		)
	case *TableProps:
		if p == nil {
			return nil
		}
		width := len(p.Headers)
		for _, row := range p.Rows {
			if len(row.Cells) != width {
				return ErrColumnCountInvalid
			}
		}
		return nil
	default:
		return nil
	}
}

// ValidateForSave checks the whole document before it is handed to the
// persistence collaborator: structural invariants plus per-block rules.
func ValidateForSave(doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	for i := range doc {
		if err := ValidateBlock(doc[i]); err != nil {
			return err
		}
	}
	return nil
}

// IsValidationError reports whether err came from save-time validation rather
// than an infrastructure fault, so callers can categorize it accordingly.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var ruleErrs validation.Errors
	if errors.As(err, &ruleErrs) {
		return true
	}
	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		return true
	}

	for _, sentinel := range []error{
		ErrUnknownBlockType,
		ErrUnknownCellType,
		ErrDuplicateBlockID,
		ErrPropsMismatch,
		ErrColumnCountInvalid,
		ErrHeadingLevelInvalid,
		ErrTextAlignInvalid,
		ErrLinkTargetInvalid,
		ErrColorInvalid,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Empty values are allowed for the enum and color props; the renderer falls
// back to its defaults for those.

func validateAlign(align TextAlign) error {
	if align != "" && !align.Valid() {
		return ErrTextAlignInvalid
	}
	return nil
}

func validateTarget(target LinkTarget) error {
	if target != "" && !target.Valid() {
		return ErrLinkTargetInvalid
	}
	return nil
}

func validateColor(color string) error {
	if color != "" && !hexColorPattern.MatchString(color) {
		return ErrColorInvalid
	}
	return nil
}
