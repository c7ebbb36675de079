package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blockdoc/document"
)

// Text codes attached to wrapped command errors so hosts can route on them
// without string-matching messages.
const (
	codeValidationFailed = "BLOCKDOC_COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "BLOCKDOC_COMMAND_CANCELED"
	codeContextTimeout   = "BLOCKDOC_COMMAND_TIMEOUT"
	codeContextError     = "BLOCKDOC_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "BLOCKDOC_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	return tag(err, goerrors.CategoryValidation, "command validation failed", codeValidationFailed)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return tag(err, goerrors.CategoryCommand, "command canceled", codeContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return tag(err, goerrors.CategoryCommand, "command deadline exceeded", codeContextTimeout)
	default:
		return tag(err, goerrors.CategoryCommand, "command context error", codeContextError)
	}
}

func wrapExecuteError(err error) error {
	// Validation failures surfaced during execution (e.g. save-time document
	// checks inside the storage service) keep the validation category so
	// hosts can route them like message validation failures.
	if document.IsValidationError(err) {
		return tag(err, goerrors.CategoryValidation, "command validation failed", codeValidationFailed)
	}
	return tag(err, goerrors.CategoryCommand, "command execution failed", codeExecutionFailed)
}

// tag wraps err with a category and text code unless a previous layer already
// categorized it.
func tag(err error, category goerrors.Category, msg, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}
