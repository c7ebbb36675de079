package upload

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrFileTooLarge reports that the collaborator rejected the payload for
	// size. Callers surface this as a validation message, not a raw protocol
	// error.
	ErrFileTooLarge = errors.New("upload: file too large")
	// ErrUploadFailed reports any other collaborator failure.
	ErrUploadFailed = errors.New("upload: request failed")
)

// Field names the multipart part carrying the binary payload. The
// collaborator accepts exactly two.
type Field string

const (
	FieldImage Field = "image"
	FieldFile  Field = "file"
)

// Asset is one binary payload handed to the collaborator.
type Asset struct {
	FileName    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// Result carries the stable URL returned on success.
type Result struct {
	URL string `json:"url"`
}

// Uploader is the upload collaborator boundary: accept a binary asset,
// return a stable URL. Implementations own storage; this module never does.
type Uploader interface {
	Upload(ctx context.Context, field Field, asset Asset) (*Result, error)
}
