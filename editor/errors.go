package editor

import "errors"

var (
	ErrSessionClosed     = errors.New("editor: session closed")
	ErrUploadInFlight    = errors.New("editor: block has an upload in flight")
	ErrUploadUnsupported = errors.New("editor: block type does not accept uploads")
	ErrUploaderRequired  = errors.New("editor: uploader not configured")
	ErrAssetTooLarge     = errors.New("editor: asset exceeds the size limit")
	ErrAssetTypeInvalid  = errors.New("editor: asset content type not allowed")
	ErrTimeWindowInvalid = errors.New("editor: time window is invalid")
)
