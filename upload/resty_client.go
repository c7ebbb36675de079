package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/goliatone/go-blockdoc/internal/logging"
	"github.com/goliatone/go-blockdoc/pkg/interfaces"
)

// ClientOption customises the HTTP upload client.
type ClientOption func(*Client)

// WithLogger injects the logger used for request diagnostics.
func WithLogger(logger interfaces.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPath overrides the endpoint path for a field. Defaults to
// "/upload/<field>".
func WithPath(field Field, path string) ClientOption {
	return func(c *Client) {
		if strings.TrimSpace(path) != "" {
			c.paths[field] = path
		}
	}
}

// Client talks to the upload collaborator over HTTP: one multipart part
// under the fixed field name, a {url} payload on success and an {error}
// payload on failure.
type Client struct {
	http   *resty.Client
	paths  map[Field]string
	logger interfaces.Logger
}

// NewClient constructs a client rooted at the collaborator's base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		http: resty.New().SetBaseURL(strings.TrimSuffix(baseURL, "/")),
		paths: map[Field]string{
			FieldImage: "/upload/image",
			FieldFile:  "/upload/file",
		},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type errorPayload struct {
	Error string `json:"error"`
}

// Upload satisfies Uploader.
func (c *Client) Upload(ctx context.Context, field Field, asset Asset) (*Result, error) {
	path, ok := c.paths[field]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported field %q", ErrUploadFailed, field)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader(string(field), asset.FileName, asset.Data).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if resp.IsError() {
		return nil, c.mapError(resp.Body())
	}

	var result Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUploadFailed, err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("%w: empty url in response", ErrUploadFailed)
	}
	return &result, nil
}

// mapError folds the collaborator's error payload into a typed failure. An
// oversized file is recognizable by substring and surfaced as a friendly
// validation error instead of a raw protocol message.
func (c *Client) mapError(body []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		if strings.Contains(payload.Error, "File too large") {
			return ErrFileTooLarge
		}
		c.logger.Warn("upload.collaborator.error", "error", payload.Error)
		return fmt.Errorf("%w: %s", ErrUploadFailed, payload.Error)
	}
	return ErrUploadFailed
}
