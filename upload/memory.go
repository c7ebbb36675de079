package upload

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryUploader is a deterministic in-process collaborator for tests and
// examples. Uploaded payloads are kept in memory keyed by the returned URL.
type MemoryUploader struct {
	mu      sync.Mutex
	counter int
	assets  map[string][]byte

	// Err, when set, is returned by every Upload call.
	Err error
}

// NewMemoryUploader constructs an empty in-memory uploader.
func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{assets: make(map[string][]byte)}
}

// Upload satisfies Uploader.
func (m *MemoryUploader) Upload(_ context.Context, field Field, asset Asset) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	data, err := io.ReadAll(asset.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	m.counter++
	url := fmt.Sprintf("/assets/%s/%d/%s", field, m.counter, asset.FileName)
	m.assets[url] = data
	return &Result{URL: url}, nil
}

// Stored returns the payload uploaded under the given URL.
func (m *MemoryUploader) Stored(url string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.assets[url]
	return data, ok
}
