package storage

import (
	"errors"
	"fmt"
)

var (
	ErrPageIDRequired   = errors.New("storage: page id required")
	ErrPageSlugRequired = errors.New("storage: page slug required")
	ErrPageNotFound     = errors.New("storage: page not found")
)

// NotFoundError carries the resource and lookup key of a missing record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrPageNotFound.Error()
	}
	return fmt.Sprintf("%s: %s=%s", ErrPageNotFound.Error(), e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPageNotFound
}
