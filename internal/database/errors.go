package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by lookups of a single todo that does not exist
	ErrNotFound = errors.New("todo not found")

	// ErrInvalidID is returned for ids that are not positive integers
	ErrInvalidID = errors.New("invalid todo ID")
)

// StorageError wraps any failure reported by the database engine
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// DecodeError reports a stored column that cannot be mapped onto a Todo
type DecodeError struct {
	Column string
	Value  any
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s (%v): %v", e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("decode %s: unexpected value %v", e.Column, e.Value)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err came from the database engine
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
