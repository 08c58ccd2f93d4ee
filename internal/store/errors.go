package store

import (
	"errors"
	"fmt"
)

var (
	// ErrPrimaryUnavailable marks any failure talking to the primary store.
	// Reads recover from it by falling back; writes report it.
	ErrPrimaryUnavailable = errors.New("primary store unavailable")

	// ErrStorageUnavailable is returned when no backend can take a write.
	ErrStorageUnavailable = errors.New("unable to store products - no storage available")
)

// PrimaryError describes a failed primary store operation.
// It matches ErrPrimaryUnavailable and the underlying cause with errors.Is.
type PrimaryError struct {
	Backend string // "postgres", "mongo"
	Op      string // "list", "delete", "insert", "replace"
	Done    int    // Operations of this wave that succeeded
	Total   int    // Operations attempted in this wave
	Err     error
}

func (e *PrimaryError) Error() string {
	if e.Total > 0 {
		return fmt.Sprintf("%s: %s %s (%d/%d done): %v", ErrPrimaryUnavailable, e.Backend, e.Op, e.Done, e.Total, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", ErrPrimaryUnavailable, e.Backend, e.Op, e.Err)
}

func (e *PrimaryError) Unwrap() []error {
	return []error{ErrPrimaryUnavailable, e.Err}
}
