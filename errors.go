package gitoxide

import (
	"errors"
	"fmt"

	"github.com/ur4t/gitoxide/hash"
)

// ErrNothingToWrite is a programmer error: Write was called on an
// editor whose pending store has no root, which cannot happen through
// the public API and indicates a bug, not a recoverable condition.
var ErrNothingToWrite = errors.New("gitoxide: no root tree to write")

// ErrNotFound is returned when a TreeFinder has no object for the
// requested identifier. This error should only be used with
// errors.Is() for comparison, not for type assertions; use
// *NotFoundError for that.
var ErrNotFound = errors.New("gitoxide: tree not found")

// ErrDecode is returned when a TreeFinder located bytes for an
// identifier but could not decode them into a Tree. This error should
// only be used with errors.Is() for comparison, not for type
// assertions; use *DecodeError for that.
var ErrDecode = errors.New("gitoxide: tree decode failed")

// NotFoundError reports that a TreeFinder had no object for the
// requested identifier. Fetch failures are surfaced unchanged from
// Upsert/Remove; no local retry is attempted.
type NotFoundError struct {
	ID hash.Hash
}

func NewNotFoundError(id hash.Hash) *NotFoundError {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gitoxide: tree %s not found", e.ID.String())
}

// Is enables errors.Is() compatibility with ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DecodeError reports that a TreeFinder located bytes for an
// identifier but could not decode them into a Tree.
type DecodeError struct {
	ID  hash.Hash
	Err error
}

func NewDecodeError(id hash.Hash, err error) *DecodeError {
	return &DecodeError{ID: id, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gitoxide: decode tree %s: %v", e.ID.String(), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() compatibility with ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
