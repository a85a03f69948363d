package fix

import (
	"errors"
	"fmt"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrEditConflict indicates a replace change whose expected text does not
	// match the buffer at application time.
	ErrEditConflict = errors.New("edit conflict")

	// ErrInvalidChange indicates a change with an out-of-range position.
	ErrInvalidChange = errors.New("invalid change")
)

// ValidationError describes a change that cannot be applied to a buffer of
// the given length.
type ValidationError struct {
	Change  Change
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid change %s: %s", e.Change, e.Message)
}

// Unwrap allows errors.Is(err, ErrInvalidChange).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidChange
}

// ConflictError describes a replace change whose Remove text was not found
// at its position.
type ConflictError struct {
	// Path is the file the change targeted, if known.
	Path string

	// Change is the rejected change.
	Change Change

	// Found is the buffer text actually present at the change's range.
	Found string
}

func (e *ConflictError) Error() string {
	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}
	return fmt.Sprintf("%sedit conflict at offset %d: expected %q, found %q",
		prefix, e.Change.Position, e.Change.Remove, e.Found)
}

// Unwrap allows errors.Is(err, ErrEditConflict).
func (e *ConflictError) Unwrap() error {
	return ErrEditConflict
}

// ValidateChanges checks that every change lies within a buffer of contentLen
// bytes. It returns the first violation found.
func ValidateChanges(changes []Change, contentLen int) error {
	for _, change := range changes {
		if change.Position < 0 {
			return &ValidationError{Change: change, Message: "position is negative"}
		}
		if change.Mode != ModeInsert && change.Mode != ModeReplace {
			return &ValidationError{Change: change, Message: "unknown mode"}
		}
		if change.End() > contentLen {
			return &ValidationError{
				Change:  change,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", change.End(), contentLen),
			}
		}
	}
	return nil
}
