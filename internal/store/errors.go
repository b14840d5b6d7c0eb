package store

import (
	"errors"
	"fmt"
)

// IntegrityError reports a broken reference discovered while loading the
// persisted document.
type IntegrityError struct {
	// Kind names the referencing collection ("Expense").
	Kind string

	// ID is the referencing record's id.
	ID int

	// RefKind and RefID name the missing record.
	RefKind string
	RefID   int
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation: %s %d references missing %s %d",
		e.Kind, e.ID, e.RefKind, e.RefID)
}

// IsIntegrityError reports whether err is (or wraps) an IntegrityError.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
