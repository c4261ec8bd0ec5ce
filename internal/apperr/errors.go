// Package apperr defines the sentinel errors shared across usecases so
// handlers can map business failures to HTTP statuses programmatically.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreProfileMissing means no store profile row exists; bill-number
	// generation cannot proceed.
	ErrStoreProfileMissing = errors.New("store profile not found")

	// ErrStoreNameEmpty means the store name yields no usable prefix initials.
	ErrStoreNameEmpty = errors.New("store name produces an empty bill prefix")

	// ErrMalformedBillNumber marks a stored bill number that does not match
	// the PREFIX-YYMMNNNN format. Such records are skipped, not fatal.
	ErrMalformedBillNumber = errors.New("malformed bill number")

	// ErrDuplicateBillNumber is a write conflict between concurrent bill
	// creations. Callers retry generation+insertion from scratch.
	ErrDuplicateBillNumber = errors.New("duplicate bill number")

	// ErrSequenceExhausted means the 4-digit monthly counter passed 9999.
	ErrSequenceExhausted = errors.New("bill sequence exhausted for this month")

	ErrNotFound = errors.New("record not found")
)

// Error wraps a sentinel with human-readable detail.
type Error struct {
	Err     error
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, format string, args ...interface{}) *Error {
	return &Error{Err: err, Details: fmt.Sprintf(format, args...)}
}
