package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrValidation      = fmt.Errorf("validation failed")
	ErrStore           = fmt.Errorf("store failure")
	ErrNotFound        = fmt.Errorf("record not found")
	ErrGone            = fmt.Errorf("connection gone")
	ErrTransient       = fmt.Errorf("delivery failed")
	ErrConfig          = fmt.Errorf("invalid configuration")
	ErrMalformedRecord = fmt.Errorf("malformed change record")
)

// Is and As are re-exported so callers importing this package do not also
// need the standard library one.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Store(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

// IsStale reports whether a delivery error means the subscriber no longer
// exists and its registry record should be pruned.
func IsStale(err error) bool {
	return stderrors.Is(err, ErrGone) || stderrors.Is(err, ErrNotFound)
}
