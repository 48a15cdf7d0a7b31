package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrPersistence           = errors.New("persistence failure")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// persistenceError tags a store failure with ErrPersistence and keeps the
// original cause reachable through errors.Is / errors.As.
func persistenceError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConflict) {
		return crerr.Wrapf(err, format, args...)
	}
	return crerr.Wrapf(fmt.Errorf("%w: %w", ErrPersistence, err), format, args...)
}
