package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrInvalidDocument means the upstream payload could not be parsed or its
	// root element does not match the requested feed.
	ErrInvalidDocument = errors.New("invalid feed document")
	// ErrReconcileFailed means the parsed-table transaction was rolled back and
	// no row from the batch was applied.
	ErrReconcileFailed = errors.New("reconcile failed")
	// ErrStorageUnavailable means a projection read could not reach storage.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
