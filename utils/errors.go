package utils

import "fmt"

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrAuthorityRequired - authority string may not be empty
	ErrAuthorityRequired = Error("authority string may not be empty")

	// ErrHostRequired - authority must contain a host
	ErrHostRequired = Error("authority host is required")

	// ErrInvalidPort - authority port must parse as a 16-bit unsigned integer
	ErrInvalidPort = Error("authority port must be numeric")
)

// WrapChangeDirError returns a wrapped change-directory error
func WrapChangeDirError(err error) error {
	return fmt.Errorf("change directory error: %w", err)
}

// WrapTransferTypeError returns a wrapped transfer-type error
func WrapTransferTypeError(err error) error {
	return fmt.Errorf("transfer type error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapFetchError returns a wrapped fetch error
func WrapFetchError(err error) error {
	return fmt.Errorf("fetch error: %w", err)
}
