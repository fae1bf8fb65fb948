package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedCatalog indicates the buffer is not a valid MO file.
var ErrMalformedCatalog = errors.New("malformed catalog")

// MalformedError describes why a buffer was rejected.
// It unwraps to ErrMalformedCatalog.
type MalformedError struct {
	Domain string
	Reason string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed catalog %q: %s", e.Domain, e.Reason)
}

// Unwrap returns ErrMalformedCatalog.
func (e *MalformedError) Unwrap() error {
	return ErrMalformedCatalog
}

func malformed(domain, format string, args ...any) error {
	return &MalformedError{Domain: domain, Reason: fmt.Sprintf(format, args...)}
}
