package storage

import "context"

// Reader fetches the full contents of a named object.
type Reader interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context, name string) ([]byte, error)

// Read calls f.
func (f ReaderFunc) Read(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}
