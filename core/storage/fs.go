package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FS reads files from an fs.FS.
type FS struct {
	fsys fs.FS
}

var _ Reader = (*FS)(nil)

// NewFS wraps fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// NewDir reads files below dir on the local filesystem.
func NewDir(dir string) *FS {
	return NewFS(os.DirFS(dir))
}

// Read returns the contents of name. Leading slashes are ignored; names that escape
// the root are rejected with ErrInvalidPath.
func (s *FS) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: read %s", ErrOperationTimeout, name)
		}
		return nil, fmt.Errorf("%w: read %s", ErrOperationCanceled, name)
	}

	clean := strings.TrimLeft(name, "/")
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}

	data, err := fs.ReadFile(s.fsys, clean)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, clean)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, clean)
	default:
		return nil, fmt.Errorf("read %s: %w", clean, err)
	}
}
