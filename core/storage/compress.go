package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MaxDecompressedSize caps the size of a decompressed object.
const MaxDecompressedSize = 64 << 20

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Decompressor wraps a Reader and transparently decompresses gzip and zstd
// objects, detected by their magic bytes. Other objects pass through unchanged,
// so compressed and plain catalogs can be mixed freely.
type Decompressor struct {
	r    Reader
	zstd *zstd.Decoder
}

var _ Reader = (*Decompressor)(nil)

// NewDecompressor wraps r.
func NewDecompressor(r Reader) (*Decompressor, error) {
	// A nil reader lets us use DecodeAll without streams.
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Decompressor{r: r, zstd: dec}, nil
}

// Read fetches name from the wrapped Reader and decompresses it when needed.
func (d *Decompressor) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := d.r.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(data, zstdMagic):
		out, err := d.zstd.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorruptObject, name, err)
		}
		return out, nil

	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorruptObject, name, err)
		}
		defer func() { _ = zr.Close() }()

		out, err := io.ReadAll(io.LimitReader(zr, MaxDecompressedSize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorruptObject, name, err)
		}
		if len(out) > MaxDecompressedSize {
			return nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, name)
		}
		return out, nil

	default:
		return data, nil
	}
}
