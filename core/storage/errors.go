package storage

import "errors"

var (
	ErrFileNotFound       = errors.New("file not found")
	ErrInvalidPath        = errors.New("invalid file path")
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrAccessDenied       = errors.New("access denied")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrOperationTimeout   = errors.New("storage operation timed out")
	ErrOperationCanceled  = errors.New("storage operation canceled")
	ErrRequestTimeout     = errors.New("storage request timed out")
	ErrServiceUnavailable = errors.New("storage service unavailable")
	ErrInvalidObjectState = errors.New("object is in an invalid state")
	ErrCorruptObject      = errors.New("compressed object is corrupt")
	ErrObjectTooLarge     = errors.New("decompressed object is too large")
)
