package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/t7e/core/storage"
)

// classifyS3Error converts S3 errors to storage sentinel errors.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Context errors first so cancellation is never reported as a backend failure.
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", storage.ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", storage.ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", storage.ErrFileNotFound, operation)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", storage.ErrBucketNotFound, operation)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", storage.ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s", storage.ErrRequestTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s", storage.ErrServiceUnavailable, operation)
		case "InvalidObjectState":
			return fmt.Errorf("%w: %s", storage.ErrInvalidObjectState, operation)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", storage.ErrFileNotFound, operation)
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", storage.ErrBucketNotFound, operation)
		default:
			return fmt.Errorf("%s failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
