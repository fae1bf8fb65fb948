package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/t7e/core/storage"
)

// Compile-time check that S3Storage implements storage.Reader.
var _ storage.Reader = (*S3Storage)(nil)

// S3Client defines the S3 operations used by S3Storage.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// S3Storage reads objects from a single bucket, optionally below a key prefix.
type S3Storage struct {
	client      S3Client
	bucket      string
	prefix      string
	readTimeout time.Duration
}

// S3Config contains configuration for S3 storage.
type S3Config struct {
	Bucket         string `env:"T7E_S3_BUCKET"`
	Region         string `env:"T7E_S3_REGION"`
	AccessKeyID    string `env:"T7E_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"T7E_S3_SECRET_KEY"`
	Endpoint       string `env:"T7E_S3_ENDPOINT"`         // For S3-compatible services like MinIO, Wasabi
	Prefix         string `env:"T7E_S3_PREFIX"`           // Key prefix prepended to every catalog name
	ForcePathStyle bool   `env:"T7E_S3_FORCE_PATH_STYLE"` // Required for MinIO and some S3-compatible services
}

// S3Option defines a function that configures S3Storage.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
	readTimeout     time.Duration
}

// WithS3Client sets a custom pre-configured S3 client.
// Primarily used for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithReadTimeout bounds each Read call.
// If not set, relies on context deadline from caller.
func WithReadTimeout(timeout time.Duration) S3Option {
	return func(o *s3Options) {
		o.readTimeout = timeout
	}
}

// New creates a new S3 catalog reader.
func New(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, storage.ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		// Static credentials when provided; the default chain otherwise.
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}

		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(o *s3aws.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
	}

	return &S3Storage{
		client:      client,
		bucket:      cfg.Bucket,
		prefix:      strings.Trim(cfg.Prefix, "/"),
		readTimeout: options.readTimeout,
	}, nil
}

// Read downloads the object stored under the configured prefix and name.
func (s *S3Storage) Read(ctx context.Context, name string) ([]byte, error) {
	if s.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.readTimeout)
		defer cancel()
	}

	key, err := s.objectKey(name)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "read "+key)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, classifyS3Error(err, "read "+key)
	}

	return data, nil
}

// objectKey joins prefix and name, rejecting traversal segments.
func (s *S3Storage) objectKey(name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", storage.ErrInvalidPath, name)
	}
	if s.prefix == "" {
		return name, nil
	}
	return path.Join(s.prefix, name), nil
}
