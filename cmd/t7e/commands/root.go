package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/t7e/core/config"
	"github.com/dmitrymomot/t7e/core/logger"
	"github.com/dmitrymomot/t7e/core/storage"
	"github.com/dmitrymomot/t7e/integration/storage/s3"
)

// Config is read from the environment and .env.
type Config struct {
	CatalogDir string `env:"T7E_CATALOG_DIR" envDefault:"locales"`
	Manifest   string `env:"T7E_MANIFEST" envDefault:"manifest.yaml"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`

	S3 s3.S3Config
}

// app carries what the subcommands share. It is filled in PersistentPreRunE.
type app struct {
	cfg    Config
	log    *slog.Logger
	source storage.Reader
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	var (
		dir      string
		manifest string
		level    string
	)

	root := &cobra.Command{
		Use:           "t7e",
		Short:         "Resolve messages from gettext MO catalogs",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("dir") {
				a.cfg.CatalogDir = dir
				// An explicit directory always wins over S3.
				a.cfg.S3.Bucket = ""
			}
			if flags.Changed("manifest") {
				a.cfg.Manifest = manifest
			}
			if flags.Changed("log-level") {
				a.cfg.LogLevel = level
			}

			opts := []logger.Option{
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(logger.ParseLevel(a.cfg.LogLevel)),
			}
			if a.cfg.LogFormat == "json" {
				opts = append(opts, logger.WithJSONFormatter())
			}
			a.log = logger.New(opts...)

			source, err := newSource(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			a.source = source
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dir, "dir", "", "catalog directory (default $T7E_CATALOG_DIR or ./locales)")
	root.PersistentFlags().StringVar(&manifest, "manifest", "", "manifest path inside the catalog source (default $T7E_MANIFEST or manifest.yaml)")
	root.PersistentFlags().StringVar(&level, "log-level", "", "debug, info, warn or error")

	root.AddCommand(translateCmd(a), inspectCmd(a), pluralCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// newSource picks S3 when a bucket is configured, the catalog directory otherwise.
// Either way gzip and zstd compressed files are decompressed on read.
func newSource(ctx context.Context, cfg Config) (storage.Reader, error) {
	var src storage.Reader = storage.NewDir(cfg.CatalogDir)
	if cfg.S3.Bucket != "" {
		remote, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 catalog source: %w", err)
		}
		src = remote
	}
	return storage.NewDecompressor(src)
}
