// Package cmd defines and implements the CLI commands for the
// logofetch executable.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logofetch/logofetch/internal/bulk"
	"github.com/logofetch/logofetch/internal/config"
	"github.com/logofetch/logofetch/internal/fetcher"
	"github.com/logofetch/logofetch/internal/logging"
	"github.com/logofetch/logofetch/internal/logo"
	"github.com/logofetch/logofetch/internal/pipeline"
	"github.com/logofetch/logofetch/internal/resolver"
	"github.com/logofetch/logofetch/internal/sink"
	"github.com/logofetch/logofetch/internal/storage/memory"
	"github.com/logofetch/logofetch/internal/storage/postgres"
)

var (
	cfgFile string

	cfg    config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logofetch",
		Short: "Resolve company names to domains and fetch validated logos.",
		Long: `logofetch maps free-text company names to canonical domains using a
curated database with fuzzy and live-search fallbacks, then cascades
through multiple logo sources until one returns bytes that validate as
a real image.`,
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err = logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newBulkCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// buildResolver wires the curated database and the live-search tier.
func buildResolver(client *fetcher.Client) *resolver.Resolver {
	live := resolver.NewLiveSearch(client, cfg.Sources.LiveSearchBaseURL, logger)
	return resolver.New(resolver.NewDatabase(), live, logger)
}

func buildClient() *fetcher.Client {
	return fetcher.New(fetcher.Config{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
}

func buildPipeline(client *fetcher.Client) *pipeline.Pipeline {
	return pipeline.New(client, pipeline.SourceURLs{
		Clearbit:      cfg.Sources.ClearbitBaseURL,
		GoogleFavicon: cfg.Sources.FaviconBaseURL,
		DDG:           cfg.Sources.DDGBaseURL,
	}, logger)
}

func buildStore(ctx context.Context) (logo.Store, func(), error) {
	if cfg.DB.DSN == "" {
		return memory.New(), func() {}, nil
	}
	store, err := postgres.New(ctx, postgres.Config{DSN: cfg.DB.DSN, Table: cfg.DB.Table})
	if err != nil {
		return nil, nil, fmt.Errorf("init postgres store: %w", err)
	}
	return store, store.Close, nil
}

func buildSink() (logo.Sink, error) {
	fs, err := sink.New(cfg.Sink.Dir)
	if err != nil {
		return nil, fmt.Errorf("init sink at %s: %w", cfg.Sink.Dir, err)
	}
	return fs, nil
}

func buildCoordinator(ctx context.Context) (*bulk.Coordinator, func(), error) {
	client := buildClient()
	store, closeStore, err := buildStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	logoSink, err := buildSink()
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	coord := bulk.New(
		buildResolver(client),
		buildPipeline(client),
		logoSink,
		store,
		cfg.Bulk.Concurrency,
		logger,
	)
	return coord, closeStore, nil
}
