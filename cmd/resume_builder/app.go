package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/jobs"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/seed"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App holds the components a command works with.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Store     *store.Store
	Generator generation.Generator
	Importer  *jobs.Importer
}

// resolveConfig applies the persistent flags over the loaded configuration.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend != "" {
		cfg.Storage = strings.ToLower(backend)
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.LogLevel, cfg.Verbose)
}

func newFxLogger(logger *zap.Logger) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: logger.Named("fx")}
	l.UseLogLevel(zapcore.DebugLevel)
	return l
}

func newPersister(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (storage.Persister, error) {
	p, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened",
		zap.String("backend", cfg.Storage),
		zap.String("data_dir", cfg.DataDir))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

// newStore restores the persisted state. A first run with seeding enabled
// starts from the sample data.
func newStore(cfg config.Config, p storage.Persister, logger *zap.Logger) (*store.Store, error) {
	ctx := context.Background()
	s, err := store.Open(ctx, p, store.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if s.Restored() || !cfg.SeedEnabled() {
		return s, nil
	}

	st, err := seed.State(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build sample data: %w", err)
	}
	if err := s.Replace(ctx, st); err != nil {
		return nil, err
	}
	logger.Info("populated sample data", zap.Int("resumes", len(st.Resumes)))
	return s, nil
}

// newLLMClient returns nil unless the llm generator is configured.
func newLLMClient(lc fx.Lifecycle, cfg config.Config) (llm.Client, error) {
	if cfg.Generator != config.GeneratorLLM {
		return nil, nil
	}
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithAllModels(cfg.Model)
	}
	client, err := llm.NewClient(context.Background(), llmCfg, cfg.APIKey)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func newGenerator(client llm.Client, logger *zap.Logger) generation.Generator {
	if client == nil {
		return generation.NewTemplateGenerator()
	}
	return generation.NewLLMGenerator(client, logger)
}

func newImporter(client llm.Client, logger *zap.Logger) *jobs.Importer {
	var extractor *jobs.Extractor
	if client != nil {
		extractor = jobs.NewExtractor(client)
	}
	return jobs.NewImporter(extractor, logger)
}

// withApp assembles the application, runs fn, and shuts everything down.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	a := &App{Config: cfg}
	app := fx.New(
		fx.Supply(cfg),
		fx.WithLogger(newFxLogger),
		fx.Provide(
			newLogger,
			newPersister,
			newStore,
			newLLMClient,
			newGenerator,
			newImporter,
		),
		fx.Populate(&a.Logger, &a.Store, &a.Generator, &a.Importer),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx, a)

	stopErr := app.Stop(context.Background())
	_ = a.Logger.Sync()
	if runErr != nil {
		return runErr
	}
	return stopErr
}
