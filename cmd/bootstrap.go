package cmd

import (
	"context"
	"fmt"
	"time"

	"collection-manager/core/catalog"
	"collection-manager/core/config"
	"collection-manager/core/database"
	"collection-manager/core/index"
	"collection-manager/core/logger"
	"collection-manager/core/storage"
	"collection-manager/feature/collection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles what every command needs after loading the configuration.
type session struct {
	cfg *config.Config
	log *zap.Logger
}

func bootstrap() (*session, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &session{cfg: cfg, log: l}, nil
}

func (s *session) storageClient() (storage.Client, error) {
	client, err := storage.NewClient(s.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

func (s *session) catalogSource() (catalog.Source, error) {
	var client storage.Client
	if s.cfg.Catalog.Source == catalog.SourceStorage {
		var err error
		if client, err = s.storageClient(); err != nil {
			return nil, err
		}
	}
	return catalog.NewSource(s.cfg.Catalog, client, s.cfg.Storage.Bucket)
}

// loadIndex loads the configured snapshot and indexes it once.
func (s *session) loadIndex(ctx context.Context) (*index.Index, error) {
	src, err := s.catalogSource()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cat, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	idx := index.Build(cat)

	stats := idx.Stats()
	s.log.Info("Catalog indexed",
		zap.String("source", src.Key()),
		zap.Int("sets", stats.Sets),
		zap.Int("cards", stats.Cards),
		zap.Int("migrations", stats.Migrations),
		zap.Duration("took", time.Since(start)),
	)
	return idx, nil
}

// openStore connects to the collection database and prepares its table.
func (s *session) openStore() (*collection.Store, error) {
	db, err := database.Connect(s.cfg.Database)
	if err != nil {
		return nil, err
	}
	store := collection.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// collectionService builds a service over a freshly loaded index.
func (s *session) collectionService(ctx context.Context, store *collection.Store) (*collection.Service, error) {
	idx, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	return collection.NewService(index.Static(idx), s.cfg.ResolverTables(), store, s.log, s.cfg.Collection), nil
}

// addSheetFlags registers --strict and --all, which override the collection config.
func addSheetFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Fail on the first row that cannot be resolved")
	cmd.Flags().Bool("all", false, "List every catalog printing in the written sheet")
}

func applySheetFlags(cmd *cobra.Command, cfg *collection.Config) {
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if f := cmd.Flags().Lookup("all"); f != nil && f.Changed {
		cfg.FullSheet, _ = cmd.Flags().GetBool("all")
	}
}
