package collection

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"collection-manager/core/counts"
	"collection-manager/core/index"
	"collection-manager/core/resolver"

	"go.uber.org/zap"
)

// backupLayout is the timestamp inserted in backup file names.
const backupLayout = "20060102_150405"

// Service reads, aggregates and writes collection sheets against the current catalog.
type Service struct {
	provider index.Provider
	tables   resolver.Tables
	store    *Store
	logger   *zap.Logger
	cfg      Config
	now      func() time.Time
}

// NewService creates a collection service. store may be nil when no database is configured.
func NewService(provider index.Provider, tables resolver.Tables, store *Store, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		tables:   tables,
		store:    store,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) index(ctx context.Context) (*index.Index, error) {
	idx, err := s.provider.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog index: %w", err)
	}
	return idx, nil
}

func (s *Service) aggregator(idx *index.Index, strict bool) *counts.Aggregator {
	return counts.NewAggregator(idx, resolver.New(idx, s.tables), s.logger, strict)
}

// Resolver returns a resolver over the current index.
func (s *Service) Resolver(ctx context.Context) (*resolver.Resolver, error) {
	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	return resolver.New(idx, s.tables), nil
}

// Aggregate sums rows into a count map, honoring the configured strict mode.
func (s *Service) Aggregate(ctx context.Context, rows []resolver.Row) (counts.Map, error) {
	return s.AggregateStrict(ctx, rows, s.cfg.Strict)
}

// AggregateStrict is Aggregate with an explicit strict mode.
func (s *Service) AggregateStrict(ctx context.Context, rows []resolver.Row, strict bool) (counts.Map, error) {
	idx, err := s.index(ctx)
	if err != nil {
		return counts.Map{}, err
	}
	return s.aggregator(idx, strict).Aggregate(rows)
}

// Load reads every sheet and merges their counts.
func (s *Service) Load(ctx context.Context, paths ...string) (counts.Map, error) {
	idx, err := s.index(ctx)
	if err != nil {
		return counts.Map{}, err
	}
	agg := s.aggregator(idx, s.cfg.Strict)

	maps := make([]counts.Map, 0, len(paths))
	for _, path := range paths {
		rows, err := ReadRows(path)
		if err != nil {
			return counts.Map{}, err
		}
		m, err := agg.Aggregate(rows)
		if err != nil {
			return counts.Map{}, fmt.Errorf("%s: %w", path, err)
		}
		s.logger.Info("Sheet loaded",
			zap.String("file", path),
			zap.Int("rows", len(rows)),
			zap.Int("cards", m.Len()),
			zap.Int("copies", m.Total()),
		)
		maps = append(maps, m)
	}
	return counts.Merge(maps...), nil
}

// Write writes m to out. Every catalog printing is listed when the full sheet option is set.
func (s *Service) Write(ctx context.Context, out string, m counts.Map) error {
	return s.write(ctx, out, m, s.cfg.FullSheet)
}

func (s *Service) write(ctx context.Context, out string, m counts.Map, all bool) error {
	idx, err := s.index(ctx)
	if err != nil {
		return err
	}
	rows := BuildSheet(idx, m, all)
	if err := WriteRows(out, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	s.logger.Info("Sheet written", zap.String("file", out), zap.Int("rows", len(rows)))
	return nil
}

// Create writes an empty sheet listing every catalog printing.
func (s *Service) Create(ctx context.Context, out string) error {
	if _, err := os.Stat(out); err == nil {
		return fmt.Errorf("%s already exists", out)
	}
	return s.write(ctx, out, counts.Map{}, true)
}

// Update re-reads a sheet and rewrites it against the current catalog, so migrated
// printings move to their new identifier and new printings appear. The previous file is
// kept under a timestamped backup name, which is returned ("" when backups are off).
func (s *Service) Update(ctx context.Context, path string) (string, error) {
	m, err := s.Load(ctx, path)
	if err != nil {
		return "", err
	}

	var backup string
	if s.cfg.Backup {
		backup = BackupName(path, s.now())
		if err := copyFile(path, backup); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
		s.logger.Info("Backup written", zap.String("file", backup))
	}

	if err := s.write(ctx, path, m, true); err != nil {
		return backup, err
	}
	return backup, nil
}

// Merge sums the counts of ins and writes them to out.
func (s *Service) Merge(ctx context.Context, out string, ins ...string) (counts.Map, error) {
	m, err := s.Load(ctx, ins...)
	if err != nil {
		return counts.Map{}, err
	}
	return m, s.Write(ctx, out, m)
}

// Diff writes left - right to out. Only printings whose counts differ are listed.
func (s *Service) Diff(ctx context.Context, out, left, right string) (counts.Map, error) {
	l, err := s.Load(ctx, left)
	if err != nil {
		return counts.Map{}, err
	}
	r, err := s.Load(ctx, right)
	if err != nil {
		return counts.Map{}, err
	}

	d := counts.Diff(l, r)
	return d, s.write(ctx, out, d, false)
}

// Save aggregates the sheet at path and stores it under name.
func (s *Service) Save(ctx context.Context, name, path string) (counts.Map, error) {
	if s.store == nil {
		return counts.Map{}, ErrStoreUnavailable
	}
	m, err := s.Load(ctx, path)
	if err != nil {
		return counts.Map{}, err
	}
	if err := s.store.Save(ctx, name, m); err != nil {
		return counts.Map{}, err
	}
	s.logger.Info("Collection saved", zap.String("collection", name), zap.Int("cards", m.Len()))
	return m, nil
}

// Export writes the stored collection name to out.
func (s *Service) Export(ctx context.Context, name, out string) (counts.Map, error) {
	m, err := s.Stored(ctx, name)
	if err != nil {
		return counts.Map{}, err
	}
	return m, s.Write(ctx, out, m)
}

// Stored returns the stored collection name.
func (s *Service) Stored(ctx context.Context, name string) (counts.Map, error) {
	if s.store == nil {
		return counts.Map{}, ErrStoreUnavailable
	}
	return s.store.Load(ctx, name)
}

// Store replaces the stored collection name with m.
func (s *Service) Store(ctx context.Context, name string, m counts.Map) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	return s.store.Save(ctx, name, m)
}

// BackupName returns <name>.<YYYYMMDD_HHMMSS>.<ext> for path.
func BackupName(path string, at time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + at.Format(backupLayout) + ext
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
