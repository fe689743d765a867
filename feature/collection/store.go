package collection

import (
	"context"
	"errors"
	"fmt"

	"collection-manager/core/counts"
	"collection-manager/core/database"

	"gorm.io/gorm"
)

// ErrCollectionNotFound is returned when no entries are stored under a name.
var ErrCollectionNotFound = errors.New("collection not found")

// ErrStoreUnavailable is returned by store-backed operations when no database is configured.
var ErrStoreUnavailable = errors.New("collection store not configured")

// CollectionEntry is the persisted count of one printing in one named collection.
type CollectionEntry struct {
	Collection string `gorm:"primaryKey;size:191"`
	ScryfallID string `gorm:"primaryKey;size:36"`
	Nonfoil    int    `gorm:"not null;default:0"`
	Foil       int    `gorm:"not null;default:0"`
}

// TableName pins the table name.
func (CollectionEntry) TableName() string {
	return "collection_entries"
}

var entryColumns = []string{"collection", "scryfall_id", "nonfoil", "foil"}

// Store persists named count maps.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the entries table and verifies its columns.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&CollectionEntry{}); err != nil {
		return fmt.Errorf("failed to migrate collection entries: %w", err)
	}

	missing, err := database.MissingColumns(s.db, CollectionEntry{}.TableName(), entryColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", CollectionEntry{}.TableName(), missing)
	}
	return nil
}

// Save replaces the stored collection name with m in one transaction.
func (s *Store) Save(ctx context.Context, name string, m counts.Map) error {
	entries := make([]CollectionEntry, 0, m.Len())
	for _, id := range m.IDs() {
		c := m.Get(id)
		entries = append(entries, CollectionEntry{Collection: name, ScryfallID: id, Nonfoil: c.Nonfoil, Foil: c.Foil})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", name).Delete(&CollectionEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear collection %s: %w", name, err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(entries, 500).Error; err != nil {
			return fmt.Errorf("failed to save collection %s: %w", name, err)
		}
		return nil
	})
}

// Load returns the stored counts of collection name.
func (s *Store) Load(ctx context.Context, name string) (counts.Map, error) {
	var entries []CollectionEntry
	if err := s.db.WithContext(ctx).Where("collection = ?", name).Find(&entries).Error; err != nil {
		return counts.Map{}, fmt.Errorf("failed to load collection %s: %w", name, err)
	}
	if len(entries) == 0 {
		return counts.Map{}, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}

	b := counts.NewBuilder()
	for _, e := range entries {
		b.AddCounts(e.ScryfallID, counts.Counts{Nonfoil: e.Nonfoil, Foil: e.Foil})
	}
	return b.Map(), nil
}

// Names lists the stored collection names.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&CollectionEntry{}).
		Distinct("collection").Order("collection").Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
