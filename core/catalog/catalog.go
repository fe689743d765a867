package catalog

import "time"

// MigrationStrategyMerge marks a migration whose old identifier now lives on as the new identifier.
const MigrationStrategyMerge = "merge"

// Set is a single card release.
type Set struct {
	// Code is the unique, case-sensitive short code of the set (e.g. "fem").
	Code string `json:"code"`
	// Name is the display name of the set.
	Name string `json:"name"`
	// ReleasedAt is the release date. Zero when the provider does not publish one.
	ReleasedAt time.Time `json:"released_at"`
	// SetType is the provider classification (core, expansion, promo, ...).
	SetType string `json:"set_type"`
	// Digital is true for sets only available in digital clients.
	Digital bool `json:"digital"`
}

// Face is one face of a multi-faced printing.
type Face struct {
	Name string `json:"name"`
}

// Card is a single printing of a card.
type Card struct {
	// ID is the globally unique identifier (UUID) of the printing.
	ID string `json:"id"`
	// Set is the code of the set this printing belongs to.
	Set string `json:"set"`
	// Name is the display name. Multi-faced cards join face names with " // ".
	Name string `json:"name"`
	// Faces lists the faces of a multi-faced printing, in order. Empty for single-faced cards.
	Faces []Face `json:"card_faces,omitempty"`
	// CollectorNumber is the number within the set, possibly with variant marks ("51a", "★107").
	CollectorNumber string `json:"collector_number"`
	// MultiverseIDs are the legacy numeric cross-reference identifiers.
	MultiverseIDs []int `json:"multiverse_ids,omitempty"`
	// Artist is the credited artist, if any.
	Artist string `json:"artist,omitempty"`
	// Digital is true for printings only available in digital clients.
	Digital bool `json:"digital"`
}

// SortKey returns the in-set ordering key derived from the collector number.
func (c *Card) SortKey() SortKey {
	return ParseSortKey(c.CollectorNumber)
}

// Migration records that a printing identifier was retired.
type Migration struct {
	// OldID is the retired identifier.
	OldID string `json:"old_scryfall_id"`
	// NewID is the replacement identifier; empty when the printing was removed outright.
	NewID string `json:"new_scryfall_id,omitempty"`
	// Strategy is the provider migration strategy ("merge", "delete").
	Strategy string `json:"migration_strategy"`
}

// Merges reports whether the migration contributes to identifier resolution.
func (m Migration) Merges() bool {
	return m.Strategy == MigrationStrategyMerge && m.NewID != ""
}

// Catalog is a complete, already-parsed snapshot of the reference data.
// Slices are kept in provider order; index construction depends on it.
type Catalog struct {
	Sets       []Set
	Cards      []Card
	Migrations []Migration
}
