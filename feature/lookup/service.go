package lookup

import (
	"context"
	"fmt"

	"collection-manager/core/catalog"
	"collection-manager/core/counts"
	"collection-manager/core/index"
	"collection-manager/core/resolver"

	"go.uber.org/zap"
)

// CardView is a printing as served by the API.
type CardView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Faces           []string `json:"faces,omitempty"`
	Set             string   `json:"set"`
	SetName         string   `json:"set_name,omitempty"`
	ReleasedAt      string   `json:"released_at,omitempty"`
	CollectorNumber string   `json:"collector_number"`
	Position        int      `json:"position"`
	MultiverseIDs   []int    `json:"multiverse_ids,omitempty"`
	Artist          string   `json:"artist,omitempty"`
	Digital         bool     `json:"digital"`
	// MigratedFrom is the requested identifier when it was retired in favor of ID.
	MigratedFrom string `json:"migrated_from,omitempty"`
}

// Service answers card lookups against the current index.
type Service struct {
	provider index.Provider
	tables   resolver.Tables
	logger   *zap.Logger
}

// NewService creates a lookup service.
func NewService(provider index.Provider, tables resolver.Tables, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, tables: tables, logger: logger}
}

// Card returns the printing id refers to, following migrations.
func (s *Service) Card(ctx context.Context, id string) (CardView, error) {
	idx, err := s.provider.Index(ctx)
	if err != nil {
		return CardView{}, fmt.Errorf("failed to load catalog index: %w", err)
	}

	resolved, err := idx.Resolve(id)
	if err != nil {
		return CardView{}, err
	}
	view, ok := viewOf(idx, resolved)
	if !ok {
		return CardView{}, &counts.CardNotFoundError{ID: resolved, SourceID: id}
	}
	if resolved != id {
		view.MigratedFrom = id
	}
	return view, nil
}

// Find resolves a legacy record to a single printing.
func (s *Service) Find(ctx context.Context, row resolver.Row) (CardView, error) {
	idx, err := s.provider.Index(ctx)
	if err != nil {
		return CardView{}, fmt.Errorf("failed to load catalog index: %w", err)
	}

	id, err := resolver.New(idx, s.tables).Find(row)
	if err != nil {
		return CardView{}, err
	}
	view, _ := viewOf(idx, id)
	return view, nil
}

// Stats returns the size of the current index.
func (s *Service) Stats(ctx context.Context) (index.Stats, error) {
	idx, err := s.provider.Index(ctx)
	if err != nil {
		return index.Stats{}, fmt.Errorf("failed to load catalog index: %w", err)
	}
	return idx.Stats(), nil
}

func viewOf(idx *index.Index, id string) (CardView, bool) {
	card, ok := idx.Card(id)
	if !ok {
		return CardView{}, false
	}
	pos, _ := idx.Position(id)

	view := CardView{
		ID:              card.ID,
		Name:            card.Name,
		Set:             card.Set,
		CollectorNumber: card.CollectorNumber,
		Position:        pos,
		MultiverseIDs:   card.MultiverseIDs,
		Artist:          card.Artist,
		Digital:         card.Digital,
	}
	for _, f := range card.Faces {
		view.Faces = append(view.Faces, f.Name)
	}
	if set, ok := idx.Set(card.Set); ok {
		view.SetName = set.Name
		view.Digital = view.Digital || set.Digital
		if !set.ReleasedAt.IsZero() {
			view.ReleasedAt = set.ReleasedAt.Format(catalog.DateLayout)
		}
	}
	return view, true
}
