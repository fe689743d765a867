package counts

import (
	"errors"
	"fmt"

	"collection-manager/core/index"
	"collection-manager/core/resolver"

	"go.uber.org/zap"
)

// ErrCardNotFound is matched by every CardNotFoundError.
var ErrCardNotFound = errors.New("card not found")

// CardNotFoundError reports counts attributed to an identifier missing from the catalog.
type CardNotFoundError struct {
	// ID is the identifier after migration resolution.
	ID string
	// SourceID is the identifier the row referred to, before migration.
	SourceID string
}

func (e *CardNotFoundError) Error() string {
	if e.SourceID != "" && e.SourceID != e.ID {
		return fmt.Sprintf("card %s (migrated from %s) not found in catalog", e.ID, e.SourceID)
	}
	return fmt.Sprintf("card %s not found in catalog", e.ID)
}

// Is makes errors.Is(err, ErrCardNotFound) match.
func (e *CardNotFoundError) Is(target error) bool {
	return target == ErrCardNotFound
}

// Aggregator turns input rows into a Map against one catalog index.
type Aggregator struct {
	idx      *index.Index
	resolver *resolver.Resolver
	logger   *zap.Logger
	strict   bool
}

// NewAggregator creates an aggregator. When strict is false, rows the resolver cannot
// match are logged and skipped; when true the first resolution error is returned.
func NewAggregator(idx *index.Index, res *resolver.Resolver, logger *zap.Logger, strict bool) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{idx: idx, resolver: res, logger: logger, strict: strict}
}

// Aggregate sums the counts of rows per resolved identifier.
// Rows whose counts total zero contribute nothing and are not resolved.
func (a *Aggregator) Aggregate(rows []resolver.Row) (Map, error) {
	b := NewBuilder()
	skipped := 0

	for i, row := range rows {
		if row.Nonfoil+row.Foil == 0 {
			continue
		}

		id := row.ScryfallID
		if id == "" {
			found, err := a.resolver.Find(row)
			if err != nil {
				if a.strict {
					return Map{}, fmt.Errorf("row %d: %w", i+1, err)
				}
				skipped++
				a.logger.Warn("Skipping unresolved row",
					zap.Int("row", i+1),
					zap.String("set", row.SetCode),
					zap.String("name", row.Name),
					zap.String("number", row.Number),
					zap.Error(err),
				)
				continue
			}
			id = found
		}

		resolved, err := a.idx.Resolve(id)
		if err != nil {
			return Map{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !a.idx.Has(resolved) {
			return Map{}, fmt.Errorf("row %d: %w", i+1, &CardNotFoundError{ID: resolved, SourceID: id})
		}

		b.AddCounts(resolved, Counts{Nonfoil: row.Nonfoil, Foil: row.Foil})
	}

	if skipped > 0 {
		a.logger.Warn("Rows skipped during aggregation", zap.Int("skipped", skipped), zap.Int("rows", len(rows)))
	}
	return b.Map(), nil
}
