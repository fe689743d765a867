package index

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMigrationCycle is matched by every MigrationCycleError.
var ErrMigrationCycle = errors.New("migration cycle")

// MigrationCycleError reports an identifier whose migration chain loops.
type MigrationCycleError struct {
	ID    string
	Chain []string
}

func (e *MigrationCycleError) Error() string {
	return fmt.Sprintf("migration cycle starting at %s: %s", e.ID, strings.Join(e.Chain, " -> "))
}

// Is makes errors.Is(err, ErrMigrationCycle) match.
func (e *MigrationCycleError) Is(target error) bool {
	return target == ErrMigrationCycle
}

// Resolve follows the migration chain from id to its terminal identifier.
// The result may be absent from the catalog when a link is broken; callers check Has.
func (ix *Index) Resolve(id string) (string, error) {
	next, ok := ix.migrations[id]
	if !ok {
		return id, nil
	}

	chain := []string{id}
	seen := map[string]struct{}{id: {}}
	for ok {
		chain = append(chain, next)
		if _, dup := seen[next]; dup {
			return "", &MigrationCycleError{ID: chain[0], Chain: chain}
		}
		seen[next] = struct{}{}
		id = next
		next, ok = ix.migrations[id]
	}
	return id, nil
}
