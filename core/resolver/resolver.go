package resolver

import (
	"collection-manager/core/index"
)

// basicLandNames are reprinted so often that any printing is as good as another.
var basicLandNames = map[string]struct{}{
	"Plains":   {},
	"Island":   {},
	"Swamp":    {},
	"Mountain": {},
	"Forest":   {},
}

// Resolver finds catalog identifiers for legacy records.
type Resolver struct {
	idx    *index.Index
	tables Tables
}

// New creates a resolver over idx using the given correction tables.
func New(idx *index.Index, tables Tables) *Resolver {
	return &Resolver{idx: idx, tables: tables}
}

// Find returns the identifier of the printing row describes.
// It fails with NoMatchError or MultipleMatchError.
func (r *Resolver) Find(row Row) (string, error) {
	for _, name := range r.tables.names(row.Name) {
		ids := r.firstMatch(row, name)
		switch {
		case len(ids) == 0:
			continue
		case len(ids) == 1:
			return ids[0], nil
		}
		if _, ok := basicLandNames[name]; ok {
			// Lookup results are sorted
			return ids[0], nil
		}
		return "", &MultipleMatchError{Row: row, Candidates: ids}
	}
	return "", &NoMatchError{Row: row}
}

// firstMatch returns the result of the first key, in priority order, that matches anything.
func (r *Resolver) firstMatch(row Row, name string) []string {
	for _, key := range r.keys(row, name) {
		if ids := r.idx.Lookup(key); len(ids) > 0 {
			return ids
		}
	}
	return nil
}

// keys lists the composite keys for row in priority order. A key whose
// distinguishing component is missing from the row is the bare (set, name) key
// and is left for its own turn.
func (r *Resolver) keys(row Row, name string) []index.Key {
	artist := r.tables.artist(row.Artist)

	var keys []index.Key
	for _, set := range r.tables.setCodes(row.SetCode) {
		if row.Number != "" {
			keys = append(keys, index.Key{Set: set, Name: name, Number: row.Number})
		}
		if row.MultiverseID > 0 {
			keys = append(keys, index.Key{Set: set, Name: name, MultiverseID: row.MultiverseID})
		}
		if artist != "" {
			keys = append(keys, index.Key{Set: set, Name: name, Artist: artist})
		}
		keys = append(keys, index.Key{Set: set, Name: name})
	}
	return append(keys, index.Key{Name: name, Artist: artist})
}
