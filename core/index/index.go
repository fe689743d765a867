package index

import (
	"slices"
	"sort"

	"collection-manager/core/catalog"
)

// Index is the read-only view over a catalog snapshot. It is safe for concurrent
// readers because nothing mutates it after Build.
type Index struct {
	sets       map[string]*catalog.Set
	cards      map[string]*catalog.Card
	byName     map[string][]*catalog.Card
	bySet      map[string][]*catalog.Card
	positions  map[string]int
	snnma      map[Key][]string
	migrations map[string]string
}

// Card returns the printing with the given identifier.
func (ix *Index) Card(id string) (catalog.Card, bool) {
	c, ok := ix.cards[id]
	if !ok {
		return catalog.Card{}, false
	}
	return *cloneCard(c), true
}

// Has reports whether id is a printing of the catalog.
func (ix *Index) Has(id string) bool {
	_, ok := ix.cards[id]
	return ok
}

// CardsByName returns all printings with the given display name in release order.
func (ix *Index) CardsByName(name string) []catalog.Card {
	return copyCards(ix.byName[name])
}

// Set returns the set with the given code.
func (ix *Index) Set(code string) (catalog.Set, bool) {
	s, ok := ix.sets[code]
	if !ok {
		return catalog.Set{}, false
	}
	return *s, true
}

// CardsBySet returns the printings of a set in collector number order.
func (ix *Index) CardsBySet(code string) []catalog.Card {
	return copyCards(ix.bySet[code])
}

// Position returns the zero-based position of a printing within its set.
func (ix *Index) Position(id string) (int, bool) {
	pos, ok := ix.positions[id]
	return pos, ok
}

// Lookup returns the identifiers matching a composite key, sorted. Nil when nothing matches.
func (ix *Index) Lookup(key Key) []string {
	return slices.Clone(ix.snnma[key])
}

// SetCodes returns every set code in ascending order.
func (ix *Index) SetCodes() []string {
	codes := make([]string, 0, len(ix.sets))
	for code := range ix.sets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of printings.
func (ix *Index) Len() int {
	return len(ix.cards)
}

// Stats summarizes the size of an index.
type Stats struct {
	Sets          int `json:"sets"`
	Cards         int `json:"cards"`
	Names         int `json:"names"`
	CompositeKeys int `json:"composite_keys"`
	Migrations    int `json:"migrations"`
}

// Stats returns the number of entries in each map.
func (ix *Index) Stats() Stats {
	return Stats{
		Sets:          len(ix.sets),
		Cards:         len(ix.cards),
		Names:         len(ix.byName),
		CompositeKeys: len(ix.snnma),
		Migrations:    len(ix.migrations),
	}
}

func copyCards(cards []*catalog.Card) []catalog.Card {
	if len(cards) == 0 {
		return nil
	}
	out := make([]catalog.Card, len(cards))
	for i, c := range cards {
		out[i] = *cloneCard(c)
	}
	return out
}

// cloneCard copies c including its slices, so callers never share backing arrays with the index.
func cloneCard(c *catalog.Card) *catalog.Card {
	out := *c
	out.Faces = slices.Clone(c.Faces)
	out.MultiverseIDs = slices.Clone(c.MultiverseIDs)
	return &out
}
