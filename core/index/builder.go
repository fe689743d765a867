package index

import (
	"sort"
	"time"

	"collection-manager/core/catalog"
)

// Builder accumulates catalog records and produces an immutable Index.
// Sets must be added before the cards that belong to them so digital-only
// printings can be kept out of the composite key map.
type Builder struct {
	sets       map[string]*catalog.Set
	cards      map[string]*catalog.Card
	byName     map[string][]*catalog.Card
	bySet      map[string][]*catalog.Card
	snnma      map[Key]map[string]struct{}
	migrations map[string]string
	built      bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		sets:       make(map[string]*catalog.Set),
		cards:      make(map[string]*catalog.Card),
		byName:     make(map[string][]*catalog.Card),
		bySet:      make(map[string][]*catalog.Card),
		snnma:      make(map[Key]map[string]struct{}),
		migrations: make(map[string]string),
	}
}

// Build indexes a full catalog: sets, then cards, then migrations, in catalog order.
func Build(cat *catalog.Catalog) *Index {
	b := NewBuilder()
	for i := range cat.Sets {
		b.AddSet(cat.Sets[i])
	}
	for i := range cat.Cards {
		b.AddCard(cat.Cards[i])
	}
	for _, m := range cat.Migrations {
		b.AddMigration(m)
	}
	return b.Build()
}

// AddSet records a set. The builder keeps its own copy.
func (b *Builder) AddSet(set catalog.Set) {
	b.mustBeOpen()
	b.sets[set.Code] = &set
}

// AddCard records a printing and, unless it is digital-only, its composite keys.
func (b *Builder) AddCard(card catalog.Card) {
	b.mustBeOpen()
	c := cloneCard(&card)
	b.cards[c.ID] = c
	b.byName[c.Name] = append(b.byName[c.Name], c)
	b.bySet[c.Set] = append(b.bySet[c.Set], c)

	if b.isDigital(c) {
		return
	}
	for _, key := range compositeKeys(c) {
		ids, ok := b.snnma[key]
		if !ok {
			ids = make(map[string]struct{}, 1)
			b.snnma[key] = ids
		}
		ids[c.ID] = struct{}{}
	}
}

// AddMigration records old -> new for merge migrations with a target; others are ignored.
// A later migration for the same old identifier replaces an earlier one.
func (b *Builder) AddMigration(m catalog.Migration) {
	b.mustBeOpen()
	if !m.Merges() {
		return
	}
	b.migrations[m.OldID] = m.NewID
}

func (b *Builder) mustBeOpen() {
	if b.built {
		panic("index: Builder used after Build")
	}
}

func (b *Builder) isDigital(c *catalog.Card) bool {
	if c.Digital {
		return true
	}
	set, ok := b.sets[c.Set]
	return ok && set.Digital
}

// Build sorts the accumulated lists and returns the frozen Index.
// Any further call on the builder panics.
func (b *Builder) Build() *Index {
	if b.built {
		panic("index: Builder.Build called twice")
	}
	b.built = true

	for _, cards := range b.byName {
		sort.SliceStable(cards, func(i, j int) bool {
			return b.compareRelease(cards[i], cards[j]) < 0
		})
	}

	positions := make(map[string]int, len(b.cards))
	for _, cards := range b.bySet {
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].SortKey().Compare(cards[j].SortKey()) < 0
		})
		for pos, c := range cards {
			positions[c.ID] = pos
		}
	}

	snnma := make(map[Key][]string, len(b.snnma))
	for key, set := range b.snnma {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		snnma[key] = ids
	}

	idx := &Index{
		sets:       b.sets,
		cards:      b.cards,
		byName:     b.byName,
		bySet:      b.bySet,
		positions:  positions,
		snnma:      snnma,
		migrations: b.migrations,
	}

	// The index owns the maps from here on.
	b.sets, b.cards, b.byName, b.bySet, b.snnma, b.migrations = nil, nil, nil, nil, nil, nil
	return idx
}

// compareRelease orders printings of the same name by (set release date, set code,
// number, variant). Sets without a release date sort as the zero time, so a catalog
// without dates orders by (set code, number, variant) alone.
func (b *Builder) compareRelease(x, y *catalog.Card) int {
	if c := b.releasedAt(x.Set).Compare(b.releasedAt(y.Set)); c != 0 {
		return c
	}
	switch {
	case x.Set < y.Set:
		return -1
	case x.Set > y.Set:
		return 1
	}
	return x.SortKey().Compare(y.SortKey())
}

func (b *Builder) releasedAt(code string) time.Time {
	if set, ok := b.sets[code]; ok {
		return set.ReleasedAt
	}
	return time.Time{}
}
