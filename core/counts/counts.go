package counts

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// Kind is a count column.
type Kind string

const (
	// Nonfoil counts regular copies.
	Nonfoil Kind = "nonfoil"
	// Foil counts foil copies.
	Foil Kind = "foil"
)

// Kinds lists every count kind in column order.
var Kinds = []Kind{Nonfoil, Foil}

// Counts holds the copies of one printing.
type Counts struct {
	Nonfoil int `json:"nonfoil,omitempty"`
	Foil    int `json:"foil,omitempty"`
}

// Get returns the count of the given kind.
func (c Counts) Get(kind Kind) int {
	switch kind {
	case Nonfoil:
		return c.Nonfoil
	case Foil:
		return c.Foil
	}
	return 0
}

func (c *Counts) add(kind Kind, n int) {
	switch kind {
	case Nonfoil:
		c.Nonfoil += n
	case Foil:
		c.Foil += n
	default:
		panic(fmt.Sprintf("counts: unknown kind %q", kind))
	}
}

// IsZero reports whether every kind is zero.
func (c Counts) IsZero() bool {
	return c.Nonfoil == 0 && c.Foil == 0
}

// Total returns the sum over all kinds.
func (c Counts) Total() int {
	return c.Nonfoil + c.Foil
}

// Map is an immutable sparse identifier -> Counts mapping. The zero value is empty.
type Map struct {
	entries map[string]Counts
}

// Get returns the counts of id; absent identifiers count zero.
func (m Map) Get(id string) Counts {
	return m.entries[id]
}

// Has reports whether id has any non-zero count.
func (m Map) Has(id string) bool {
	_, ok := m.entries[id]
	return ok
}

// Len returns the number of identifiers with a non-zero count.
func (m Map) Len() int {
	return len(m.entries)
}

// IDs returns the stored identifiers, sorted.
func (m Map) IDs() []string {
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Total returns the sum of every count of every kind.
func (m Map) Total() int {
	total := 0
	for _, c := range m.entries {
		total += c.Total()
	}
	return total
}

// Equal reports whether both maps hold the same counts.
func (m Map) Equal(o Map) bool {
	if len(m.entries) != len(o.entries) {
		return false
	}
	for id, c := range m.entries {
		if oc, ok := o.entries[id]; !ok || oc != c {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as {"<id>": {"nonfoil": n, "foil": n}}.
func (m Map) MarshalJSON() ([]byte, error) {
	if m.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.entries)
}

// UnmarshalJSON decodes the MarshalJSON form, dropping zero entries.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]Counts
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b := NewBuilder()
	for id, c := range raw {
		b.AddCounts(id, c)
	}
	*m = b.Map()
	return nil
}

// Builder accumulates counts; it is the only way to construct a Map.
type Builder struct {
	entries map[string]Counts
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]Counts)}
}

// Add adds n copies of kind to id. Entries that reach zero are removed.
func (b *Builder) Add(id string, kind Kind, n int) {
	if n == 0 {
		return
	}
	c := b.entries[id]
	c.add(kind, n)
	b.set(id, c)
}

// AddCounts adds every kind of c to id.
func (b *Builder) AddCounts(id string, c Counts) {
	if c.IsZero() {
		return
	}
	cur := b.entries[id]
	cur.Nonfoil += c.Nonfoil
	cur.Foil += c.Foil
	b.set(id, cur)
}

func (b *Builder) set(id string, c Counts) {
	if c.IsZero() {
		delete(b.entries, id)
		return
	}
	b.entries[id] = c
}

// Map returns an immutable snapshot of the accumulated counts.
// The builder may keep being used; later additions do not affect the snapshot.
func (b *Builder) Map() Map {
	entries := make(map[string]Counts, len(b.entries))
	for id, c := range b.entries {
		entries[id] = c
	}
	return Map{entries: entries}
}

// Of builds a Map from literal counts; handy for callers holding plain data.
func Of(entries map[string]Counts) Map {
	b := NewBuilder()
	for id, c := range entries {
		b.AddCounts(id, c)
	}
	return b.Map()
}
