package counts

// Merge sums any number of maps in a single pass over each input.
// Merging no maps yields an empty map.
func Merge(maps ...Map) Map {
	b := NewBuilder()
	for _, m := range maps {
		for id, c := range m.entries {
			b.AddCounts(id, c)
		}
	}
	return b.Map()
}

// Diff returns left - right per identifier and kind, omitting zero results.
func Diff(left, right Map) Map {
	b := NewBuilder()
	for id, c := range left.entries {
		b.AddCounts(id, c)
	}
	for id, c := range right.entries {
		b.AddCounts(id, Counts{Nonfoil: -c.Nonfoil, Foil: -c.Foil})
	}
	return b.Map()
}

// Negate flips the sign of every count.
func Negate(m Map) Map {
	return Diff(Map{}, m)
}
