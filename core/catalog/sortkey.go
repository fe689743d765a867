package catalog

import (
	"regexp"
	"strconv"
)

var collectorNumberRe = regexp.MustCompile(`^(\d+)(.*)$`)

// SortKey decomposes a collector number into a leading integer part and a variant part.
// Collector numbers without leading digits have no integer part and keep the whole
// string as the variant.
type SortKey struct {
	Number    int
	HasNumber bool
	Variant   string
}

// ParseSortKey splits a collector number ("51a" -> 51, "a"; "★107" -> none, "★107").
func ParseSortKey(collectorNumber string) SortKey {
	m := collectorNumberRe.FindStringSubmatch(collectorNumber)
	if m == nil {
		return SortKey{Variant: collectorNumber}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// overflow; treat as an opaque variant
		return SortKey{Variant: collectorNumber}
	}
	return SortKey{Number: n, HasNumber: true, Variant: m[2]}
}

// Compare orders keys by (number-or-0, variant).
func (k SortKey) Compare(o SortKey) int {
	switch {
	case k.Number < o.Number:
		return -1
	case k.Number > o.Number:
		return 1
	case k.Variant < o.Variant:
		return -1
	case k.Variant > o.Variant:
		return 1
	}
	return 0
}
