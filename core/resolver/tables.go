package resolver

import "strings"

// Substitution replaces Old with New inside a card name.
type Substitution struct {
	Old string `mapstructure:"old"`
	New string `mapstructure:"new"`
}

// Tables holds the static correction data used while resolving records.
type Tables struct {
	// AlternateSetCodes lists other codes a set code may have been exported under.
	AlternateSetCodes map[string][]string `mapstructure:"alternate_set_codes"`
	// ArtistSubstitutions maps an exported artist spelling to the catalog spelling.
	ArtistSubstitutions map[string]string `mapstructure:"artist_substitutions"`
	// NameSubstitutions are tried, in order, when the name as given matches nothing.
	NameSubstitutions []Substitution `mapstructure:"name_substitutions"`
}

// DefaultTables returns the built-in correction data.
func DefaultTables() Tables {
	return Tables{
		AlternateSetCodes: map[string][]string{
			"mbp":  {"pmei"},
			"mbp2": {"pmei"},
			"dpa":  {"pdp10"},
			"pgpx": {"pgp1"},
		},
		ArtistSubstitutions: map[string]string{
			"Brian Snoddy":        "Brian Snõddy",
			"Edward P. Beard Jr.": "Edward P. Beard, Jr.",
			"Parente":             "Paolo Parente",
		},
		NameSubstitutions: []Substitution{
			{Old: "Aether", New: "Æther"},
			{Old: "Lim-Dul", New: "Lim-Dûl"},
		},
	}
}

// Merge returns t with every entry of other added; other wins on conflicts.
func (t Tables) Merge(other Tables) Tables {
	out := Tables{
		AlternateSetCodes:   make(map[string][]string, len(t.AlternateSetCodes)+len(other.AlternateSetCodes)),
		ArtistSubstitutions: make(map[string]string, len(t.ArtistSubstitutions)+len(other.ArtistSubstitutions)),
	}
	for k, v := range t.AlternateSetCodes {
		out.AlternateSetCodes[k] = v
	}
	for k, v := range other.AlternateSetCodes {
		out.AlternateSetCodes[k] = v
	}
	for k, v := range t.ArtistSubstitutions {
		out.ArtistSubstitutions[k] = v
	}
	for k, v := range other.ArtistSubstitutions {
		out.ArtistSubstitutions[k] = v
	}
	out.NameSubstitutions = append(append(out.NameSubstitutions, t.NameSubstitutions...), other.NameSubstitutions...)
	return out
}

// setCodes returns the set codes to try for code: as given, lower-cased, then alternates.
func (t Tables) setCodes(code string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	lower := strings.ToLower(code)
	add(code)
	add(lower)
	for _, alt := range t.AlternateSetCodes[code] {
		add(alt)
	}
	for _, alt := range t.AlternateSetCodes[lower] {
		add(alt)
	}
	return out
}

// artist returns the catalog spelling of an exported artist name.
// Keys loaded through viper arrive lower-cased, so a case-insensitive match is accepted too.
func (t Tables) artist(name string) string {
	if sub, ok := t.ArtistSubstitutions[name]; ok {
		return sub
	}
	for from, sub := range t.ArtistSubstitutions {
		if strings.EqualFold(from, name) {
			return sub
		}
	}
	return name
}

// names returns name followed by every distinct substituted variant.
func (t Tables) names(name string) []string {
	out := []string{name}
	for _, sub := range t.NameSubstitutions {
		if sub.Old == "" || !strings.Contains(name, sub.Old) {
			continue
		}
		out = append(out, strings.ReplaceAll(name, sub.Old, sub.New))
	}
	return out
}
