package collection

import (
	"collection-manager/core/counts"
	"collection-manager/core/index"
)

// BuildSheet lays out a count map as sheet rows ordered by set code, then position in set.
// With all set, every catalog printing gets a row, owned or not. Identifiers unknown to
// the index keep their counts on trailing rows that carry only the identifier.
func BuildSheet(idx *index.Index, m counts.Map, all bool) []SheetRow {
	var rows []SheetRow
	placed := make(map[string]struct{}, m.Len())

	for _, code := range idx.SetCodes() {
		for _, card := range idx.CardsBySet(code) {
			c := m.Get(card.ID)
			if !all && c.IsZero() {
				continue
			}
			placed[card.ID] = struct{}{}
			rows = append(rows, SheetRow{
				Set:        card.Set,
				Name:       card.Name,
				Number:     card.CollectorNumber,
				ScryfallID: card.ID,
				Nonfoil:    c.Nonfoil,
				Foil:       c.Foil,
			})
		}
	}

	for _, id := range m.IDs() {
		if _, ok := placed[id]; ok {
			continue
		}
		c := m.Get(id)
		rows = append(rows, SheetRow{ScryfallID: id, Nonfoil: c.Nonfoil, Foil: c.Foil})
	}

	return rows
}
