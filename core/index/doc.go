// Package index builds the read-only lookup structures over a card catalog.
//
// An Index is built once per catalog snapshot by a Builder and is never mutated
// afterwards; a newer snapshot produces a brand new Index. It exposes:
//
//   - identifier -> card
//   - name -> cards, ordered by set release, set code and collector number
//   - set code -> set, and set code -> cards in collector number order
//   - identifier -> position of the card within its set
//   - composite "snnma" key (set, name, number, multiverse id, artist) -> identifiers,
//     where any component but the name may be a wildcard
//   - identifier migration chain (old -> new), walked by Resolve
//
// Cards from digital-only sets take part in every map except the composite key
// map; legacy records never refer to them.
//
// # Usage
//
//	idx := index.Build(cat)
//	ids := idx.Lookup(index.Key{Set: "fem", Name: "Thallid", Number: "74a"})
//	id, err := idx.Resolve(oldID)
package index
