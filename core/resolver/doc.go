// Package resolver maps loosely structured card records to catalog identifiers.
//
// Records coming from older spreadsheet layouts or foreign exports rarely carry
// the printing identifier. The Resolver recovers it from whatever fragments are
// present (set code, name, collector number, multiverse id, artist) by querying
// the index's composite keys from most to least specific:
//
//  1. (set, name, number, *, *)
//  2. (set, name, *, multiverse id, *)
//  3. (set, name, *, *, artist)
//  4. (set, name, *, *, *)
//  5. (*, name, *, *, artist)
//
// Keys 1-4 are tried for the exact set code, its lower-cased form and any
// alternate spellings from Tables; key 5 is tried last. The first key that
// matches anything decides: one identifier is returned, several identifiers
// are a MultipleMatchError unless the name is a basic land. A looser key is
// never consulted to break an ambiguity found by a stricter one.
package resolver
