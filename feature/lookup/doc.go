// Package lookup serves read-only card lookups over the catalog index.
//
//	GET /cards/:id      one printing; retired identifiers follow their migration
//	GET /cards?name=    resolve set, name, number, multiverseid and artist like a sheet row
//	GET /cards/stats    index size
//
// A lookup that matches nothing answers 404; an ambiguous one answers 409 with the
// candidate identifiers.
package lookup
