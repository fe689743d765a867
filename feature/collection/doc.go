// Package collection reads, aggregates, writes and stores card collections.
//
// A collection sheet is a CSV or XLSX file with one row per printing. Rows are read into
// header-keyed records, coerced into resolver rows and summed by the count aggregator
// against the current catalog index. Written sheets use the columns
//
//	set,name,number,scryfall_id,nonfoil,foil
//
// ordered by set code, then by position in the set. Zero counts are left blank.
//
// # Operations
//
//   - Create: a new sheet listing every catalog printing with no copies.
//   - Update: re-resolve a sheet against the current catalog after backing it up as
//     <name>.<YYYYMMDD_HHMMSS>.<ext>.
//   - Merge and Diff: sum several sheets, or subtract one from another.
//   - Save and Export: persist a sheet's counts under a name through the gorm Store, and
//     write a stored collection back out.
//
// # HTTP
//
//	POST /collection/aggregate   {"rows": [...], "strict": false} -> {"counts": {...}}
//	POST /collection/diff        {"left": {...}, "right": {...}} -> {"diff": {...}}
//	GET  /collections/:name      stored counts
//	PUT  /collections/:name      aggregate rows and store them
//
// Unresolvable rows answer 409 (ambiguous, with candidates) or 422.
package collection
