// Package catalog holds the immutable reference data of the card catalog.
//
// A catalog is a full snapshot of every set, every printing ("card") and every
// identifier migration published by the catalog provider. It is loaded once per
// run from a Source and never mutated afterwards; the whole catalog is replaced
// when a newer snapshot becomes available.
//
// # Records
//
//   - Set: a release (code, name, release date, classification, digital flag).
//   - Card: a single printing identified by a UUID, belonging to exactly one Set.
//   - Migration: "old identifier replaced by new identifier" notices.
//
// # Sources
//
//   - FileSource: reads sets.json, cards.json and migrations.json from a directory.
//   - StorageSource: reads the same objects from an S3/MinIO bucket prefix.
//
// # Usage
//
//	src := catalog.NewFileSource("./data/catalog")
//	cat, err := src.Load(ctx)
package catalog
