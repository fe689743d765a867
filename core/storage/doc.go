// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so catalog snapshots can be published to and read
// from AWS S3 or a self-hosted MinIO instance. The Client interface only exposes
// what the catalog needs, which keeps it easy to mock (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the snapshot bucket (EnsureBucket).
//   - PutObject: publish a snapshot file.
//   - GetObject: stream a snapshot file.
//   - ListObjects: list snapshot files under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	src := catalog.NewStorageSource(client, cfg.Storage.Bucket, "scryfall")
package storage
