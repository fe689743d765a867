// Package config provides configuration management for the collection manager.
//
// It utilizes Viper for loading configuration from an optional config.yaml, an optional
// .env file and environment variables, the latter taking precedence.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, body limit
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: Logging level and format
//   - Database: collection store driver and connection
//   - Catalog: snapshot source (file or storage) and index cache TTL
//   - Resolver: extra alternate set codes, artist and name substitutions (config.yaml only)
//   - Collection: strict resolution
//
// Scalar fields declare their default through a `default` struct tag; the tags are
// registered with Viper reflectively so every key can be overridden from the environment
// (CATALOG_SOURCE=storage sets catalog.source).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Catalog.Path)
package config
