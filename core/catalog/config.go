package catalog

import "time"

// Source kinds accepted in Config.Source.
const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// Config selects where catalog snapshots are read from.
type Config struct {
	// Source is either "file" (Path is a directory) or "storage" (objects under Prefix in the storage bucket).
	Source string `mapstructure:"source" default:"file"`
	// Path is the snapshot directory for the file source.
	Path string `mapstructure:"path" default:"data"`
	// Prefix is the object prefix for the storage source.
	Prefix string `mapstructure:"prefix" default:"scryfall"`
	// CacheTTLSeconds bounds how long the server keeps a built index. Zero rebuilds on every request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
