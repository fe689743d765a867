// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's configuration.
// The collection store persists named count maps through it.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, configures the connection pool and
// verifies the connection with a ping bounded by Config.TimeoutSeconds. Open does the same
// for an existing dialector, which lets tests run against go-sqlmock.
//
// # Schema Inspection
//
// TableColumns lists a table's columns (PRAGMA table_info on sqlite, SHOW COLUMNS on MySQL).
// MissingColumns compares them to an expected set, which the collection store uses to detect
// a table created by an incompatible version.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "collection_entries", []string{"collection", "scryfall_id"})
package database
