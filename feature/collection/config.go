package collection

// Config holds collection processing options.
type Config struct {
	// Strict fails a whole run on the first row that cannot be resolved instead of skipping it.
	Strict bool `mapstructure:"strict" default:"false"`
	// Backup keeps a timestamped copy of a sheet before update rewrites it.
	Backup bool `mapstructure:"backup" default:"true"`
	// FullSheet lists every catalog printing in written sheets, not only owned ones.
	FullSheet bool `mapstructure:"full_sheet" default:"false"`
}
