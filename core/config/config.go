package config

import (
	"errors"
	"reflect"
	"strings"

	"collection-manager/core/catalog"
	"collection-manager/core/database"
	"collection-manager/core/logger"
	"collection-manager/core/resolver"
	"collection-manager/core/server"
	"collection-manager/core/storage"
	"collection-manager/feature/collection"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding catalog snapshots.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the collection store.
	Database database.Config `mapstructure:"database"`
	// Catalog selects the snapshot source.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Resolver holds correction tables added on top of the built-in ones.
	Resolver resolver.Tables `mapstructure:"resolver"`
	// Collection holds collection processing options.
	Collection collection.Config `mapstructure:"collection"`
}

// ResolverTables returns the built-in correction tables extended with the configured ones.
func (c *Config) ResolverTables() resolver.Tables {
	return resolver.DefaultTables().Merge(c.Resolver)
}

// LoadConfig loads configuration from config.yaml, the .env file and environment variables,
// in increasing order of precedence. Both files are optional.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CATALOG_SOURCE -> catalog.source)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		case reflect.Map, reflect.Slice:
			// only settable from the config file; an empty string default would not decode
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
