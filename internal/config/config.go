// Package config loads CLI settings from flags, environment, .env files and
// an optional .dbaccessor.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem used for config and .env discovery.
var AppFs = afero.NewOsFs()

// Setting keys. Environment variables use the DBACCESSOR_ prefix, for
// example DBACCESSOR_CREATE_IF_MISSING.
const (
	KeyProvider        = "provider"
	KeyDatabase        = "database"
	KeyCreateIfMissing = "create_if_missing"
	KeyVerbose         = "verbose"
	KeyFormat          = "format"
)

const envPrefix = "DBACCESSOR"

// Config holds the application configuration
type Config struct {
	Provider        string
	Database        string
	CreateIfMissing bool
	Verbose         bool
	// Format is the default schema dump format.
	Format string
	// File is the config file that was read, if any.
	File string
}

// New returns a viper instance with the search paths, environment binding
// and defaults in place. Flags are bound to it by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetFs(AppFs)

	// Set config file paths
	v.SetConfigName(".dbaccessor")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "dbaccessor"))
	}

	// Set environment variable prefix
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault(KeyProvider, "sqlite")
	v.SetDefault(KeyDatabase, "")
	v.SetDefault(KeyCreateIfMissing, true)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyFormat, "json")

	return v
}

// Load reads configuration into a Config. An explicit configFile must exist;
// the search paths are optional.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	loadDotEnv()

	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to expand config path: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Provider:        v.GetString(KeyProvider),
		Database:        v.GetString(KeyDatabase),
		CreateIfMissing: v.GetBool(KeyCreateIfMissing),
		Verbose:         v.GetBool(KeyVerbose),
		Format:          v.GetString(KeyFormat),
		File:            v.ConfigFileUsed(),
	}

	if cfg.Database == "" {
		cfg.Database = os.Getenv("DATABASE_URL")
	}
	if cfg.Database != "" && cfg.Provider == "sqlite" {
		expanded, err := homedir.Expand(cfg.Database)
		if err == nil {
			cfg.Database = expanded
		}
	}

	return cfg, nil
}

// loadDotEnv loads .env and then .env.local, which takes priority. Missing
// or unreadable files are skipped.
func loadDotEnv() {
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}
}

// Validate checks that a database was configured.
func (c *Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("no database configured: pass --db, set %s_DATABASE or DATABASE_URL", envPrefix)
	}
	return nil
}
