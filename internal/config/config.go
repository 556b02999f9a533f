// Package config loads tool configuration from an optional yaml file,
// with environment variables (and a .env file in the working directory)
// overriding it. The lookup password is environment-only: it is held in
// process memory for the lifetime of the run and never persisted.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultLookupURL is the public XML endpoint of the lookup service.
const DefaultLookupURL = "https://xmldata.qrz.com/xml/current/"

// Environment variables recognized by Load. All override the yaml file.
const (
	EnvDatabase = "HAMLOG_DB"
	EnvUsername = "QRZ_USERNAME"
	EnvPassword = "QRZ_PASSWORD"
)

// Config holds the tool configuration.
type Config struct {
	// Database is the path of the SQLite logbook file.
	Database string `yaml:"database"`

	// Lookup configures the callsign lookup service.
	Lookup LookupConfig `yaml:"lookup"`
}

// LookupConfig holds the lookup-service settings. The password is
// deliberately not a yaml field.
type LookupConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"-"`
}

// Load builds the configuration: defaults, then the yaml file, then
// environment overrides. An empty path means the default location
// (~/.hamlog.yaml), where a missing file is fine; an explicit path that
// does not exist is an error.
func Load(path string) (Config, error) {
	// A .env in the working directory feeds the environment; existing
	// variables are never overridden.
	_ = godotenv.Load()

	cfg := Config{
		Database: defaultDatabasePath(),
		Lookup:   LookupConfig{URL: DefaultLookupURL},
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// pure defaults
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Lookup.Username = v
	}
	cfg.Lookup.Password = os.Getenv(EnvPassword)

	if cfg.Lookup.URL == "" {
		cfg.Lookup.URL = DefaultLookupURL
	}

	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hamlog.yaml"
	}
	return filepath.Join(home, ".hamlog.yaml")
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hamlog.db"
	}
	return filepath.Join(home, ".hamlog.db")
}
