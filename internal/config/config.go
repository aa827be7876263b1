// Package config handles application configuration: environment-backed
// settings (populated from an optional .env file in main) and JSON rules
// files.
package config

import "os"

// Config holds the environment-backed settings. The connection strings
// are optional; commands that need one check for it and fail with a
// clear message when it is absent.
type Config struct {
	SQLConnString   string
	MongoConnString string
	LogFile         string
}

// LoadConfig reads settings from environment variables (populated from
// the .env file loaded in main, when present).
func LoadConfig() *Config {
	return &Config{
		SQLConnString:   os.Getenv("CELLCHECK_SQL_CONN"),
		MongoConnString: os.Getenv("CELLCHECK_MONGO_CONN"),
		LogFile:         os.Getenv("CELLCHECK_LOG_FILE"),
	}
}
