// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database file. ":memory:" keeps everything
	// in process, which is handy for local runs and tests.
	DBPath string `koanf:"db_path"`

	// TopN is the number of entries returned by the rankings query
	// when the client does not ask for a specific limit.
	TopN int `koanf:"top_n"`

	// MaxRankingsLimit caps GET /api/rankings?limit.
	MaxRankingsLimit int `koanf:"max_rankings_limit"`

	// SeedConcerts loads the bootstrap concert catalog into an empty
	// store at startup.
	SeedConcerts bool `koanf:"seed_concerts"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		DBPath:           "rondo.db",
		TopN:             10,
		MaxRankingsLimit: 100,
		SeedConcerts:     true,
	}
}
