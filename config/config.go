// Package config loads harness configuration from the environment,
// optionally primed from a .env file. Only the harness (cmd, httpapi)
// reads it; the core packages take explicit parameters.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the harness configuration values.
type Config struct {
	Rows     int    // Maze rows for random scenarios
	Cols     int    // Maze columns for random scenarios
	Tests    int    // Number of random scenarios per batch run
	Seed     int64  // Generator seed; 0 means seed from the clock
	FireMode string // Hazard mode name: dynamic, static or none
	HTTPAddr string // Listen address for the HTTP harness; empty disables it
}

// Load reads the configuration from the environment. A missing .env file
// is not an error; explicit environment variables win either way.
func Load() Config {
	loadDotenv()

	return Config{
		Rows:     envAsInt("FIREGRID_ROWS", 21),
		Cols:     envAsInt("FIREGRID_COLS", 21),
		Tests:    envAsInt("FIREGRID_TESTS", 5),
		Seed:     envAsInt64("FIREGRID_SEED", 0),
		FireMode: envWithDefault("FIREGRID_FIRE_MODE", "dynamic"),
		HTTPAddr: envWithDefault("FIREGRID_HTTP_ADDR", ""),
	}
}

// loadDotenv primes the environment from a .env file when one exists.
func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}
}

// envWithDefault retrieves an environment variable or returns the default.
func envWithDefault(key, def string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return def
}

// envAsInt retrieves an environment variable as an int, or fails fast on a
// value that does not parse.
func envAsInt(key string, def int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("[CONFIG] [FATAL] %s must be an integer: %v", key, err)
	}

	return n
}

// envAsInt64 retrieves an environment variable as an int64, or fails fast
// on a value that does not parse.
func envAsInt64(key string, def int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("[CONFIG] [FATAL] %s must be an integer: %v", key, err)
	}

	return n
}
