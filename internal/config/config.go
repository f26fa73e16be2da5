// Package config loads process configuration from the environment once at
// startup. The resulting Config is immutable and passed explicitly to the
// components that need it; nothing reads the environment after Load returns.
package config

import (
	"errors"
	"os"
)

// Config holds all environment-provided settings.
type Config struct {
	// MongoURI is the connection string for the document store.
	MongoURI string
	// Database is the Mongo database holding the Users and TaskList
	// collections.
	Database string
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// Port is the HTTP listen port.
	Port string
}

// Load reads configuration from the environment. A missing connection string
// or signing secret is a startup error, not a per-request condition.
func Load() (Config, error) {
	cfg := Config{
		MongoURI:  os.Getenv("MONGODB_URI"),
		Database:  envOrDefault("MONGODB_DATABASE", "taskade"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      envOrDefault("PORT", "8080"),
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGODB_URI environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
