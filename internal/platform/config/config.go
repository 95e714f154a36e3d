// Package config reads process configuration from the environment, with
// .env loaded separately by each command's composition root via godotenv.
package config

import (
	"os"
	"strconv"
)

// Get returns the environment variable key, or fallback if it is unset or
// empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the environment variable key parsed as an int, or fallback
// if it is unset or fails to parse.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
