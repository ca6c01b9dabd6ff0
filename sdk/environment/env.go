// Package environment provides support for env vars and .env files.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. Missing files are not fatal for callers that treat local
// dotfiles as optional.
func LoadEnv() error {
	return godotenv.Load()
}

// LoadPath loads environment variables from the .env file at p. An empty
// path falls back to the working directory.
func LoadPath(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix joins a namespace prefix and key with an underscore.
// An empty prefix returns the key unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}

func GetPrefixEnv(prefix, key string) string {
	return os.Getenv(GetEnvKeyPrefix(prefix, key))
}
