package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that fill in unset command line flags.
const (
	EnvConfig = "SLINGSHOT_CONFIG"
	EnvLevels = "SLINGSHOT_LEVELS"
	EnvLog    = "SLINGSHOT_LOG"
)

// LoadEnv loads variables from the given .env files (".env" when none
// are named). Missing files are skipped; variables already set in the
// environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("cannot load %s: %w", f, err)
		}
	}
	return nil
}

// EnvOr returns value when non-empty, else the environment variable key.
func EnvOr(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}
