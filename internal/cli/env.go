package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for flags.
const (
	EnvLogFormat = "TICKSEQ_LOG_FORMAT"
	EnvLogLevel  = "TICKSEQ_LOG_LEVEL"
)

// LoadEnv loads variables from the given .env files into the process
// environment. Variables that are already set keep their value, and files
// that do not exist are skipped.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &ExitError{Code: 2, Message: fmt.Sprintf("failed to load %s: %v", file, err)}
		}
	}
	return nil
}

func envOr(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}
