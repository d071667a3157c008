package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the first .env file found in the
// current or parent directory. Variables already set are not overridden.
// It returns the file that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return "", fmt.Errorf("error loading %s: %w", candidate, err)
		}
		return candidate, nil
	}
	return "", nil
}
