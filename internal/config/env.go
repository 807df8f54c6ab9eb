package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envPaths are the supported env file names, tried in order.
var envPaths = []string{".env", ".env.local"}

// LoadEnvFile loads environment variables from the first .env file
// found in the working directory. Existing process environment
// variables are not overwritten. Returns the name of the loaded file.
func LoadEnvFile() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("load %s: %w", envPath, err)
		}
		return envPath, nil
	}
	return "", fmt.Errorf("no .env file found")
}
