package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if one can be
// found. Already-set system environment variables take precedence.
func LoadDotEnv() {
	// Try the current directory and parent directories first
	envFiles := []string{
		".env",
		"../.env",
		"../../.env",
	}

	// Also check from the executable's directory
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		envFiles = append(envFiles,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, envFile := range envFiles {
		// godotenv.Load never overrides existing variables
		if err := godotenv.Load(envFile); err == nil {
			return
		}
	}

	// No .env file found, that's okay - use system env vars
}
