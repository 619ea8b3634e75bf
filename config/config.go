package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config returns the value of a required environment variable, loading .env
// on first use. Missing required variables abort the process.
func Config(envVar string) string {
	loadDotEnv()

	envVarValue := os.Getenv(envVar)
	if envVarValue == "" {
		fmt.Fprintf(os.Stderr, "%s not set\n", envVar)
		os.Exit(1)
	}

	return envVarValue
}

// ConfigOr returns the value of an optional environment variable, falling
// back to def when unset.
func ConfigOr(envVar, def string) string {
	loadDotEnv()

	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return def
}

func loadDotEnv() {
	loadEnv.Do(func() {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "No .env file loaded: %v\n", err)
		}
	})
}
