package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds probe settings
type Config struct {
	// Packages lists the managers to count; empty means detect them.
	Packages []string
	Output   string
	LogLevel string
	// Root is the filesystem root to probe; empty means the live system.
	Root string
}

// Load reads config from an optional .env file and the environment.
// The returned error only reports a .env that could not be loaded; the
// Config is always usable since the environment alone is enough.
func Load(envFiles ...string) (*Config, error) {
	envErr := godotenv.Load(envFiles...)

	output := strings.ToLower(getEnv("HOSTPROBE_OUTPUT", OutputText))
	if output != OutputJSON {
		output = OutputText
	}

	return &Config{
		Packages: splitList(os.Getenv("HOSTPROBE_PACKAGES")),
		Output:   output,
		LogLevel: getEnv("HOSTPROBE_LOG_LEVEL", "warn"),
		Root:     getEnv("HOSTPROBE_ROOT", ""),
	}, envErr
}

// getEnv reads an env var with a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// splitList splits a comma separated list, dropping blanks
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
