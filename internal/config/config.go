package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the dataset library.
type Config struct {
	DataDir string
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when
// present (local development); a missing one is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataDir: envOrDefault(envDataDir, defaultDataDir),
		Metrics: loadMetrics(),
	}
}
