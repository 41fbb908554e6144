package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	PollInterval   Duration
	Provider       string
	Categories     []string
	ReferenceTZ    string
	DailyResetHour int
	DBPath         string
	Scoreboard     ScoreboardConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		PollInterval:   durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:       envOrDefault(envProvider, defaultProvider),
		Categories:     splitCategories(envOrDefault(envCategories, defaultCategories)),
		ReferenceTZ:    envOrDefault(envReferenceTZ, defaultReferenceTZ),
		DailyResetHour: hourEnvOrDefault(envDailyResetHour, defaultDailyResetHour),
		DBPath:         envOrDefault(envDBPath, defaultDBPath),
		Scoreboard:     loadScoreboard(),
		Metrics:        loadMetrics(),
	}
}

func splitCategories(raw string) []string {
	var categories []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		categories = append(categories, part)
	}
	if len(categories) == 0 {
		categories = []string{defaultCategories}
	}
	return categories
}
