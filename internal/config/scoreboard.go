package config

const (
	envScoreboardBaseURL = "SCOREBOARD_BASE_URL"
	envScoreboardAPIKey  = "SCOREBOARD_API_KEY"

	defaultScoreboardBaseURL = "https://api.sportsboard.io/v1"
)

// ScoreboardConfig controls how we talk to the scoreboard API.
type ScoreboardConfig struct {
	BaseURL string
	APIKey  string
}

func loadScoreboard() ScoreboardConfig {
	return ScoreboardConfig{
		BaseURL: envOrDefault(envScoreboardBaseURL, defaultScoreboardBaseURL),
		APIKey:  envOrDefault(envScoreboardAPIKey, ""),
	}
}
