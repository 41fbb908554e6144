package scoreboard

import "time"

const providerName = "scoreboard"

const (
	defaultBaseURL     = "https://api.sportsboard.io/v1"
	defaultTimezone    = "America/New_York"
	defaultHTTPTimeout = 10 * time.Second
)
