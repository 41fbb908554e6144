package server

import (
	"log/slog"

	"github.com/preston-bernstein/watchability-service/internal/config"
	"github.com/preston-bernstein/watchability-service/internal/providers"
	"github.com/preston-bernstein/watchability-service/internal/providers/fixture"
	"github.com/preston-bernstein/watchability-service/internal/providers/scoreboard"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "scoreboard":
		return scoreboard.NewClient(scoreboard.Config{
			BaseURL:  cfg.Scoreboard.BaseURL,
			APIKey:   cfg.Scoreboard.APIKey,
			Timezone: cfg.ReferenceTZ,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
