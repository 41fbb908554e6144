package http

import (
	"time"

	"github.com/preston-bernstein/watchability-service/internal/confidence"
	domainpicks "github.com/preston-bernstein/watchability-service/internal/domain/picks"
)

type pickResponse struct {
	Category    string                      `json:"category"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Pick        *domainpicks.PickState      `json:"pick"`
	Alternates  []string                    `json:"alternates,omitempty"`
	Confidence  confidence.Result           `json:"confidence"`
	Metadata    domainpicks.RefreshMetadata `json:"metadata"`
	SourceError string                      `json:"sourceError,omitempty"`
}

type eventsResponse struct {
	Category    string                  `json:"category"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Count       int                     `json:"count"`
	Events      []domainpicks.Candidate `json:"events"`
}
