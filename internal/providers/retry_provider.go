package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
	"github.com/preston-bernstein/watchability-service/internal/logging"
	"github.com/preston-bernstein/watchability-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchEvents(ctx context.Context, category, date string) ([]events.Event, error) {
	var result []events.Event
	err := r.withRetries(ctx, "events", func() error {
		fetched, err := r.fetchEventsOnce(ctx, category, date)
		if err != nil {
			return err
		}
		result = fetched
		return nil
	})
	return result, err
}

func (r *retryingProvider) FetchRoster(ctx context.Context, category, teamCode string) ([]rosters.Entry, error) {
	var result []rosters.Entry
	err := r.withRetries(ctx, "roster", func() error {
		fetched, err := r.fetchRosterOnce(ctx, category, teamCode)
		if err != nil {
			return err
		}
		result = fetched
		return nil
	})
	return result, err
}

func (r *retryingProvider) fetchEventsOnce(ctx context.Context, category, date string) ([]events.Event, error) {
	start := time.Now()
	fetched, err := r.inner.FetchEvents(ctx, category, date)
	r.record(start, err)
	return fetched, err
}

func (r *retryingProvider) fetchRosterOnce(ctx context.Context, category, teamCode string) ([]rosters.Entry, error) {
	start := time.Now()
	fetched, err := r.inner.FetchRoster(ctx, category, teamCode)
	r.record(start, err)
	return fetched, err
}

func (r *retryingProvider) record(start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
	if rl, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
	}
}

func (r *retryingProvider) withRetries(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		if rl, ok := AsRateLimitError(err); ok && rl.RetryAfter > delay {
			delay = rl.RetryAfter
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
