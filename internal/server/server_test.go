package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/config"
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
	"github.com/preston-bernstein/watchability-service/internal/poller"
	"github.com/preston-bernstein/watchability-service/internal/providers/scoreboard"
	"github.com/preston-bernstein/watchability-service/internal/store"
)

type stubProvider struct {
	events []events.Event
	notify chan struct{}
}

func (s *stubProvider) FetchEvents(ctx context.Context, category, date string) ([]events.Event, error) {
	_ = ctx
	_ = date
	_ = category
	if s.notify != nil {
		select {
		case <-s.notify:
		default:
			close(s.notify)
		}
	}
	return s.events, nil
}

func (s *stubProvider) FetchRoster(ctx context.Context, category, teamCode string) ([]rosters.Entry, error) {
	_ = ctx
	_ = category
	_ = teamCode
	return nil, nil
}

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) {
	_ = ctx
	p.startCalls++
}

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status {
	return p.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

type blockingHTTPServer struct {
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error {
	return nil
}

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string {
	return ":0"
}

func (s *blockingHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func testConfig() config.Config {
	return config.Config{
		Port:           "0",
		PollInterval:   5 * time.Millisecond,
		Categories:     []string{"nba"},
		ReferenceTZ:    "UTC",
		DailyResetHour: 4,
		DBPath:         ":memory:",
	}
}

func TestServerServesHealthAndPicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now().UTC().Add(2 * time.Hour)
	provider := &stubProvider{
		events: []events.Event{
			{
				ID:        "stub-1",
				Category:  "nba",
				Provider:  "stub",
				HomeTeam:  teams.Team{Code: "BOS", Name: "Celtics", Record: "30-10"},
				AwayTeam:  teams.Team{Code: "LAL", Name: "Lakers", Record: "28-12"},
				StartTime: start,
				Status:    events.StatusScheduled,
				FetchedAt: time.Now().UTC(),
			},
		},
		notify: make(chan struct{}),
	}

	srv, err := newServerWithDeps(testConfig(), nil, provider, store.NewMemoryStore())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	srv.poller.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	router := srv.Handler()

	healthReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, healthReq)

	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	// Refresh directly so the pick is guaranteed to exist before we read it.
	if _, err := srv.pickService.Refresh(ctx, "nba"); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	pickReq := httptest.NewRequest(http.MethodGet, "/picks/nba", nil)
	pickRec := httptest.NewRecorder()
	router.ServeHTTP(pickRec, pickReq)

	if pickRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /picks/nba, got %d", pickRec.Code)
	}

	var body struct {
		Category string `json:"category"`
		Pick     *struct {
			EventID string `json:"eventId"`
		} `json:"pick"`
	}
	if err := json.NewDecoder(pickRec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode pick response: %v", err)
	}
	if body.Category != "nba" {
		t.Fatalf("unexpected category %q", body.Category)
	}
	if body.Pick == nil || body.Pick.EventID != "stub-1" {
		t.Fatalf("expected stub-1 to be picked, got %+v", body.Pick)
	}

	cancel()
	_ = srv.poller.Stop(context.Background())
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil)
	if provider == nil {
		t.Fatalf("expected provider fallback")
	}
}

func TestSelectProviderChoosesScoreboard(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: "scoreboard",
		Scoreboard: config.ScoreboardConfig{
			BaseURL: "http://example.com",
			APIKey:  "key",
		},
	}, nil)
	if _, ok := provider.(*scoreboard.Client); !ok {
		t.Fatalf("expected scoreboard provider")
	}
}

func TestProviderFactoryBuildsFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	if prov := factory.build(config.Config{Provider: "fixture"}); prov == nil {
		t.Fatalf("expected provider")
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "fixture"

	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("Scoreboard", nil); got != "scoreboard" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic fallback, got %q", got)
	}
	if got := normalizeProviderName("", &stubProvider{}); got == "" {
		t.Fatalf("expected a derived name for an unnamed provider")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := &Server{poller: p, httpServer: httpSrv, pickStore: store.NewMemoryStore()}
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &stubPoller{}
	blocking := &blockingHTTPServer{unblock: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := &Server{poller: p, httpServer: blocking, pickStore: store.NewMemoryStore()}

	startedAt := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(startedAt)

	if blocking.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.shutdownCalls)
	}
	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

type errHTTPServer struct {
	shutdownCalls int
}

func (e *errHTTPServer) ListenAndServe() error {
	return context.DeadlineExceeded
}

func (e *errHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.shutdownCalls++
	return nil
}

func (e *errHTTPServer) Addr() string {
	return ":0"
}

func (e *errHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestStartServerStopsOnListenError(t *testing.T) {
	srv := &Server{httpServer: &errHTTPServer{}}

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

type closeableHTTPServer struct {
	shutdownCalls int
}

func (c *closeableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *closeableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.shutdownCalls++
	return nil
}

func (c *closeableHTTPServer) Addr() string {
	return ":0"
}

func (c *closeableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &stubPoller{}
	httpSrv := &closeableHTTPServer{}

	srv := &Server{poller: plr, httpServer: httpSrv, pickStore: store.NewMemoryStore()}

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.startCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.startCalls)
	}
	if plr.stopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}
