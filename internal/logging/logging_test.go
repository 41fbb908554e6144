package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNilSafeHelpers(t *testing.T) {
	// None of these may panic with a nil logger.
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorAppendsErrField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	Error(logger, "something failed", errors.New("boom"))
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Fatalf("error field missing: %s", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("empty context should return fallback")
	}

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatalf("scoped logger not returned")
	}
}

func TestNewLoggerFormats(t *testing.T) {
	if NewLogger(Config{Format: "json", Level: "debug"}) == nil {
		t.Fatalf("json logger should build")
	}
	if NewLogger(Config{Format: "text", Level: "nonsense"}) == nil {
		t.Fatalf("text logger should build with level fallback")
	}
}
