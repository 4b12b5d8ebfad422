package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))
	ctx := withRunID(context.Background())
	run := shortID(runIDFromContext(ctx))

	h.OnRequest(ctx, "GET", "api.modrinth.com", "/v2/project/sodium")
	h.OnResponse(ctx, "GET", "api.modrinth.com", "/v2/project/sodium", 200, 120*time.Millisecond)
	h.OnError(ctx, "GET", "api.modrinth.com", "/v2/search", errors.New("connection reset"))

	out := buf.String()
	for _, want := range []string{"request", "response", "status=200", "/v2/project/sodium", "connection reset", "run=" + run} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.InfoLevel))

	h.OnRequest(context.Background(), "GET", "host", "/path")
	h.OnResponse(context.Background(), "GET", "host", "/path", 404, time.Millisecond)

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("123e4567-e89b-12d3-a456-426614174000"); got != "123e4567" {
		t.Errorf("shortID() = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q", got)
	}
}
