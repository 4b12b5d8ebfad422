package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mythitorium/swagrinth/pkg/observability"
)

// logHooks reports HTTP traffic to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.HTTPHooks = (*logHooks)(nil)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) with(ctx context.Context) *log.Logger {
	if id := runIDFromContext(ctx); id != "" {
		return h.logger.With("run", shortID(id))
	}
	return h.logger
}

func (h *logHooks) OnRequest(ctx context.Context, method, host, path string) {
	h.with(ctx).Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	h.with(ctx).Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	h.with(ctx).Debug("request failed", "method", method, "path", path, "err", err)
}

// shortID keeps the first block of a UUID, which is enough to tell runs apart.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
