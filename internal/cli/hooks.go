package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowbox/pkg/observability"
)

// registerHooks routes pipeline, cache and HTTP events to the debug log.
func registerHooks(l *log.Logger) {
	observability.SetPipelineHooks(logHooks{l})
	observability.SetCacheHooks(logHooks{l})
	observability.SetHTTPHooks(logHooks{l})
}

// logHooks implements the observability hook interfaces on a logger.
type logHooks struct {
	l *log.Logger
}

func (h logHooks) OnLoadStart(_ context.Context, format string) {
	h.l.Debug("loading document", "format", format)
}

func (h logHooks) OnLoadComplete(_ context.Context, format string, steps, edges int, d time.Duration, err error) {
	if err != nil {
		h.l.Debug("load failed", "format", format, "err", err)
		return
	}
	h.l.Debug("loaded document", "format", format, "steps", steps, "connections", edges, "duration", d)
}

func (h logHooks) OnLayoutStart(_ context.Context, steps int) {
	h.l.Debug("laying out", "steps", steps)
}

func (h logHooks) OnLayoutComplete(_ context.Context, width, height int, d time.Duration) {
	h.l.Debug("laid out", "width", width, "height", height, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.l.Debug("rendering", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.l.Debug("rendered", "formats", formats, "duration", d, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, format string) {
	h.l.Debug("cache hit", "format", format)
}

func (h logHooks) OnCacheMiss(_ context.Context, format string) {
	h.l.Debug("cache miss", "format", format)
}

func (h logHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.l.Debug("cached artifact", "format", format, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.l.Debug("request started", "method", method, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.l.Debug("request finished", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
	_ observability.HTTPHooks     = logHooks{}
)
