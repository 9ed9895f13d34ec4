// Package logger provides slog handlers that enrich records with request scoped values.
package logger

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
)

// Extractor returns an attribute derived from ctx, or false when ctx carries nothing to log.
type Extractor func(ctx context.Context) (slog.Attr, bool)

// RequestID extracts the id stored by the request id middleware.
func RequestID(ctx context.Context) (slog.Attr, bool) {
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		return slog.Attr{}, false
	}
	return slog.String("request_id", reqID), true
}

// ContextHandler wraps a slog.Handler and appends the attributes its extractors find in the
// record's context. Without extractors it appends the request id.
type ContextHandler struct {
	slog.Handler
	extractors []Extractor
}

func NewContextHandler(handler slog.Handler, extractors ...Extractor) *ContextHandler {
	if len(extractors) == 0 {
		extractors = []Extractor{RequestID}
	}
	return &ContextHandler{Handler: handler, extractors: extractors}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			r.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(group string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(group), extractors: h.extractors}
}
