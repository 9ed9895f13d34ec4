package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/logger"
	"github.com/abgdnv/catalog/pkg/messaging"
	"github.com/abgdnv/catalog/pkg/nats"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
func NewLogger(level string) *slog.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := slog.NewJSONHandler(w, loggerOpts)
	return slog.New(logger.NewContextHandler(logHandler))
}

// NewPublisher returns a JetStream backed publisher when NATS is enabled, or a
// no-op publisher otherwise. The returned close function releases the connection.
func NewPublisher(ctx context.Context, cfg config.NATSConfig, log *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Enabled {
		log.Info("NATS is disabled, catalog events will not be published")
		return messaging.NopPublisher{}, func() {}, nil
	}
	nc, err := nats.NewClient(cfg.Url, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	if err := nats.EnsureStream(ctx, js, cfg.Stream, messaging.ProductSubjects); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.Stream, err)
	}
	log.Info("Connected to NATS", slog.String("url", cfg.Url), slog.String("stream", cfg.Stream))
	return nats.NewNatsPublisher(js), nc.Close, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
