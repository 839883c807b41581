// ABOUTME: This file provides slog-based JSON logging for the collector
// ABOUTME: Log level is controlled via the LOG_LEVEL environment variable
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const defaultServiceName = "news-collector"

// Init creates the process-wide logger from environment configuration.
func Init() *slog.Logger {
	level := getEnvOrDefault("LOG_LEVEL", "info")
	service := getEnvOrDefault("SERVICE_NAME", defaultServiceName)

	return New(os.Stdout, service, level)
}

// New creates a JSON logger writing to output with the given service name
// and log level. Unknown levels fall back to info.
func New(output io.Writer, serviceName, level string) *slog.Logger {
	var slogLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	options := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.LevelKey:
				// Lowercase level names for log forwarders
				if l, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(l.String()))}
				}
				return a
			case slog.MessageKey:
				return slog.Attr{Key: "msg", Value: a.Value}
			default:
				return a
			}
		},
	}

	handler := slog.NewJSONHandler(output, options)

	return slog.New(handler).With("service", serviceName)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
