// Package util provides the diagnostic logger and virtual serial helpers.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"dhtview/internal/config"
)

// NewLogger builds the process logger: tint for dev builds, JSON otherwise.
// Output goes to cfg.LogFile when set, stderr otherwise. The returned closer
// must be called on exit.
func NewLogger(cfg config.Config, version, appName string) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
		}
		w, closer = f, f
	}
	return newLogger(w, cfg, version, appName), closer, nil
}

func newLogger(w io.Writer, cfg config.Config, version, appName string) *slog.Logger {
	if version == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			AddSource:  true,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.LogFile != "",
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(h).With(
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
	)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
