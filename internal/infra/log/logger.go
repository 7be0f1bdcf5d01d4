// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"vidtube/config"
	"vidtube/internal/errors"

	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

func New(params Params) (*slog.Logger, error) {
	return newLogger(params.Config, os.Stdout)
}

// newLogger writes JSON unless env.log.pretty is set. Every record is tagged with
// the service name and environment.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	logCfg := cfg.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	handler := slog.Handler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if logCfg.Pretty {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(
		slog.String("service", cfg.Env.ServiceName),
		slog.String("env", cfg.Env.Env),
	), nil
}

var logLevels = map[string]slog.Level{
	"":      slog.LevelInfo,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func parseLogLevel(name string) (slog.Level, error) {
	if level, ok := logLevels[strings.ToLower(name)]; ok {
		return level, nil
	}

	return slog.LevelInfo, errors.Errorf("unknown log level: %s", name)
}
