// Package logging builds the process logger and shares it with the raster
// library so both log through the same handler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/gg"
)

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Setup creates a text logger writing to w, installs it as the slog default
// and hands it to gg. gg only gets the logger at debug level; its info
// output is GPU adapter chatter that does not concern the user.
func Setup(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	if lvl <= slog.LevelDebug {
		gg.SetLogger(logger.With("component", "gg"))
	} else {
		gg.SetLogger(nil)
	}
	return logger, nil
}
