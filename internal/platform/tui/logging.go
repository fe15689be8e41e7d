package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w. An empty level
// means info.
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return logger, fmt.Errorf("log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
