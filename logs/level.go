package logs

import (
	"fmt"
	"log/slog"
	"strings"
)

var level = new(slog.LevelVar)

// SetLevel sets the minimum level of every Logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logs: bad level %q: %w", s, err)
	}
	return l, nil
}
