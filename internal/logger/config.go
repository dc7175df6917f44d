package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// LogLevel parses Level the way slog does, accepting "warning" as well.
// Unknown levels log at info.
func (c Config) LogLevel() slog.Level {
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, LevelAliasWarning) {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// IsJSON reports whether records are written as JSON rather than text
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes returns the attributes stamped on every record
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{slog.String(AttrKeyService, c.ServiceName)}
	if c.Version != "" {
		attrs = append(attrs, slog.String(AttrKeyVersion, c.Version))
	}
	if c.Environment != "" {
		attrs = append(attrs, slog.String(AttrKeyEnvironment, c.Environment))
	}
	return attrs
}
