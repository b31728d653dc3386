package parser

import (
	"log/slog"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// Logger is the minimal structured logging interface shared with the
// builders in datamodel/low. It is compatible with log/slog through
// SlogAdapter, and zap or zerolog can be adapted the same way.
type Logger = low.Logger

// NopLogger is a logger that discards all output.
type NopLogger = low.NopLogger

// SlogAdapter adapts a *slog.Logger to the Logger interface.
type SlogAdapter = low.SlogAdapter

// NewSlogAdapter wraps logger. A nil logger uses slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return low.NewSlogAdapter(logger)
}
