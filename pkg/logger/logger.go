// Package logger builds slog loggers for the SDK and its CLI: JSON for
// machines, text for humans, level and format driven by options.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the handler's output encoding.
type Format string

const (
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for terminals.
	FormatText Format = "text"
)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat sets the output format. Unknown formats fall back to JSON.
func WithFormat(format Format) Option {
	return func(c *config) {
		if format == FormatText {
			c.format = FormatText
		} else {
			c.format = FormatJSON
		}
	}
}

// WithOutput sets the output destination; nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithDevelopment switches on text output at debug level, tagged with the
// component name.
func WithDevelopment(component string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.format = FormatText
		if component != "" {
			c.attrs = append(c.attrs, slog.String("component", component))
		}
	}
}

// New creates a configured *slog.Logger. Defaults: JSON, info level, stderr.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler)
}
