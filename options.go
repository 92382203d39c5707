package tomledit

import (
	"log/slog"
	"os"
)

// config holds the options resolved by Open/OpenBytes.
type config struct {
	logger *slog.Logger
}

// Option configures a [Document] at construction time.
type Option func(*config)

// WithLogger sets the logger a [Document] uses to trace loading and
// value edits. The default is a disabled logger, matching the
// "default off in release" behavior of the original's build-time
// logging switch.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLogLevel enables logging to stderr at the given level. It is a
// convenience for the common case of wanting tracing without
// constructing a custom logger.
func WithLogLevel(level slog.Level) Option {
	return func(c *config) {
		c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	}
}

func newConfig(opts []Option) config {
	c := config{logger: disabledLogger}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// disabledLogger discards everything; it is the zero-cost default so
// Document methods can log unconditionally without a nil check.
var disabledLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelError + 1, // above any real level: nothing is ever enabled
}))
