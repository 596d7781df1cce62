package oggmeta

import (
	"log/slog"

	"github.com/thesyncim/oggmeta/container/ogg"
)

// Option configures ReadFrom and ReadFromPath.
type Option func(*config)

type config struct {
	lenientChecksum bool
	logger          *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) readerOptions() []ogg.ReaderOption {
	return []ogg.ReaderOption{
		ogg.WithLenientChecksum(c.lenientChecksum),
		ogg.WithLogger(c.logger),
	}
}

// WithLenientChecksum accepts pages whose CRC does not match, logging a
// warning instead of failing with ErrMalformed. Disabled by default.
func WithLenientChecksum(enabled bool) Option {
	return func(c *config) {
		c.lenientChecksum = enabled
	}
}

// WithLogger sets the logger for diagnostics. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
