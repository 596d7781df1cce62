package ogg

import "log/slog"

// ReaderOption configures a PageReader or PacketReader.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	lenientChecksum bool
	logger          *slog.Logger
}

func newReaderConfig(opts []ReaderOption) readerConfig {
	cfg := readerConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLenientChecksum controls how pages with a checksum mismatch are handled.
//
// By default such pages fail with ErrBadCRC. When enabled, the mismatch is
// logged as a warning and the page is returned as if it were intact.
func WithLenientChecksum(enabled bool) ReaderOption {
	return func(c *readerConfig) {
		c.lenientChecksum = enabled
	}
}

// WithLogger sets the logger used for diagnostics. A nil logger is ignored.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) ReaderOption {
	return func(c *readerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
