package gomdd

import (
	"go.uber.org/zap"
)

// Config holds node table and construction parameters.
// All fields are exported to allow inspection after construction.
type Config struct {
	// Logger receives debug information about interning and construction.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// SizeHint is the expected number of distinct nodes. It only sizes the
	// initial allocations of the node table.
	SizeHint int

	// MaxNodes bounds the number of nodes a table may hold.
	// A value of 0 means no limit is enforced.
	MaxNodes int
}

// Option configures node tables and diagram construction using the
// functional options pattern. Options are applied in the order they are
// provided.
type Option func(*Config)

// WithLogger sets the logger used by the node table and the builder.
//
// A nil logger is ignored and the no-op default is kept.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithSizeHint sets the initial capacity of the node table.
//
// If n <= 0, the default capacity is kept. The table still grows on demand.
func WithSizeHint(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.SizeHint = n
		}
	}
}

// WithMaxNodes limits the number of nodes (terminals and decisions) a node
// table may allocate.
//
// If n <= 0, no limit is enforced.
// If n > 0, interning a new node beyond the limit fails with ErrNodeLimit.
func WithMaxNodes(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.MaxNodes = n
	}
}

// newConfig creates a new configuration with sensible defaults and applies
// the provided options in order.
//
// Default values:
//   - Logger: zap.NewNop()
//   - SizeHint: 64
//   - MaxNodes: 0 (no limit)
func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Logger:   zap.NewNop(),
		SizeHint: 64,
		MaxNodes: 0,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
