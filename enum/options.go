package enum

import "log/slog"

// Option configures enumeration construction.
type Option func(*config)

// config holds construction settings.
type config struct {
	codeSet    string
	hasCodeSet bool
	logger     *slog.Logger
}

// WithCodeSet sets the characters a character enumeration draws its codes
// from. Codes are assigned positionally, one character per name.
// It has no effect on byte enumerations.
//
// The characters are not checked for uniqueness. A repeated character makes
// two names share one code and the later name wins reverse lookups.
func WithCodeSet(codeSet string) Option {
	return func(c *config) {
		c.codeSet = codeSet
		c.hasCodeSet = true
	}
}

// WithLogger sets the logger used during construction.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}
