package nestac

import "github.com/nestac/go-nestac/keypath"

type Config struct {
	Separator string
}

type Option func(*Config)

// Separator overrides the segment separator for a single call. The
// default is ".".
func Separator(sep string) Option {
	return func(c *Config) { c.Separator = sep }
}

func newConfig(opts []Option) *Config {
	c := &Config{Separator: keypath.DefaultSeparator}
	for _, opt := range opts {
		opt(c)
	}
	if c.Separator == "" {
		c.Separator = keypath.DefaultSeparator
	}
	return c
}
