package server

import "net/http"

// Option is a functional option for configuring Server instances.
type Option func(*Config)

// WithConfig replaces the entire server configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg
		}
	}
}

// WithName sets the server identity name reported on the default route.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the server version reported on the default route.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithHandler adds application handlers keyed by route pattern. Handlers
// registered this way are wrapped with the full middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, handler := range handlers {
			c.Handlers[path] = handler
		}
	}
}

// WithPort overrides the listen port.
func WithPort(port int) Option {
	return func(c *Config) {
		c.Port = port
	}
}
