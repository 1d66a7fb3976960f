package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// RecipeHandlerTimeout bounds a single recipe request. Generous for a
	// pure in-memory store; exists so a handler can never block a worker
	// indefinitely if the store grows I/O later.
	RecipeHandlerTimeout = 10 * time.Second
)

// HTTP client timeouts used by pkg/client.
const (
	// HTTPClientTimeout is the total request timeout for API client calls.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the TCP connect timeout.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the TLS handshake timeout.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the time to wait for response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is how long idle connections are kept in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive probe interval for client connections.
	HTTPKeepAlive = 30 * time.Second
)
