// Package client implements an HTTP client for the recipe API, used by
// the CLI. Server error payloads are decoded back into structured errors
// so callers can branch on error codes.
package client
