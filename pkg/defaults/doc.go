// Package defaults centralizes timeout and limit constants shared across
// the server, handlers, and client so individual packages do not drift.
package defaults
