// Package recipe implements the recipe catalog: an in-memory, append-only
// record store, substring search and fetch-by-id queries over it, create
// semantics, and the HTTP handlers exposing those operations.
//
// The store is seeded at construction from embedded YAML data and guarded
// by a single lock; record ids come from a store-owned counter advanced
// under that lock. Records live for the duration of the process; there is
// no update, delete, or persistence.
//
// Handlers follow the service-wide error contract: all failures are
// written through pkg/server as structured error responses.
package recipe
