// Package cli implements the recipes command line interface: running the
// API server and searching, fetching, and creating recipes against a
// running instance.
package cli
