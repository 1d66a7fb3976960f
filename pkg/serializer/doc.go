// Package serializer handles input and output encoding for the recipe API:
// JSON HTTP responses, CLI output in JSON/YAML/table form, and loading
// resources from local files.
package serializer
