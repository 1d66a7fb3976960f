// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeNotFound,
//	    "recipe not found",
//	    map[string]any{
//	        "id": id,
//	    },
//	)
package errors
