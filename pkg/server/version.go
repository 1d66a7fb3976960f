package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	// vendorMIMEPrefix is the custom vendor MIME type prefix used for
	// version negotiation, e.g. application/vnd.recipeapi.v1+json
	vendorMIMEPrefix = "application/vnd.recipeapi.v"
)

// negotiateAPIVersion extracts the API version from the Accept header.
// If no version is specified, it returns the default version (v1).
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion
	}

	if strings.Contains(accept, vendorMIMEPrefix) {
		parts := strings.Split(accept, ".")
		for _, part := range parts {
			if strings.HasPrefix(part, "v") {
				// Extract version (e.g., "v1+json" -> "v1")
				version := strings.Split(part, "+")[0]
				if isValidAPIVersion(version) {
					return version
				}
			}
		}
	}

	return DefaultAPIVersion
}

// isValidAPIVersion checks if the provided version string is a valid API version.
// Currently supports: v1
func isValidAPIVersion(version string) bool {
	validVersions := map[string]bool{
		"v1": true,
	}
	return validVersions[version]
}

// SetAPIVersionHeader sets the API version header in the response.
// This helps clients understand which version of the API is being used.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
