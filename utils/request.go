package utils

import (
	"net/http"
	"strings"
)

// IsDevHost reports whether a Host header points at a local development server
func IsDevHost(host string) bool {
	return strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1")
}

// RequestHost returns the Host of the request, defaulting to "localhost"
func RequestHost(r *http.Request) string {
	if r.Host == "" {
		return "localhost"
	}
	return r.Host
}

// RequestScheme returns "http" for local development hosts and "https" otherwise
func RequestScheme(host string) string {
	if IsDevHost(host) {
		return "http"
	}
	return "https"
}

// Preview shortens s to at most n characters for log output
func Preview(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "..."
		}
		count++
	}
	return s
}
