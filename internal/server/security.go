// This file contains the security middleware for the metrics listener:
// hardening headers on every response and a small CORS layer for
// scrape-through-browser setups.

package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the middleware behavior.
type SecurityConfig struct {
	// EnableCORS turns on CORS header handling and preflight responses.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed to read the endpoints.
	// A single "*" entry allows any origin.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised to CORS clients.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used by the metrics
// listener: permissive CORS restricted to read-only methods.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps next with hardening headers and, when enabled,
// CORS handling including OPTIONS preflight short-circuiting.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := resolveOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}

// resolveOrigin returns the Access-Control-Allow-Origin value for a request
// origin. A wildcard entry matches unconditionally, even without an Origin
// header; specific entries require an exact match.
func resolveOrigin(allowed []string, origin string) (string, bool) {
	for _, a := range allowed {
		if a == "*" {
			return "*", true
		}
		if origin != "" && a == origin {
			return origin, true
		}
	}
	return "", false
}
