package main

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
)

// GetClientIP extracts the client IP address from the request.
// It checks X-Real-IP header first (for proxied requests), then falls back to RemoteAddr.
func GetClientIP(r *http.Request) string {
	clientIP := r.RemoteAddr
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		if parsedIP := net.ParseIP(realIP); parsedIP != nil {
			clientIP = realIP
		}
	}
	return clientIP
}

// --- Request Parsing Helpers ---

// ParseJSONRequest parses a JSON request body with size limiting and Content-Type validation.
// Returns true if successful, false if an error response was sent.
func ParseJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	// Validate Content-Type header to prevent non-JSON payloads
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		sendError(w, http.StatusUnsupportedMediaType, "Unsupported Media Type", ErrInvalidContentType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == ErrBodyTooLarge {
			sendError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", ErrRequestBodyTooLarge)
			return false
		}
		sendError(w, http.StatusBadRequest, StatusBadRequest, ErrInvalidJSON)
		return false
	}
	return true
}

// loadReport fetches a report for a facility, preferring the cache and
// falling back to the persisted file (re-caching on a hit).
func loadReport(facility string) (*OptimizationReport, error) {
	slug := slugifyFacility(facility)
	if report, found := reportCacheInstance.get(slug); found {
		return report, nil
	}
	report, err := reportStoreInstance.Load(facility)
	if err != nil {
		return nil, err
	}
	reportCacheInstance.set(slug, report)
	return report, nil
}
