package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Client IP Extraction Tests ---

func TestGetClientIP(t *testing.T) {
	t.Run("Uses RemoteAddr by default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		assert.Equal(t, "10.0.0.1:1234", GetClientIP(req))
	})

	t.Run("Prefers valid X-Real-IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Real-IP", mockClientIP)
		assert.Equal(t, mockClientIP, GetClientIP(req))
	})

	t.Run("Ignores invalid X-Real-IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Real-IP", "not-an-ip")
		assert.Equal(t, "10.0.0.1:1234", GetClientIP(req))
	})
}

// --- JSON Request Parsing Tests ---

func TestParseJSONRequest(t *testing.T) {
	t.Run("Valid JSON", func(t *testing.T) {
		body := bytes.NewBufferString(`{"facility": "FC-TEST-01"}`)
		req := httptest.NewRequest("POST", "/", body)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		var parsed PlanRequest
		ok := ParseJSONRequest(rr, req, &parsed)

		assert.True(t, ok)
		assert.Equal(t, mockFacility, parsed.Facility)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		var parsed PlanRequest
		ok := ParseJSONRequest(rr, req, &parsed)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, ErrInvalidJSON, resp.Error)
	})

	t.Run("Wrong Content-Type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()

		var parsed PlanRequest
		ok := ParseJSONRequest(rr, req, &parsed)

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("Body too large", func(t *testing.T) {
		huge := `{"facility": "` + strings.Repeat("a", MaxRequestBodySize) + `"}`
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(huge))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		var parsed PlanRequest
		ok := ParseJSONRequest(rr, req, &parsed)

		assert.False(t, ok)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

// --- Report Loading Tests ---

func TestLoadReport_CacheHit(t *testing.T) {
	setupWorkerDeps(t)

	report := mockReport(t)
	reportCacheInstance.set(slugifyFacility(report.Facility), report)

	loaded, err := loadReport(report.Facility)
	require.NoError(t, err)
	assert.Same(t, report, loaded)
}

func TestLoadReport_DiskFallbackRecaches(t *testing.T) {
	setupWorkerDeps(t)

	report := mockReport(t)
	require.NoError(t, reportStoreInstance.Save(report))

	loaded, err := loadReport(report.Facility)
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, loaded.ReportID)

	// The disk hit is cached for subsequent reads.
	cached, found := reportCacheInstance.get(slugifyFacility(report.Facility))
	require.True(t, found)
	assert.Same(t, loaded, cached)
}

func TestLoadReport_Missing(t *testing.T) {
	setupWorkerDeps(t)

	loaded, err := loadReport("never-planned")
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, ErrNoReport)
}
