package main

import (
	"net/http"
)

// healthCheckHandler handles health check requests to verify service status
//
//	@Summary		Health check
//	@Description	Returns service health status. Not authenticated so load balancers can probe it.
//	@Tags			Service
//	@Produce		json
//	@Success		200	{object}	Response{data=HealthResponse}
//	@Router			/health [get]
func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	sendResponse(w, http.StatusOK, StatusOK, map[string]string{"status": "healthy"})
}

// clearCacheHandler handles requests to clear the report cache (specific facility or all)
//
//	@Summary		Clear report cache
//	@Description	Clears the in-memory report cache for one facility, or all facilities when none is given. Persisted reports on disk are untouched; a named facility is re-warmed from disk in the background.
//	@Tags			Service
//	@Produce		json
//	@Param			facility	query		string	false	"Facility name"	example(FC-EXAMPLE-01)
//	@Success		200			{object}	Response{data=MessageResponse}
//	@Failure		401			{object}	Response
//	@Failure		429			{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/cache/clear [post]
func clearCacheHandler(w http.ResponseWriter, r *http.Request) {
	clientIP := GetClientIP(r)

	facility := r.URL.Query().Get(QueryFacility)
	if facility != "" {
		reportCacheInstance.clear(slugifyFacility(facility))
		// Re-warm from disk so the next read doesn't pay the file load.
		planWorkerPool.Submit(facility, taskTypeReloadReport)
		AuditLog(AuditEventCacheClear, clientIP, facility, "Facility report cache cleared")
	} else {
		reportCacheInstance.clearAll()
		AuditLog(AuditEventCacheClear, clientIP, "", "All report cache cleared")
	}
	sendResponse(w, http.StatusOK, StatusOK, map[string]string{"message": MsgCacheCleared})
}
