package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// createPlanHandler runs a full planning pass for a facility and persists the report
//
//	@Summary		Generate optimization plan
//	@Description	Analyzes facility dimensions and device mix, assigns channels and transmit power across the AP grid, and persists the reconciled optimization report
//	@Tags			Planner
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlanRequest	true	"Facility, dimensions, device mix and band"
//	@Success		201		{object}	Response{data=OptimizationReport}
//	@Failure		400		{object}	Response
//	@Failure		401		{object}	Response
//	@Failure		429		{object}	Response
//	@Failure		500		{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/plan [post]
func createPlanHandler(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if !ParseJSONRequest(w, r, &req) {
		return
	}

	start := time.Now()
	report, err := plannerInstance.BuildReport(req)
	if err != nil {
		planFailuresTotal.Inc()
		if isInputError(err) {
			sendError(w, http.StatusBadRequest, StatusBadRequest, sanitizeErrorMessage(err))
			return
		}
		logger.Error("Failed to build optimization report",
			zap.String("facility", req.Facility), zap.Error(err))
		sendError(w, http.StatusInternalServerError, StatusInternalError, sanitizeErrorMessage(err))
		return
	}

	// Persistence is synchronous: a failed write must not leave the caller
	// believing a report exists.
	if err := reportStoreInstance.Save(report); err != nil {
		planFailuresTotal.Inc()
		logger.Error("Failed to persist optimization report",
			zap.String("facility", report.Facility), zap.Error(err))
		sendError(w, http.StatusInternalServerError, StatusInternalError, ErrReportPersistFailed)
		return
	}

	slug := slugifyFacility(report.Facility)
	reportCacheInstance.set(slug, report)

	// Pre-render the grid in the background so the grid endpoint is cheap.
	planWorkerPool.Submit(report.Facility, taskTypeRenderGrid)

	plansGeneratedTotal.WithLabelValues(bandLabel(req.Band)).Inc()
	planDuration.Observe(time.Since(start).Seconds())
	lastRecommendedAPs.Set(float64(report.ExecutiveSummary.RecommendedAPs))

	AuditLog(AuditEventPlanCreated, GetClientIP(r), report.Facility, "Optimization plan generated")
	sendResponse(w, http.StatusCreated, StatusCreated, report)
}

// getReportHandler returns the persisted optimization report for a facility
//
//	@Summary		Get optimization report
//	@Description	Retrieves the most recent optimization report for a facility, from cache or disk
//	@Tags			Planner
//	@Produce		json
//	@Param			facility	path		string	true	"Facility name"	example(FC-EXAMPLE-01)
//	@Success		200			{object}	Response{data=OptimizationReport}
//	@Failure		400			{object}	Response
//	@Failure		401			{object}	Response
//	@Failure		404			{object}	Response
//	@Failure		429			{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/report/{facility} [get]
func getReportHandler(w http.ResponseWriter, r *http.Request) {
	facility := chi.URLParam(r, "facility")
	if err := validateFacilityName(facility); err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, sanitizeErrorMessage(err))
		return
	}

	report, err := loadReport(facility)
	if err != nil {
		if errors.Is(err, ErrNoReport) {
			sendError(w, http.StatusNotFound, StatusNotFound, ErrReportNotFoundMsg)
			return
		}
		logger.Error("Failed to load report", zap.String("facility", facility), zap.Error(err))
		sendError(w, http.StatusInternalServerError, StatusInternalError, sanitizeErrorMessage(err))
		return
	}

	sendResponse(w, http.StatusOK, StatusOK, report)
}

// getGridHandler returns the ASCII channel grid visualization for a facility
//
//	@Summary		Get channel grid visualization
//	@Description	Renders an ASCII approximation of the channel assignment grid from the persisted report summary. The grid is bounded to the first 10 rows and 15 columns.
//	@Tags			Planner
//	@Produce		json
//	@Param			facility	path		string	true	"Facility name"	example(FC-EXAMPLE-01)
//	@Success		200			{object}	Response{data=GridResponse}
//	@Failure		400			{object}	Response
//	@Failure		401			{object}	Response
//	@Failure		404			{object}	Response
//	@Failure		429			{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/report/{facility}/grid [get]
func getGridHandler(w http.ResponseWriter, r *http.Request) {
	facility := chi.URLParam(r, "facility")
	if err := validateFacilityName(facility); err != nil {
		sendError(w, http.StatusBadRequest, StatusBadRequest, sanitizeErrorMessage(err))
		return
	}

	slug := slugifyFacility(facility)
	if grid, found := reportCacheInstance.getGrid(slug); found {
		sendResponse(w, http.StatusOK, StatusOK, GridResponse{Facility: facility, Grid: grid})
		return
	}

	report, err := loadReport(facility)
	if err != nil {
		if errors.Is(err, ErrNoReport) {
			// A missing report is a recoverable condition here, matching
			// the CLI visualizer: tell the caller to plan first.
			sendError(w, http.StatusNotFound, StatusNotFound, MsgRunOptimizerFirst)
			return
		}
		logger.Error("Failed to load report for grid", zap.String("facility", facility), zap.Error(err))
		sendError(w, http.StatusInternalServerError, StatusInternalError, sanitizeErrorMessage(err))
		return
	}

	grid := RenderChannelGrid(report)
	gridRendersTotal.Inc()
	reportCacheInstance.setGrid(slug, grid)
	sendResponse(w, http.StatusOK, StatusOK, GridResponse{Facility: facility, Grid: grid})
}

// bandLabel normalizes an optional request band for metric labels
func bandLabel(band string) string {
	if band == "" {
		return Band5GHz
	}
	return band
}
