package main

import (
	"log"
	"math/rand"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// --- Mock Data Constants ---

const (
	mockFacility = "FC-TEST-01"
	mockClientIP = "192.168.1.100"
	mockAPIKey   = "test-secret-key"
)

// mockPlanRequest returns a valid planning request matching the bundled
// fulfillment-center example
func mockPlanRequest() PlanRequest {
	return PlanRequest{
		Facility: mockFacility,
		Dimensions: FacilityDimensions{
			Width:  200,
			Length: 300,
			Height: 12,
		},
		DeviceMix: map[string]int{
			"handheld_scanner": 200,
			"tablet":           50,
			"laptop":           30,
			"voice_device":     150,
			"iot_sensor":       50,
			"mobile_robot":     20,
		},
		Band: Band5GHz,
	}
}

// mockReport builds a full report through the planner with a fixed seed
func mockReport(t *testing.T) *OptimizationReport {
	t.Helper()
	planner := newTestPlanner(1)
	report, err := planner.BuildReport(mockPlanRequest())
	if err != nil {
		t.Fatalf("failed to build test report: %v", err)
	}
	return report
}

// newTestPlanner wires a planner with a deterministic interference sampler
func newTestPlanner(seed int64) *Planner {
	catalog := NewChannelCatalog()
	return NewPlanner(catalog, NewCapacityEstimator(),
		NewInterferenceSampler(rand.New(rand.NewSource(seed))))
}

// --- Test Setup Functions ---

// setupTestServer resets the shared store, cache and worker pool against a
// temp directory and returns a router with the planner routes mounted.
func setupTestServer(t *testing.T) *chi.Mux {
	t.Helper()

	dir := t.TempDir()
	store, err := newReportStore(dir)
	if err != nil {
		t.Fatalf("failed to create test report store: %v", err)
	}

	originalStore := reportStoreInstance
	originalCache := reportCacheInstance
	originalPool := planWorkerPool
	originalPlanner := plannerInstance
	t.Cleanup(func() {
		reportStoreInstance = originalStore
		reportCacheInstance = originalCache
		planWorkerPool = originalPool
		plannerInstance = originalPlanner
	})

	reportStoreInstance = store
	reportCacheInstance = newReportCache(30 * time.Second)
	plannerInstance = newTestPlanner(1)

	planWorkerPool = &workerPool{
		workers: 1,
		queue:   make(chan task, 10),
		wg:      sync.WaitGroup{},
	}
	planWorkerPool.Start()
	t.Cleanup(planWorkerPool.Stop)

	r := chi.NewRouter()
	r.Route("/api/v1/planner", func(r chi.Router) {
		r.Post("/plan", createPlanHandler)
		r.Get("/report/{facility}", getReportHandler)
		r.Get("/report/{facility}/grid", getGridHandler)
		r.Get("/channels/{band}", getChannelsHandler)
		r.Get("/interference/catalog", getInterferenceCatalogHandler)
		r.Get("/capacity/weights", getDeviceWeightsHandler)
		r.Post("/cache/clear", clearCacheHandler)
	})
	r.Get("/health", healthCheckHandler)

	return r
}

// --- Test Main ---

func TestMain(m *testing.M) {
	// Setup global logger for all tests
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create test logger: %v", err)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if logger != nil {
		_ = logger.Sync()
	}
	os.Exit(code)
}
