package main

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Planner Tests ---

func TestPlanner_BuildReport(t *testing.T) {
	planner := newTestPlanner(1)

	report, err := planner.BuildReport(mockPlanRequest())
	require.NoError(t, err)

	assert.Equal(t, mockFacility, report.Facility)
	_, err = uuid.Parse(report.ReportID)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, report.Timestamp)
	assert.NoError(t, err)

	// Coverage needs 54 APs, capacity only 4: coverage wins.
	assert.Equal(t, 54, report.LayoutAnalysis.TotalAPs)
	assert.Equal(t, 4, report.CapacityAnalysis.APsForCapacity)
	assert.Equal(t, 54, report.ExecutiveSummary.RecommendedAPs)

	assert.Equal(t, PrimaryBandLabel, report.ExecutiveSummary.PrimaryBand)
	assert.Equal(t, SecondaryBandLabel, report.ExecutiveSummary.SecondaryBand)
	assert.Equal(t, EstimatedCoverage, report.ExecutiveSummary.EstimatedCoverage)
}

func TestPlanner_BuildReport_CapacityDriven(t *testing.T) {
	planner := newTestPlanner(1)

	// A small facility crowded with laptops: 1 AP covers it, but the
	// device demand needs more.
	req := PlanRequest{
		Facility:   "Dense Lab",
		Dimensions: FacilityDimensions{Width: 30, Length: 30, Height: 5},
		DeviceMix:  map[string]int{"laptop": 100},
	}

	report, err := planner.BuildReport(req)
	require.NoError(t, err)

	assert.Equal(t, 1, report.LayoutAnalysis.TotalAPs)
	// 100 laptops x 5 Mbps x 1.3 = 650 Mbps -> 5 APs.
	assert.Equal(t, 5, report.CapacityAnalysis.APsForCapacity)
	assert.Equal(t, 5, report.ExecutiveSummary.RecommendedAPs)
}

func TestPlanner_BuildReport_ChannelPlanSummary(t *testing.T) {
	planner := newTestPlanner(1)

	report, err := planner.BuildReport(mockPlanRequest())
	require.NoError(t, err)

	summary := report.ChannelPlanSummary
	assert.Equal(t, 54, summary.TotalAPs)
	assert.Len(t, summary.SampleAssignments, ChannelPlanSampleSize)
	assert.Equal(t, "AP-001", summary.SampleAssignments[0].APID)

	// Distinct channels in ascending order, all from the 5 GHz catalog.
	assert.True(t, sort.IntsAreSorted(summary.ChannelsUsed))
	assert.Equal(t, []int{36, 40, 44, 48, 149, 153, 157, 161}, summary.ChannelsUsed)
}

func TestPlanner_BuildReport_SmallPlanSample(t *testing.T) {
	planner := newTestPlanner(1)

	req := PlanRequest{
		Facility:   "Tiny Site",
		Dimensions: FacilityDimensions{Width: 30, Length: 30, Height: 5},
		DeviceMix:  map[string]int{"tablet": 2},
	}

	report, err := planner.BuildReport(req)
	require.NoError(t, err)

	// Plans smaller than the sample size include every assignment.
	assert.Len(t, report.ChannelPlanSummary.SampleAssignments, 1)
}

func TestPlanner_BuildReport_Recommendations(t *testing.T) {
	planner := newTestPlanner(1)

	report, err := planner.BuildReport(mockPlanRequest())
	require.NoError(t, err)

	require.Len(t, report.Recommendations, len(staticRecommendations)+1)
	assert.Equal(t,
		fmt.Sprintf("Deploy %d access points in a grid pattern", report.ExecutiveSummary.RecommendedAPs),
		report.Recommendations[0])
	assert.Equal(t, staticRecommendations, report.Recommendations[1:])
}

func TestPlanner_BuildReport_DefaultBand(t *testing.T) {
	planner := newTestPlanner(1)

	req := mockPlanRequest()
	req.Band = ""

	report, err := planner.BuildReport(req)
	require.NoError(t, err)

	for _, ap := range report.ChannelPlanSummary.SampleAssignments {
		assert.Equal(t, Band5GHz, ap.Band)
	}
}

func TestPlanner_BuildReport_24GHzBand(t *testing.T) {
	planner := newTestPlanner(1)

	req := mockPlanRequest()
	req.Band = Band2_4GHz

	report, err := planner.BuildReport(req)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 6, 11}, report.ChannelPlanSummary.ChannelsUsed)
}

func TestPlanner_BuildReport_InterferenceBounds(t *testing.T) {
	planner := newTestPlanner(1)

	report, err := planner.BuildReport(mockPlanRequest())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(report.InterferenceAnalysis), MinInterferenceFindings)
	assert.LessOrEqual(t, len(report.InterferenceAnalysis), MaxInterferenceFindings)
}

func TestPlanner_BuildReport_ValidationErrors(t *testing.T) {
	planner := newTestPlanner(1)

	tests := []struct {
		name    string
		mutate  func(*PlanRequest)
		errText string
	}{
		{"Missing facility", func(r *PlanRequest) { r.Facility = "" }, ErrFacilityRequired},
		{"Bad facility characters", func(r *PlanRequest) { r.Facility = "../etc/passwd" }, ErrInvalidFacilityName},
		{"Unknown band", func(r *PlanRequest) { r.Band = "6GHz" }, ErrInvalidBand},
		{"Negative device count", func(r *PlanRequest) { r.DeviceMix = map[string]int{"tablet": -1} }, ErrNegativeDeviceCount},
		{"Zero width", func(r *PlanRequest) { r.Dimensions.Width = 0 }, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mockPlanRequest()
			tt.mutate(&req)

			report, err := planner.BuildReport(req)
			require.Error(t, err)
			// Validation failures never yield a partial report.
			assert.Nil(t, report)
			assert.Contains(t, err.Error(), tt.errText)
			assert.True(t, isInputError(err))
		})
	}
}

func TestTotalDeviceCount(t *testing.T) {
	assert.Equal(t, 0, totalDeviceCount(nil))
	assert.Equal(t, 80, totalDeviceCount(map[string]int{"tablet": 50, "laptop": 30}))
}
