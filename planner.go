package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// best-practice recommendations appended to every report, after the
// deployment headline
var staticRecommendations = []string{
	"Use 5 GHz as primary band with DFS channels enabled",
	"Implement band steering to move capable devices to 5 GHz",
	"Configure 20 MHz channels for maximum capacity",
	"Set TX power to medium (14-17 dBm) for optimal coverage",
	"Enable 802.11k/v/r for seamless roaming",
	"Implement QoS with voice devices on highest priority",
}

// Planner composes the layout, channel, capacity and interference analyses
// into a reconciled optimization report. A planning run is a pure function
// of its inputs except for the sampler's injected random source.
type Planner struct {
	catalog   *ChannelCatalog
	generator *ChannelPlanGenerator
	estimator *CapacityEstimator
	sampler   *InterferenceSampler
}

// NewPlanner wires a planner from its components.
func NewPlanner(catalog *ChannelCatalog, estimator *CapacityEstimator, sampler *InterferenceSampler) *Planner {
	return &Planner{
		catalog:   catalog,
		generator: NewChannelPlanGenerator(catalog),
		estimator: estimator,
		sampler:   sampler,
	}
}

// BuildReport runs a full planning pass for one facility. Input validation
// happens before any computation; no partial report is ever produced.
//
// The final AP count is the larger of the coverage-driven and the
// capacity-driven counts: coverage is a geometric floor, capacity a
// throughput floor, and the deployment must satisfy both.
func (p *Planner) BuildReport(req PlanRequest) (*OptimizationReport, error) {
	if err := validateFacilityName(req.Facility); err != nil {
		return nil, err
	}
	band := req.Band
	if band == "" {
		band = Band5GHz
	}
	if err := validateBand(band); err != nil {
		return nil, err
	}
	if err := validateDeviceMix(req.DeviceMix); err != nil {
		return nil, err
	}

	layout, err := AnalyzeFacilityLayout(req.Dimensions.Width, req.Dimensions.Length, req.Dimensions.Height)
	if err != nil {
		return nil, err
	}

	plan := p.generator.Generate(layout, band)

	capacity, err := p.estimator.Estimate(totalDeviceCount(req.DeviceMix), req.DeviceMix)
	if err != nil {
		return nil, err
	}

	interference := p.sampler.Sample()

	finalAPCount := layout.TotalAPs
	if capacity.APsForCapacity > finalAPCount {
		finalAPCount = capacity.APsForCapacity
	}

	recommendations := make([]string, 0, len(staticRecommendations)+1)
	recommendations = append(recommendations,
		fmt.Sprintf("Deploy %d access points in a grid pattern", finalAPCount))
	recommendations = append(recommendations, staticRecommendations...)

	return &OptimizationReport{
		ReportID:  uuid.NewString(),
		Facility:  req.Facility,
		Timestamp: time.Now().Format(time.RFC3339),
		ExecutiveSummary: ExecutiveSummary{
			RecommendedAPs:    finalAPCount,
			PrimaryBand:       PrimaryBandLabel,
			SecondaryBand:     SecondaryBandLabel,
			EstimatedCoverage: EstimatedCoverage,
		},
		LayoutAnalysis:       layout,
		CapacityAnalysis:     capacity,
		ChannelPlanSummary:   summarizeChannelPlan(plan),
		InterferenceAnalysis: interference,
		Recommendations:      recommendations,
	}, nil
}

// summarizeChannelPlan reduces a full plan to the compact form carried in
// reports: total count, distinct channels in ascending order, and the first
// few assignments as examples.
func summarizeChannelPlan(plan []APAssignment) ChannelPlanSummary {
	seen := make(map[int]bool)
	var channels []int
	for _, ap := range plan {
		if !seen[ap.Channel] {
			seen[ap.Channel] = true
			channels = append(channels, ap.Channel)
		}
	}
	sort.Ints(channels)

	sampleSize := ChannelPlanSampleSize
	if len(plan) < sampleSize {
		sampleSize = len(plan)
	}
	sample := make([]APAssignment, sampleSize)
	copy(sample, plan[:sampleSize])

	return ChannelPlanSummary{
		TotalAPs:          len(plan),
		ChannelsUsed:      channels,
		SampleAssignments: sample,
	}
}

// totalDeviceCount sums the unit counts across device types.
func totalDeviceCount(mix map[string]int) int {
	total := 0
	for _, count := range mix {
		total += count
	}
	return total
}
