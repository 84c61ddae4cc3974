package main

// --- Data Models / Struct Definitions ---

// Channel represents a single WiFi channel definition from the catalog
type Channel struct {
	Number       int    `json:"number"`                  // Channel number (e.g., 1, 6, 36, 149)
	FrequencyMHz int    `json:"frequency_mhz"`           // Center frequency in MHz
	Band         string `json:"band"`                    // Frequency band (2.4GHz or 5GHz)
	BandwidthMHz int    `json:"bandwidth_mhz,omitempty"` // Bonded channel width (5GHz only)
}

// ChannelWidthOption describes a 5GHz channel bonding trade-off
type ChannelWidthOption struct {
	WidthMHz    int    `json:"width_mhz"`   // Bonded width in MHz (20, 40, 80)
	Description string `json:"description"` // Trade-off summary for planners
}

// GridDimensions holds the AP grid shape derived from facility dimensions
type GridDimensions struct {
	Columns int `json:"width"`  // APs across the facility width
	Rows    int `json:"length"` // APs along the facility length
}

// FacilityDimensions holds the physical dimensions of a facility in meters
type FacilityDimensions struct {
	Width  float64 `json:"width"`  // Facility width in meters
	Length float64 `json:"length"` // Facility length in meters
	Height float64 `json:"height"` // Ceiling height in meters
}

// FacilityLayout is the coverage-driven layout analysis for a facility.
// Immutable once created; one instance per planning run.
type FacilityLayout struct {
	Dimensions            FacilityDimensions `json:"dimensions"`             // Input dimensions
	CoverageRadius        float64            `json:"coverage_radius"`        // Assumed AP coverage radius (meters)
	GridSpacing           float64            `json:"grid_spacing"`           // Distance between grid positions (meters)
	APGrid                GridDimensions     `json:"ap_grid"`                // Derived grid shape
	TotalAPs              int                `json:"total_aps"`              // Coverage-driven AP count (cols x rows)
	VerticalConsideration string             `json:"vertical_consideration"` // Ceiling height advisory
}

// GridPosition identifies a cell in the AP grid
type GridPosition struct {
	Row int `json:"row"` // Zero-based row index
	Col int `json:"col"` // Zero-based column index
}

// APAssignment is the channel and power assignment for one access point.
// One instance per grid cell; read-only after generation.
type APAssignment struct {
	APID     string       `json:"ap_id"`    // Sequential identifier (AP-001, AP-002, ...)
	Position GridPosition `json:"position"` // Grid cell occupied by this AP
	Channel  int          `json:"channel"`  // Assigned channel number
	Band     string       `json:"band"`     // Frequency band of the assignment
	TxPower  string       `json:"tx_power"` // Transmit power tier (Low/Medium/High with dBm range)
}

// DeviceBandwidth is the per-type breakdown of a capacity estimate
type DeviceBandwidth struct {
	Count              int     `json:"count"`                // Number of devices of this type
	BandwidthPerDevice float64 `json:"bandwidth_per_device"` // Unit bandwidth weight (Mbps)
	TotalBandwidth     float64 `json:"total_bandwidth"`      // Subtotal for this type (Mbps)
}

// CapacityRequirement is the throughput-driven AP requirement for a device mix
type CapacityRequirement struct {
	TotalDevices           int                        `json:"total_devices"`            // Total device count across types
	DeviceBreakdown        map[string]DeviceBandwidth `json:"device_breakdown"`         // Per-type subtotals
	TotalBandwidthRequired float64                    `json:"total_bandwidth_required"` // Aggregate demand incl. overhead (Mbps)
	APsForCapacity         int                        `json:"aps_for_capacity"`         // Capacity-driven AP count
}

// InterferenceFinding describes a known warehouse interference source
type InterferenceFinding struct {
	Type       string `json:"type"`       // Interference source label
	Frequency  string `json:"frequency"`  // Affected frequency band
	Impact     string `json:"impact"`     // Qualitative impact (Low/Medium/High/Low-Medium)
	Mitigation string `json:"mitigation"` // Recommended mitigation
}

// ExecutiveSummary is the headline section of an optimization report
type ExecutiveSummary struct {
	RecommendedAPs    int    `json:"recommended_aps"`    // Reconciled final AP count
	PrimaryBand       string `json:"primary_band"`       // Primary coverage band
	SecondaryBand     string `json:"secondary_band"`     // Secondary band and its role
	EstimatedCoverage string `json:"estimated_coverage"` // Fixed coverage estimate
}

// ChannelPlanSummary is the compact channel plan carried in a report.
// It exposes the distinct channels used plus a small assignment sample
// rather than the full plan, to keep persisted reports bounded.
type ChannelPlanSummary struct {
	TotalAPs          int            `json:"total_aps"`          // Number of assignments generated
	ChannelsUsed      []int          `json:"channels_used"`      // Distinct channels, ascending
	SampleAssignments []APAssignment `json:"sample_assignments"` // First assignments as examples
}

// OptimizationReport aggregates all analyses for one planning run.
// Created once per run, persisted, never mutated afterward.
type OptimizationReport struct {
	ReportID             string                `json:"report_id"`             // Unique report identifier
	Facility             string                `json:"facility"`              // Facility name
	Timestamp            string                `json:"timestamp"`             // Generation time, RFC 3339
	ExecutiveSummary     ExecutiveSummary      `json:"executive_summary"`     // Headline recommendation
	LayoutAnalysis       *FacilityLayout       `json:"layout_analysis"`       // Full coverage analysis
	CapacityAnalysis     *CapacityRequirement  `json:"capacity_analysis"`     // Full capacity analysis
	ChannelPlanSummary   ChannelPlanSummary    `json:"channel_plan_summary"`  // Compact channel plan
	InterferenceAnalysis []InterferenceFinding `json:"interference_analysis"` // Sampled interference findings
	Recommendations      []string              `json:"recommendations"`       // Best-practice recommendations
}

// --- API Request Models ---

// PlanRequest is the JSON payload for generating an optimization plan
type PlanRequest struct {
	Facility   string             `json:"facility"`             // Facility name
	Dimensions FacilityDimensions `json:"dimensions"`           // Facility dimensions in meters
	DeviceMix  map[string]int     `json:"device_mix"`           // Device-type label to unit count
	Band       string             `json:"band,omitempty"`       // Band selector, defaults to 5GHz
}

// --- API Response Models ---

// Response represents standardized API response format for all endpoints
type Response struct {
	Code   int         `json:"code"`            // HTTP status code
	Status string      `json:"status"`          // Status message (e.g., "OK", "Error")
	Data   interface{} `json:"data,omitempty"`  // Response payload data when successful
	Error  string      `json:"error,omitempty"` // Error description when operation fails
}

// ChannelCatalogResponse lists the usable channels for a band
type ChannelCatalogResponse struct {
	Band         string               `json:"band"`
	Channels     []Channel            `json:"channels"`
	WidthOptions []ChannelWidthOption `json:"width_options,omitempty"`
}

// GridResponse carries a rendered channel grid visualization
type GridResponse struct {
	Facility string `json:"facility"`
	Grid     string `json:"grid"`
}

// --- Swagger Documentation Response Types ---
// These types are used by swaggo/swag for API documentation generation.
// They appear in Swagger annotations (@Success, @Failure) in handler files.

// Compile-time check to ensure Swagger types are valid (prevents "unused" warnings)
var (
	_ = HealthResponse{}
	_ = MessageResponse{}
	_ = DeviceWeightsResponse{}
)

// HealthResponse represents health check response
// @Description Health check response data
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// MessageResponse represents a simple message response
// @Description Simple message response
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// DeviceWeightsResponse lists the per-device-type bandwidth weights
// @Description Device bandwidth weight table in Mbps
type DeviceWeightsResponse struct {
	DefaultMbps float64            `json:"default_mbps" example:"1.0"`
	Weights     map[string]float64 `json:"weights"`
}
