package main

import "time"

// Task types for worker pool operations
const (
	taskTypeRenderGrid   = "renderGrid"
	taskTypeReloadReport = "reloadReport"
)

// Frequency bands
const (
	Band2_4GHz = "2.4GHz"
	Band5GHz   = "5GHz"
)

// RF planning constants
// Coverage radius assumes -65 dBm edge signal from a typical enterprise AP
// in open warehouse space. The 1.4 spacing factor gives 40% cell overlap
// for coverage redundancy at cell boundaries.
const (
	CoverageRadiusMeters = 25.0
	GridSpacingFactor    = 1.4
	HighCeilingMeters    = 10.0

	// Capacity model: 30% overhead for management and growth, 150 Mbps
	// usable throughput per AP.
	CapacityOverheadFactor = 1.3
	ThroughputPerAPMbps    = 150.0

	// Unknown device types fall back to this bandwidth weight (Mbps).
	DefaultDeviceBandwidthMbps = 1.0

	// 2.4 GHz channels are 5 MHz apart with a 20 MHz occupied width; two
	// channels stop overlapping at 25 MHz separation.
	ChannelStepMHz      = 5
	NoOverlapSeparation = 25
	OverlapFullPercent  = 100.0
)

// Transmit power tiers derived from coverage radius
const (
	TxPowerLow    = "Low (10-13 dBm)"
	TxPowerMedium = "Medium (14-17 dBm)"
	TxPowerHigh   = "High (18-20 dBm)"

	TxPowerLowMaxRadius    = 20.0
	TxPowerMediumMaxRadius = 30.0
)

// Interference sample bounds: each analysis draws between the minimum and
// maximum number of findings from the fixed catalog, without replacement.
const (
	MinInterferenceFindings = 2
	MaxInterferenceFindings = 4
)

// Report constants
const (
	PrimaryBandLabel      = "5 GHz"
	SecondaryBandLabel    = "2.4 GHz (IoT and legacy devices)"
	EstimatedCoverage     = "99.9%"
	ChannelPlanSampleSize = 5
	APIDFormat            = "AP-%03d"

	// Visualizer render window; plans larger than this are truncated.
	MaxGridRowsRendered = 10
	MaxGridColsRendered = 15
)

// Environment variable names
const (
	EnvServerAddr         = "SERVER_ADDR"
	EnvReportDir          = "REPORT_DIR"
	EnvMiddlewareAuth     = "MIDDLEWARE_AUTH"
	EnvAuthKey            = "AUTH_KEY"
	EnvCacheTTL           = "CACHE_TTL_SECONDS"
	EnvRateLimitRequests  = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow    = "RATE_LIMIT_WINDOW_SECONDS"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvCORSMaxAge         = "CORS_MAX_AGE"
)

// Server and runtime defaults
const (
	DefaultServerAddr = ":8080"
	DefaultReportDir  = "./reports"
	// DefaultAuthKey is intentionally empty - MUST be set via AUTH_KEY
	// environment variable when MIDDLEWARE_AUTH is enabled
	DefaultAuthKey            = ""
	DefaultCacheTimeout       = 5 * time.Minute
	DefaultShutdownTimeout    = 30 * time.Second
	DefaultRequestTimeout     = 60 * time.Second
	DefaultWorkerCount        = 4
	DefaultQueueSize          = 64
	DefaultRateLimitRequests  = 100
	DefaultRateLimitWindow    = 60
	DefaultCORSAllowedOrigins = "*"
	DefaultCORSMaxAge         = 300
	ReportFilePerm            = 0o644
	ReportDirPerm             = 0o755
)

// Request validation bounds
const (
	MaxRequestBodySize    = 1 << 20 // 1 MiB
	MaxFacilityNameLength = 64
	MaxDimensionMeters    = 10000.0
	MaxDeviceTypeCount    = 1000000
)

// Auth brute force protection
const (
	MaxFailedAuthAttempts = 5
	AuthAttemptWindow     = 15 * time.Minute
	AuthLockoutDuration   = 30 * time.Minute
	MaxRateLimiterEntries = 10000
)

// HTTP header names
const (
	HeaderXAPIKey = "X-API-Key"
)

// Query parameter names
const (
	QueryFacility = "facility"
)

// HTTP response statuses
const (
	StatusOK            = "OK"
	StatusCreated       = "Created"
	StatusNotFound      = "Not Found"
	StatusBadRequest    = "Bad Request"
	StatusUnauthorized  = "Unauthorized"
	StatusInternalError = "Internal Server Error"
)

// Error messages
const (
	ErrInvalidJSON         = "Invalid JSON format"
	ErrInvalidContentType  = "Content-Type must be application/json"
	ErrRequestBodyTooLarge = "Request body exceeds maximum allowed size"
	ErrBodyTooLarge        = "http: request body too large"
	ErrFacilityRequired    = "Facility name required"
	ErrInvalidFacilityName = "Facility name must contain only letters, digits, spaces, hyphens and underscores"
	ErrFacilityNameTooLong = "Facility name too long"
	ErrInvalidBand         = "Band must be 2.4GHz or 5GHz"
	ErrInvalidDimensions   = "Facility dimensions must be positive"
	ErrDimensionsTooLarge  = "Facility dimensions exceed supported maximum"
	ErrNegativeDeviceCount = "Device counts must be non-negative"
	ErrDeviceCountTooLarge = "Device count exceeds supported maximum"
	ErrMissingAPIKey       = "Missing API key"
	ErrInvalidAPIKey       = "Invalid API key"
	ErrReportPersistFailed = "Failed to persist optimization report"
	ErrReportNotFoundMsg   = "No optimization report found for this facility"
)

// Success and informational messages
const (
	MsgCacheCleared      = "Cache cleared"
	MsgRunOptimizerFirst = "No report found. Run the optimizer first."
)

// Audit event types
const (
	AuditEventAuthSuccess = "auth_success"
	AuditEventAuthFailure = "auth_failure"
	AuditEventAuthBlocked = "auth_blocked"
	AuditEventCacheClear  = "cache_clear"
	AuditEventPlanCreated = "plan_created"
)
