package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoReport is returned when no optimization report exists for a
// facility. Callers recover from it locally (the visualizer prints a
// "run the optimizer first" message) rather than treating it as fatal.
var ErrNoReport = errors.New("no optimization report found")

// validateFacilityName checks the facility name is present, bounded and
// restricted to a safe character set. Report filenames are derived from
// the name, so this also prevents path traversal.
func validateFacilityName(name string) error {
	if name == "" {
		return errors.New(ErrFacilityRequired)
	}
	if len(name) > MaxFacilityNameLength {
		return errors.New(ErrFacilityNameTooLong)
	}
	for _, r := range name {
		if !isFacilityNameRune(r) {
			return errors.New(ErrInvalidFacilityName)
		}
	}
	return nil
}

// isFacilityNameRune reports whether r is allowed in a facility name
func isFacilityNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '-' || r == '_':
		return true
	}
	return false
}

// validateBand checks the band selector is one of the two supported bands
func validateBand(band string) error {
	if band != Band2_4GHz && band != Band5GHz {
		return fmt.Errorf("%s: got %q", ErrInvalidBand, band)
	}
	return nil
}

// validateDeviceMix rejects negative or absurdly large device counts before
// any computation proceeds. Unknown device-type labels are accepted; they
// resolve to the default bandwidth weight downstream.
func validateDeviceMix(mix map[string]int) error {
	for deviceType, count := range mix {
		if count < 0 {
			return fmt.Errorf("%s: %s=%d", ErrNegativeDeviceCount, deviceType, count)
		}
		if count > MaxDeviceTypeCount {
			return fmt.Errorf("%s: %s=%d", ErrDeviceCountTooLarge, deviceType, count)
		}
	}
	return nil
}

// slugifyFacility converts a facility name into the filename-safe slug used
// for persisted reports: lowercase, spaces and underscores collapsed to
// hyphens.
func slugifyFacility(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}

// sanitizeErrorMessage keeps validation errors readable at the HTTP edge
// while collapsing anything else to a generic message, so internal details
// (paths, wrapped I/O errors) never leak to clients.
func sanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	errMsg := err.Error()

	// Validation errors are pre-sanitized and safe to pass through.
	safePatterns := []string{
		ErrFacilityRequired,
		ErrInvalidFacilityName,
		ErrFacilityNameTooLong,
		ErrInvalidBand,
		ErrInvalidDimensions,
		ErrDimensionsTooLarge,
		ErrNegativeDeviceCount,
		ErrDeviceCountTooLarge,
	}
	for _, pattern := range safePatterns {
		if strings.Contains(errMsg, pattern) {
			return errMsg
		}
	}

	if errors.Is(err, ErrNoReport) {
		return ErrReportNotFoundMsg
	}

	return "An error occurred processing your request"
}

// isInputError reports whether an error came from input validation, so
// handlers can map it to a 400 instead of a 500.
func isInputError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, pattern := range []string{
		ErrFacilityRequired,
		ErrInvalidFacilityName,
		ErrFacilityNameTooLong,
		ErrInvalidBand,
		ErrInvalidDimensions,
		ErrDimensionsTooLarge,
		ErrNegativeDeviceCount,
		ErrDeviceCountTooLarge,
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
