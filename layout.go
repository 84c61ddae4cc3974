package main

import (
	"fmt"
	"math"
)

// Ceiling height advisories. Informational only - they never change the
// numeric AP count.
const (
	AdvisoryHighCeiling     = "High ceiling detected - consider downtilt antennas"
	AdvisoryStandardCeiling = "Standard ceiling height - omnidirectional antennas suitable"
)

// AnalyzeFacilityLayout converts facility dimensions into a coverage grid.
//
// The coverage radius is a fixed constant representing typical enterprise-AP
// range at -65 dBm edge signal in open warehouse space. Grid spacing always
// includes the 40% overlap margin, and grid dimensions use ceiling division
// so partial cells still receive a full AP.
func AnalyzeFacilityLayout(width, length, height float64) (*FacilityLayout, error) {
	if err := validateDimensions(width, length, height); err != nil {
		return nil, err
	}

	spacing := CoverageRadiusMeters * GridSpacingFactor
	cols := int(math.Ceil(width / spacing))
	rows := int(math.Ceil(length / spacing))

	advisory := AdvisoryStandardCeiling
	if height > HighCeilingMeters {
		advisory = AdvisoryHighCeiling
	}

	return &FacilityLayout{
		Dimensions:            FacilityDimensions{Width: width, Length: length, Height: height},
		CoverageRadius:        CoverageRadiusMeters,
		GridSpacing:           spacing,
		APGrid:                GridDimensions{Columns: cols, Rows: rows},
		TotalAPs:              cols * rows,
		VerticalConsideration: advisory,
	}, nil
}

// validateDimensions rejects structurally invalid facility dimensions before
// any computation proceeds.
func validateDimensions(width, length, height float64) error {
	for _, d := range []float64{width, length, height} {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%s: %gx%gx%g", ErrInvalidDimensions, width, length, height)
		}
		if d > MaxDimensionMeters {
			return fmt.Errorf("%s: %gx%gx%g", ErrDimensionsTooLarge, width, length, height)
		}
	}
	return nil
}
