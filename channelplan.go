package main

import "fmt"

// ChannelPlanGenerator assigns a channel and transmit power tier to every
// cell of a facility's AP grid using a cyclic reuse pattern over the
// catalog channels of the selected band.
type ChannelPlanGenerator struct {
	catalog *ChannelCatalog
}

// NewChannelPlanGenerator creates a generator backed by the given catalog.
func NewChannelPlanGenerator(catalog *ChannelCatalog) *ChannelPlanGenerator {
	return &ChannelPlanGenerator{catalog: catalog}
}

// Generate produces one assignment per grid cell, visited row-major.
//
// The reuse pattern cycles the band's channel list across grid columns.
// When pattern length and column count diverge, co-channel separation is
// not monotonic with physical distance; that arithmetic is kept as-is for
// compatibility with existing deployments planned by this tool.
func (g *ChannelPlanGenerator) Generate(layout *FacilityLayout, band string) []APAssignment {
	cols := layout.APGrid.Columns
	rows := layout.APGrid.Rows

	pattern := g.channelPattern(g.catalog.ChannelNumbers(band), cols)
	txPower := txPowerForRadius(layout.CoverageRadius)

	plan := make([]APAssignment, 0, rows*cols)
	apID := 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := (col + row*cols) % len(pattern)
			plan = append(plan, APAssignment{
				APID:     fmt.Sprintf(APIDFormat, apID),
				Position: GridPosition{Row: row, Col: col},
				Channel:  pattern[idx],
				Band:     band,
				TxPower:  txPower,
			})
			apID++
		}
	}
	return plan
}

// channelPattern builds the reuse pattern for a grid of the given width.
// Grids no wider than the channel list use the list directly; wider grids
// cycle the list out to the column count.
func (g *ChannelPlanGenerator) channelPattern(channels []int, cols int) []int {
	if cols <= len(channels) {
		return channels
	}
	pattern := make([]int, cols)
	for i := 0; i < cols; i++ {
		pattern[i] = channels[i%len(channels)]
	}
	return pattern
}

// txPowerForRadius maps a coverage radius onto a transmit power tier using
// a simplified free-space path loss assumption at 5 GHz. The radius is a
// fixed constant in this design, so every AP in a run lands on one tier.
func txPowerForRadius(radius float64) string {
	switch {
	case radius <= TxPowerLowMaxRadius:
		return TxPowerLow
	case radius <= TxPowerMediumMaxRadius:
		return TxPowerMedium
	default:
		return TxPowerHigh
	}
}
