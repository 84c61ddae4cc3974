package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Channel Plan Generator Tests ---

func TestChannelPlanGenerator_Generate(t *testing.T) {
	layout, err := AnalyzeFacilityLayout(200, 300, 12)
	require.NoError(t, err)

	generator := NewChannelPlanGenerator(NewChannelCatalog())
	plan := generator.Generate(layout, Band5GHz)

	require.Len(t, plan, 54)

	// Row-major visit order with 1-based sequential IDs.
	assert.Equal(t, "AP-001", plan[0].APID)
	assert.Equal(t, GridPosition{Row: 0, Col: 0}, plan[0].Position)
	assert.Equal(t, "AP-007", plan[6].APID)
	assert.Equal(t, GridPosition{Row: 1, Col: 0}, plan[6].Position)
	assert.Equal(t, "AP-054", plan[53].APID)
	assert.Equal(t, GridPosition{Row: 8, Col: 5}, plan[53].Position)

	for _, ap := range plan {
		assert.Equal(t, Band5GHz, ap.Band)
	}
}

func TestChannelPlanGenerator_PatternIndexing(t *testing.T) {
	// 6 columns over the 8-channel 5 GHz list: the flattened cell index
	// walks the whole pattern, so row 0 uses channels 36..157 and row 1
	// continues at 161 before wrapping.
	layout, err := AnalyzeFacilityLayout(200, 300, 12)
	require.NoError(t, err)

	generator := NewChannelPlanGenerator(NewChannelCatalog())
	plan := generator.Generate(layout, Band5GHz)

	assert.Equal(t, []int{36, 40, 44, 48, 149, 153}, planChannels(plan[:6]))
	assert.Equal(t, 157, plan[6].Channel)
	assert.Equal(t, 161, plan[7].Channel)
	assert.Equal(t, 36, plan[8].Channel)
}

func TestChannelPlanGenerator_NarrowGrid24(t *testing.T) {
	// Two columns over the three 2.4 GHz channels: cell index 2 (row 1,
	// col 0) picks up channel 11, so reuse is staggered across rows.
	layout, err := AnalyzeFacilityLayout(60, 100, 8)
	require.NoError(t, err)
	require.Equal(t, 2, layout.APGrid.Columns)
	require.Equal(t, 3, layout.APGrid.Rows)

	generator := NewChannelPlanGenerator(NewChannelCatalog())
	plan := generator.Generate(layout, Band2_4GHz)

	require.Len(t, plan, 6)
	assert.Equal(t, []int{1, 6, 11, 1, 6, 11}, planChannels(plan))
}

func TestChannelPlanGenerator_WideGridCyclesPattern(t *testing.T) {
	// Ten columns over three 2.4 GHz channels: the pattern is extended to
	// grid width, so each row restarts the cycle at channel 1 when the row
	// count aligns with the pattern length.
	layout, err := AnalyzeFacilityLayout(350, 35, 8)
	require.NoError(t, err)
	require.Equal(t, 10, layout.APGrid.Columns)
	require.Equal(t, 1, layout.APGrid.Rows)

	generator := NewChannelPlanGenerator(NewChannelCatalog())
	plan := generator.Generate(layout, Band2_4GHz)

	require.Len(t, plan, 10)
	assert.Equal(t, []int{1, 6, 11, 1, 6, 11, 1, 6, 11, 1}, planChannels(plan))
}

func TestChannelPlanGenerator_Deterministic(t *testing.T) {
	layout, err := AnalyzeFacilityLayout(200, 300, 12)
	require.NoError(t, err)

	generator := NewChannelPlanGenerator(NewChannelCatalog())
	first := generator.Generate(layout, Band5GHz)
	second := generator.Generate(layout, Band5GHz)

	assert.Equal(t, first, second)
}

func TestTxPowerForRadius(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		expected string
	}{
		{"Small radius is low power", 15, TxPowerLow},
		{"Low boundary", 20, TxPowerLow},
		{"Default radius is medium power", 25, TxPowerMedium},
		{"Medium boundary", 30, TxPowerMedium},
		{"Large radius is high power", 40, TxPowerHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, txPowerForRadius(tt.radius))
		})
	}
}

func TestChannelPlanGenerator_TxPowerTier(t *testing.T) {
	layout, err := AnalyzeFacilityLayout(200, 300, 12)
	require.NoError(t, err)

	generator := NewChannelPlanGenerator(NewChannelCatalog())
	for _, ap := range generator.Generate(layout, Band5GHz) {
		assert.Equal(t, TxPowerMedium, ap.TxPower)
	}
}

// planChannels extracts the channel sequence from a plan
func planChannels(plan []APAssignment) []int {
	channels := make([]int, len(plan))
	for i, ap := range plan {
		channels[i] = ap.Channel
	}
	return channels
}
