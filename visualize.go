package main

import (
	"fmt"
	"sort"
	"strings"
)

const bannerWidth = 60

// RenderChannelGrid produces an ASCII approximation of a report's channel
// grid. The full plan is not persisted, so the grid is reconstructed by
// replaying the distinct channels cyclically over the grid shape; at most
// the first 10 rows and 15 columns are rendered.
func RenderChannelGrid(report *OptimizationReport) string {
	var b strings.Builder

	layout := report.LayoutAnalysis
	cols := layout.APGrid.Columns
	rows := layout.APGrid.Rows
	channelsUsed := report.ChannelPlanSummary.ChannelsUsed

	b.WriteString("\n" + strings.Repeat("=", bannerWidth) + "\n")
	b.WriteString("CHANNEL ASSIGNMENT VISUALIZATION\n")
	b.WriteString(strings.Repeat("=", bannerWidth) + "\n")
	fmt.Fprintf(&b, "Facility: %s\n", report.Facility)
	fmt.Fprintf(&b, "Grid Size: %d x %d APs\n", cols, rows)
	fmt.Fprintf(&b, "Primary Band: %s\n", report.ExecutiveSummary.PrimaryBand)
	b.WriteString("\nChannel Grid Pattern:\n")
	b.WriteString("(Each number represents an AP's channel assignment)\n\n")

	if len(channelsUsed) == 0 {
		b.WriteString("No channel assignments in report.\n")
		return b.String()
	}

	renderRows := rows
	if renderRows > MaxGridRowsRendered {
		renderRows = MaxGridRowsRendered
	}
	renderCols := cols
	if renderCols > MaxGridColsRendered {
		renderCols = MaxGridColsRendered
	}

	for row := 0; row < renderRows; row++ {
		cells := make([]string, 0, renderCols)
		for col := 0; col < renderCols; col++ {
			idx := row*cols + col
			channel := channelsUsed[idx%len(channelsUsed)]
			cells = append(cells, fmt.Sprintf("%3d", channel))
		}
		fmt.Fprintf(&b, "Row %2d: %s\n", row+1, strings.Join(cells, " "))
	}

	if rows > MaxGridRowsRendered || cols > MaxGridColsRendered {
		b.WriteString("\n... (showing partial grid for clarity)\n")
	}

	b.WriteString("\n" + strings.Repeat("-", bannerWidth) + "\n")
	b.WriteString("CHANNEL USAGE SUMMARY:\n")
	fmt.Fprintf(&b, "Unique channels used: %d\n", len(channelsUsed))
	fmt.Fprintf(&b, "Channels: %s\n", joinChannels(channelsUsed))
	if sep, ok := minChannelSeparation(channelsUsed); ok {
		fmt.Fprintf(&b, "Minimum channel separation: %d MHz\n", sep*ChannelStepMHz)
	}

	b.WriteString("\n" + strings.Repeat("-", bannerWidth) + "\n")
	b.WriteString("COVERAGE STATISTICS:\n")
	area := layout.Dimensions.Width * layout.Dimensions.Length
	totalAPs := cols * rows
	fmt.Fprintf(&b, "Total area: %.0f square meters\n", area)
	fmt.Fprintf(&b, "APs deployed: %d\n", totalAPs)
	fmt.Fprintf(&b, "Area per AP: %.1f square meters\n", area/float64(totalAPs))
	fmt.Fprintf(&b, "Estimated coverage: %s\n", report.ExecutiveSummary.EstimatedCoverage)
	b.WriteString("\n" + strings.Repeat("=", bannerWidth) + "\n")

	return b.String()
}

// minChannelSeparation returns the smallest gap between adjacent sorted
// channels, in channel numbers. ok is false when fewer than two channels
// are in use.
func minChannelSeparation(channels []int) (int, bool) {
	if len(channels) < 2 {
		return 0, false
	}
	sorted := make([]int, len(channels))
	copy(sorted, channels)
	sort.Ints(sorted)
	minSep := sorted[1] - sorted[0]
	for i := 2; i < len(sorted); i++ {
		if sep := sorted[i] - sorted[i-1]; sep < minSep {
			minSep = sep
		}
	}
	return minSep, true
}

// joinChannels formats channel numbers as a sorted comma-separated list
func joinChannels(channels []int) string {
	sorted := make([]int, len(channels))
	copy(sorted, channels)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, ch := range sorted {
		parts[i] = fmt.Sprintf("%d", ch)
	}
	return strings.Join(parts, ", ")
}

// DisplayReport renders a full optimization report as readable text for
// the CLI.
func DisplayReport(report *OptimizationReport) string {
	var b strings.Builder

	b.WriteString("\n" + strings.Repeat("=", bannerWidth) + "\n")
	b.WriteString("WIRELESS CHANNEL OPTIMIZATION REPORT\n")
	b.WriteString(strings.Repeat("=", bannerWidth) + "\n")
	fmt.Fprintf(&b, "Facility: %s\n", report.Facility)
	if len(report.Timestamp) >= 10 {
		fmt.Fprintf(&b, "Analysis Date: %s\n", report.Timestamp[:10])
	}

	b.WriteString("\nEXECUTIVE SUMMARY:\n")
	fmt.Fprintf(&b, "  Recommended APs: %d\n", report.ExecutiveSummary.RecommendedAPs)
	fmt.Fprintf(&b, "  Primary Band: %s\n", report.ExecutiveSummary.PrimaryBand)
	fmt.Fprintf(&b, "  Secondary Band: %s\n", report.ExecutiveSummary.SecondaryBand)
	fmt.Fprintf(&b, "  Estimated Coverage: %s\n", report.ExecutiveSummary.EstimatedCoverage)

	layout := report.LayoutAnalysis
	b.WriteString("\nLAYOUT ANALYSIS:\n")
	fmt.Fprintf(&b, "  Facility: %gm x %gm x %gm\n",
		layout.Dimensions.Width, layout.Dimensions.Length, layout.Dimensions.Height)
	fmt.Fprintf(&b, "  Coverage grid: %d x %d APs\n", layout.APGrid.Columns, layout.APGrid.Rows)
	fmt.Fprintf(&b, "  %s\n", layout.VerticalConsideration)

	capacity := report.CapacityAnalysis
	b.WriteString("\nCAPACITY ANALYSIS:\n")
	fmt.Fprintf(&b, "  Total devices: %d\n", capacity.TotalDevices)
	fmt.Fprintf(&b, "  Bandwidth required: %g Mbps\n", capacity.TotalBandwidthRequired)
	b.WriteString("  Device breakdown:\n")
	for _, deviceType := range sortedBreakdownKeys(capacity.DeviceBreakdown) {
		info := capacity.DeviceBreakdown[deviceType]
		fmt.Fprintf(&b, "    - %s: %d devices @ %g Mbps each\n",
			deviceType, info.Count, info.BandwidthPerDevice)
	}

	b.WriteString("\nINTERFERENCE DETECTED:\n")
	for _, finding := range report.InterferenceAnalysis {
		fmt.Fprintf(&b, "  - %s (%s)\n", finding.Type, finding.Frequency)
		fmt.Fprintf(&b, "    Impact: %s | Mitigation: %s\n", finding.Impact, finding.Mitigation)
	}

	b.WriteString("\nRECOMMENDATIONS:\n")
	for i, rec := range report.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
	}

	return b.String()
}

// sortedBreakdownKeys returns breakdown keys in stable order for display
func sortedBreakdownKeys(breakdown map[string]DeviceBandwidth) []string {
	keys := make([]string, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
