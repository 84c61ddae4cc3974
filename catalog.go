package main

import "math"

// ChannelCatalog holds the usable channel definitions per band and the
// pairwise overlap model. The catalog is immutable configuration data:
// it is built once and passed into the components that need it.
type ChannelCatalog struct {
	channels24   []Channel
	channels5    []Channel
	widthOptions []ChannelWidthOption
}

// NewChannelCatalog returns the default catalog: the three mutually
// non-overlapping 2.4 GHz channels and the common non-DFS 5 GHz channels.
func NewChannelCatalog() *ChannelCatalog {
	return &ChannelCatalog{
		channels24: []Channel{
			{Number: 1, FrequencyMHz: 2412, Band: Band2_4GHz},
			{Number: 6, FrequencyMHz: 2437, Band: Band2_4GHz},
			{Number: 11, FrequencyMHz: 2462, Band: Band2_4GHz},
		},
		channels5: []Channel{
			{Number: 36, FrequencyMHz: 5180, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 40, FrequencyMHz: 5200, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 44, FrequencyMHz: 5220, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 48, FrequencyMHz: 5240, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 149, FrequencyMHz: 5745, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 153, FrequencyMHz: 5765, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 157, FrequencyMHz: 5785, Band: Band5GHz, BandwidthMHz: 20},
			{Number: 161, FrequencyMHz: 5805, Band: Band5GHz, BandwidthMHz: 20},
		},
		widthOptions: []ChannelWidthOption{
			{WidthMHz: 20, Description: "20 MHz - Maximum APs, minimum throughput"},
			{WidthMHz: 40, Description: "40 MHz - Balanced APs and throughput"},
			{WidthMHz: 80, Description: "80 MHz - Fewer APs, higher throughput"},
		},
	}
}

// Channels returns the ordered channel list for a band. The returned slice
// is a copy so callers cannot mutate the catalog.
func (c *ChannelCatalog) Channels(band string) []Channel {
	var src []Channel
	if band == Band2_4GHz {
		src = c.channels24
	} else {
		src = c.channels5
	}
	out := make([]Channel, len(src))
	copy(out, src)
	return out
}

// ChannelNumbers returns just the channel numbers for a band, in catalog order.
func (c *ChannelCatalog) ChannelNumbers(band string) []int {
	channels := c.Channels(band)
	numbers := make([]int, len(channels))
	for i, ch := range channels {
		numbers[i] = ch.Number
	}
	return numbers
}

// WidthOptions returns the 5 GHz channel bonding trade-offs.
func (c *ChannelCatalog) WidthOptions() []ChannelWidthOption {
	out := make([]ChannelWidthOption, len(c.widthOptions))
	copy(out, c.widthOptions)
	return out
}

// OverlapPercentage calculates the spectral overlap between two channels
// of the same band, as a percentage.
//
// In the 2.4 GHz band channels sit 5 MHz apart with a 20 MHz occupied
// width, so overlap falls off linearly and reaches zero at 25 MHz
// separation. In the 5 GHz band the catalog channels are spaced so that
// distinct channels never overlap.
func (c *ChannelCatalog) OverlapPercentage(a, b int, band string) float64 {
	if band == Band2_4GHz {
		separation := int(math.Abs(float64(a-b))) * ChannelStepMHz
		switch {
		case separation >= NoOverlapSeparation:
			return 0
		case separation == 0:
			return OverlapFullPercent
		default:
			return float64(NoOverlapSeparation-separation) / NoOverlapSeparation * OverlapFullPercent
		}
	}
	if a == b {
		return OverlapFullPercent
	}
	return 0
}
