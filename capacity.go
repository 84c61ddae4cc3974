package main

import (
	"fmt"
	"math"
)

// defaultDeviceBandwidthMbps is the fixed per-device bandwidth weight table
// in Mbps. Unrecognized device types deliberately fall back to the default
// weight instead of failing - the device-type set is open-ended.
var defaultDeviceBandwidthMbps = map[string]float64{
	"handheld_scanner": 0.5,
	"tablet":           2,
	"laptop":           5,
	"voice_device":     0.1,
	"iot_sensor":       0.05,
	"mobile_robot":     1,
}

// CapacityEstimator converts a device mix into an aggregate bandwidth
// figure and a capacity-driven AP count. The weight table is injected at
// construction so tests can substitute it.
type CapacityEstimator struct {
	weights map[string]float64
}

// NewCapacityEstimator creates an estimator with the default weight table.
func NewCapacityEstimator() *CapacityEstimator {
	return &CapacityEstimator{weights: defaultDeviceBandwidthMbps}
}

// NewCapacityEstimatorWithWeights creates an estimator with a custom table.
func NewCapacityEstimatorWithWeights(weights map[string]float64) *CapacityEstimator {
	return &CapacityEstimator{weights: weights}
}

// Weight returns the bandwidth weight for a device type, falling back to
// the default for unknown types.
func (e *CapacityEstimator) Weight(deviceType string) float64 {
	if w, ok := e.weights[deviceType]; ok {
		return w
	}
	return DefaultDeviceBandwidthMbps
}

// Weights returns a copy of the weight table.
func (e *CapacityEstimator) Weights() map[string]float64 {
	out := make(map[string]float64, len(e.weights))
	for k, v := range e.weights {
		out[k] = v
	}
	return out
}

// Estimate computes the capacity requirement for a device mix: per-type
// subtotals, total demand with the 30% management/growth overhead, and the
// AP count needed at the assumed per-AP throughput.
func (e *CapacityEstimator) Estimate(totalDevices int, deviceMix map[string]int) (*CapacityRequirement, error) {
	if totalDevices < 0 {
		return nil, fmt.Errorf("%s: total %d", ErrNegativeDeviceCount, totalDevices)
	}

	totalBandwidth := 0.0
	breakdown := make(map[string]DeviceBandwidth, len(deviceMix))
	for deviceType, count := range deviceMix {
		if count < 0 {
			return nil, fmt.Errorf("%s: %s=%d", ErrNegativeDeviceCount, deviceType, count)
		}
		if count > MaxDeviceTypeCount {
			return nil, fmt.Errorf("%s: %s=%d", ErrDeviceCountTooLarge, deviceType, count)
		}
		weight := e.Weight(deviceType)
		subtotal := weight * float64(count)
		totalBandwidth += subtotal
		breakdown[deviceType] = DeviceBandwidth{
			Count:              count,
			BandwidthPerDevice: weight,
			TotalBandwidth:     subtotal,
		}
	}

	totalBandwidth *= CapacityOverheadFactor

	return &CapacityRequirement{
		TotalDevices:           totalDevices,
		DeviceBreakdown:        breakdown,
		TotalBandwidthRequired: roundTo2(totalBandwidth),
		APsForCapacity:         int(math.Ceil(totalBandwidth / ThroughputPerAPMbps)),
	}, nil
}

// roundTo2 rounds to two decimal places for report readability.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
