package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a planning run loaded from a YAML file, so facility
// profiles can be kept in version control and replayed.
type Scenario struct {
	Name       string `yaml:"name"`
	Dimensions struct {
		Width  float64 `yaml:"width"`
		Length float64 `yaml:"length"`
		Height float64 `yaml:"height"`
	} `yaml:"dimensions"`
	Band    string `yaml:"band"`
	Devices struct {
		Mix map[string]int `yaml:"mix"`
	} `yaml:"devices"`
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return &s, nil
}

// DefaultScenario returns the bundled fulfillment-center example used when
// no scenario file is given.
func DefaultScenario() *Scenario {
	s := &Scenario{Name: "FC-EXAMPLE-01", Band: Band5GHz}
	s.Dimensions.Width = 200
	s.Dimensions.Length = 300
	s.Dimensions.Height = 12
	s.Devices.Mix = map[string]int{
		"handheld_scanner": 200,
		"tablet":           50,
		"laptop":           30,
		"voice_device":     150,
		"iot_sensor":       50,
		"mobile_robot":     20,
	}
	return s
}

// PlanRequest converts a scenario into the request shape the planner takes.
func (s *Scenario) PlanRequest() PlanRequest {
	return PlanRequest{
		Facility: s.Name,
		Dimensions: FacilityDimensions{
			Width:  s.Dimensions.Width,
			Length: s.Dimensions.Length,
			Height: s.Dimensions.Height,
		},
		DeviceMix: s.Devices.Mix,
		Band:      s.Band,
	}
}
