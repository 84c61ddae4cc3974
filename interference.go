package main

import "math/rand"

// defaultInterferenceCatalog is the fixed catalog of interference sources
// commonly found in warehouse environments, with mitigation guidance.
var defaultInterferenceCatalog = []InterferenceFinding{
	{
		Type:       "Bluetooth devices",
		Frequency:  "2.4 GHz",
		Impact:     "Low",
		Mitigation: "Use 5GHz band for critical devices",
	},
	{
		Type:       "Microwave ovens (break rooms)",
		Frequency:  "2.45 GHz",
		Impact:     "High",
		Mitigation: "Avoid channel 9-11 near break areas",
	},
	{
		Type:       "Wireless barcode scanners",
		Frequency:  "2.4 GHz",
		Impact:     "Medium",
		Mitigation: "Implement band steering to 5GHz",
	},
	{
		Type:       "Security cameras (wireless)",
		Frequency:  "2.4/5 GHz",
		Impact:     "Medium",
		Mitigation: "Use wired backhaul for cameras",
	},
	{
		Type:       "Industrial equipment (variable frequency drives)",
		Frequency:  "Broadband noise",
		Impact:     "Low-Medium",
		Mitigation: "Ensure proper equipment shielding",
	},
}

// InterferenceSampler draws a bounded random subset of the interference
// catalog for each analysis. The random source is injected so tests can
// supply a fixed seed; the sampler has no other state.
type InterferenceSampler struct {
	catalog []InterferenceFinding
	rng     *rand.Rand
}

// NewInterferenceSampler creates a sampler over the default catalog.
func NewInterferenceSampler(rng *rand.Rand) *InterferenceSampler {
	return &InterferenceSampler{catalog: defaultInterferenceCatalog, rng: rng}
}

// NewInterferenceSamplerWithCatalog creates a sampler over a custom catalog.
func NewInterferenceSamplerWithCatalog(catalog []InterferenceFinding, rng *rand.Rand) *InterferenceSampler {
	return &InterferenceSampler{catalog: catalog, rng: rng}
}

// Catalog returns a copy of the full interference catalog.
func (s *InterferenceSampler) Catalog() []InterferenceFinding {
	out := make([]InterferenceFinding, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Sample draws between two and four catalog entries uniformly at random
// without replacement. The sample size itself is chosen per call.
func (s *InterferenceSampler) Sample() []InterferenceFinding {
	k := MinInterferenceFindings + s.rng.Intn(MaxInterferenceFindings-MinInterferenceFindings+1)
	if k > len(s.catalog) {
		k = len(s.catalog)
	}
	perm := s.rng.Perm(len(s.catalog))
	sample := make([]InterferenceFinding, 0, k)
	for _, i := range perm[:k] {
		sample = append(sample, s.catalog[i])
	}
	return sample
}
