package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Interference Sampler Tests ---

func TestInterferenceSampler_Catalog(t *testing.T) {
	sampler := NewInterferenceSampler(rand.New(rand.NewSource(1)))

	catalog := sampler.Catalog()
	require.Len(t, catalog, 5)
	for _, finding := range catalog {
		assert.NotEmpty(t, finding.Type)
		assert.NotEmpty(t, finding.Frequency)
		assert.NotEmpty(t, finding.Impact)
		assert.NotEmpty(t, finding.Mitigation)
	}
}

func TestInterferenceSampler_SampleBounds(t *testing.T) {
	sampler := NewInterferenceSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		sample := sampler.Sample()
		assert.GreaterOrEqual(t, len(sample), MinInterferenceFindings)
		assert.LessOrEqual(t, len(sample), MaxInterferenceFindings)
	}
}

func TestInterferenceSampler_SampleIsCatalogSubset(t *testing.T) {
	sampler := NewInterferenceSampler(rand.New(rand.NewSource(7)))

	catalogTypes := make(map[string]bool)
	for _, finding := range sampler.Catalog() {
		catalogTypes[finding.Type] = true
	}

	for i := 0; i < 50; i++ {
		for _, finding := range sampler.Sample() {
			assert.True(t, catalogTypes[finding.Type],
				"sampled finding %q not in catalog", finding.Type)
		}
	}
}

func TestInterferenceSampler_NoRepeats(t *testing.T) {
	sampler := NewInterferenceSampler(rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		seen := make(map[string]bool)
		for _, finding := range sampler.Sample() {
			assert.False(t, seen[finding.Type], "duplicate finding %q in one sample", finding.Type)
			seen[finding.Type] = true
		}
	}
}

func TestInterferenceSampler_FixedSeedReproducible(t *testing.T) {
	first := NewInterferenceSampler(rand.New(rand.NewSource(5))).Sample()
	second := NewInterferenceSampler(rand.New(rand.NewSource(5))).Sample()

	assert.Equal(t, first, second)
}

func TestInterferenceSampler_SmallCustomCatalog(t *testing.T) {
	// The sample size is capped at the catalog size.
	catalog := []InterferenceFinding{
		{Type: "Cordless phones", Frequency: "2.4 GHz", Impact: "Low", Mitigation: "Replace with DECT"},
	}
	sampler := NewInterferenceSamplerWithCatalog(catalog, rand.New(rand.NewSource(3)))

	sample := sampler.Sample()
	require.Len(t, sample, 1)
	assert.Equal(t, "Cordless phones", sample[0].Type)
}
