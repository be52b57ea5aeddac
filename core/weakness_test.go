package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/schema"
)

// profileWith builds a TeamProfile from per-category z-scores with ok
// confidence.
func profileWith(zscores map[schema.Category]float64) schema.TeamProfile {
	profile := schema.TeamProfile{
		TeamID:    "team-a",
		Strengths: make(map[schema.Category]schema.CategoryStrength),
	}
	for c, z := range zscores {
		profile.Strengths[c] = schema.CategoryStrength{ZScore: z, Confidence: schema.OKConfidence}
	}
	return profile
}

func TestDetectWeaknessesThresholdAndOrder(t *testing.T) {
	profile := profileWith(map[schema.Category]float64{
		schema.CatPoints:   1.2,
		schema.CatBlocks:   -2.0,
		schema.CatSteals:   -0.8,
		schema.CatAssists:  -0.5, // exactly at threshold, not below
		schema.CatRebounds: 0.1,
	})

	out := DetectWeaknesses(profile, DefaultDetectorConfig())

	require.Len(t, out.Weaknesses, 2)
	assert.Equal(t, schema.CatBlocks, out.Weaknesses[0].Category)
	assert.Equal(t, schema.CatSteals, out.Weaknesses[1].Category)
	assert.InDelta(t, 2.0, out.Weaknesses[0].Deficit, 1e-9)
	assert.InDelta(t, -2.0, out.Weaknesses[0].ZScore, 1e-9)
}

func TestDetectWeaknessesPrecedenceBreaksTies(t *testing.T) {
	profile := profileWith(map[schema.Category]float64{
		schema.CatBlocks: -1.0,
		schema.CatSteals: -1.0,
	})

	cfg := DefaultDetectorConfig()
	out := DetectWeaknesses(profile, cfg)
	require.Len(t, out.Weaknesses, 2)
	assert.Equal(t, schema.CatBlocks, out.Weaknesses[0].Category)

	// Flipping the precedence flips the tie
	cfg.Precedence = []schema.Category{schema.CatSteals, schema.CatBlocks}
	out = DetectWeaknesses(profile, cfg)
	assert.Equal(t, schema.CatSteals, out.Weaknesses[0].Category)
}

func TestDetectWeaknessesLowConfidenceExcluded(t *testing.T) {
	profile := profileWith(map[schema.Category]float64{
		schema.CatBlocks: -2.0,
	})
	profile.Strengths[schema.CatFTPct] = schema.CategoryStrength{
		ZScore:     -3.0,
		Confidence: schema.LowConfidence,
	}

	out := DetectWeaknesses(profile, DefaultDetectorConfig())

	// The worst z-score on the roster is thin data, so it must not lead
	// the ranking
	require.Len(t, out.Weaknesses, 1)
	assert.Equal(t, schema.CatBlocks, out.Weaknesses[0].Category)
	assert.Equal(t, []schema.Category{schema.CatFTPct}, out.LowConfidence)
}

func TestDetectWeaknessesDeterministic(t *testing.T) {
	profile := profileWith(map[schema.Category]float64{
		schema.CatBlocks:     -1.5,
		schema.CatSteals:     -1.5,
		schema.CatThreesMade: -0.9,
		schema.CatTurnovers:  -0.7,
	})
	cfg := DefaultDetectorConfig()

	first := DetectWeaknesses(profile, cfg)
	for range 10 {
		assert.Equal(t, first, DetectWeaknesses(profile, cfg))
	}
}

func TestPrecedenceRankUnlistedSortsLast(t *testing.T) {
	precedence := []schema.Category{schema.CatBlocks, schema.CatSteals}
	assert.Equal(t, 0, precedenceRank(precedence, schema.CatBlocks))
	assert.Equal(t, 1, precedenceRank(precedence, schema.CatSteals))
	assert.Equal(t, 2, precedenceRank(precedence, schema.CatPoints))
}
