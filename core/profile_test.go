package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/schema"
)

func TestBuildTeamProfileCountingZScore(t *testing.T) {
	baseline := flatBaseline(10, 2)
	roster := []schema.PlayerVector{
		playerOf("p1", []schema.Position{schema.PointGuard}, map[schema.Category]float64{schema.CatPoints: 14}),
		playerOf("p2", []schema.Position{schema.Center}, map[schema.Category]float64{schema.CatPoints: 12}),
	}

	profile, err := BuildTeamProfile("team-a", roster, baseline, DefaultProfilerConfig())
	require.NoError(t, err)

	// Total 26 vs 2 draws from N(10, 2): z = (26 - 20) / (2*sqrt(2))
	s := profile.Strengths[schema.CatPoints]
	assert.InDelta(t, 6.0/(2.0*math.Sqrt2), s.ZScore, 1e-9)
	assert.InDelta(t, 26.0, s.TeamValue, 1e-9)
	assert.Equal(t, 2, profile.RosterSize)
}

func TestBuildTeamProfileNegativeCategoryFlipped(t *testing.T) {
	baseline := flatBaseline(2, 1)
	roster := []schema.PlayerVector{
		playerOf("p1", []schema.Position{schema.PointGuard}, map[schema.Category]float64{schema.CatTurnovers: 4}),
	}

	profile, err := BuildTeamProfile("team-a", roster, baseline, DefaultProfilerConfig())
	require.NoError(t, err)

	// More turnovers than baseline must read as roster weakness
	assert.Negative(t, profile.Strengths[schema.CatTurnovers].ZScore)
}

func TestBuildTeamProfileRateVolumeWeighted(t *testing.T) {
	baseline := testBaseline()

	// A low-volume 100% shooter next to a starter-volume 40% shooter
	bench := playerOf("bench", []schema.Position{schema.ShootingGuard}, nil)
	bench.Vector[schema.CatFGPct] = schema.StatValue{Value: 1.0, Volume: 1, Known: true}
	starter := playerOf("starter", []schema.Position{schema.PointGuard}, nil)
	starter.Vector[schema.CatFGPct] = schema.StatValue{Value: 0.40, Volume: 19, Known: true}

	profile, err := BuildTeamProfile("team-a", []schema.PlayerVector{bench, starter}, baseline, DefaultProfilerConfig())
	require.NoError(t, err)

	// (1*1.0 + 19*0.40) / 20 = 0.43, nowhere near the naive mean 0.70
	s := profile.Strengths[schema.CatFGPct]
	assert.InDelta(t, 0.43, s.TeamValue, 1e-9)
	assert.Negative(t, s.ZScore)
}

func TestBuildTeamProfileOrderIndependent(t *testing.T) {
	baseline := testBaseline()
	roster := []schema.PlayerVector{
		playerOf("p1", []schema.Position{schema.PointGuard}, map[schema.Category]float64{schema.CatPoints: 22, schema.CatAssists: 8}),
		playerOf("p2", []schema.Position{schema.Center}, map[schema.Category]float64{schema.CatPoints: 11, schema.CatBlocks: 2.2}),
		playerOf("p3", []schema.Position{schema.SmallForward}, map[schema.Category]float64{schema.CatPoints: 16, schema.CatThreesMade: 2.5}),
	}
	reversed := []schema.PlayerVector{roster[2], roster[1], roster[0]}

	a, err := BuildTeamProfile("team-a", roster, baseline, DefaultProfilerConfig())
	require.NoError(t, err)
	b, err := BuildTeamProfile("team-a", reversed, baseline, DefaultProfilerConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Strengths, b.Strengths)
}

func TestBuildTeamProfileConfidence(t *testing.T) {
	baseline := testBaseline()
	cfg := ProfilerConfig{ReliableGames: 5, MinReliablePlayers: 2}

	reliable := playerOf("p1", []schema.Position{schema.PointGuard}, map[schema.Category]float64{schema.CatPoints: 15})
	thin := playerOf("p2", []schema.Position{schema.Center}, map[schema.Category]float64{schema.CatPoints: 10})
	thin.GamesPlayed = 2

	profile, err := BuildTeamProfile("team-a", []schema.PlayerVector{reliable, thin}, baseline, cfg)
	require.NoError(t, err)

	s := profile.Strengths[schema.CatPoints]
	assert.Equal(t, 1, s.ReliableCount)
	assert.Equal(t, schema.LowConfidence, s.Confidence)
}

func TestBuildTeamProfileMissingBaseline(t *testing.T) {
	baseline := testBaseline()
	delete(baseline, schema.CatBlocks)

	_, err := BuildTeamProfile("team-a", nil, baseline, DefaultProfilerConfig())
	var mbErr *MissingBaselineError
	require.ErrorAs(t, err, &mbErr)
	assert.Equal(t, schema.CatBlocks, mbErr.Category)
}

func TestBuildRosterComposition(t *testing.T) {
	baseline := testBaseline()
	center := playerOf("big", []schema.Position{schema.Center, schema.PowerForward}, map[schema.Category]float64{
		schema.CatBlocks:   2.5, // well above baseline
		schema.CatRebounds: 5.5, // exactly baseline, below threshold
	})

	comp := BuildRosterComposition([]schema.PlayerVector{center}, baseline, 0.5)

	assert.True(t, comp.Covered(schema.Center, schema.CatBlocks))
	assert.True(t, comp.Covered(schema.PowerForward, schema.CatBlocks))
	assert.False(t, comp.Covered(schema.Center, schema.CatRebounds))
	assert.False(t, comp.Covered(schema.PointGuard, schema.CatBlocks))
}
