package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryVector(t *testing.T) {
	v := NewCategoryVector()

	require.Len(t, v, len(AllCategories))
	for _, c := range AllCategories {
		sv, ok := v[c]
		assert.True(t, ok, "category %s should be present", c)
		assert.False(t, sv.Known, "category %s should start unknown", c)
	}
}

func TestAllUnknown(t *testing.T) {
	v := NewCategoryVector()
	assert.True(t, v.AllUnknown())

	v[CatBlocks] = StatValue{Value: 0.0, Known: true}
	assert.False(t, v.AllUnknown(), "a known zero still counts as data")
}

func TestCategoryPredicates(t *testing.T) {
	assert.True(t, CatFGPct.IsRate())
	assert.True(t, CatFTPct.IsRate())
	assert.False(t, CatPoints.IsRate())

	assert.True(t, CatTurnovers.IsNegative())
	assert.False(t, CatBlocks.IsNegative())

	assert.True(t, KnownCategory(CatThreesMade))
	assert.False(t, KnownCategory(Category("dunks")))
}

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, HighSeverity.Rank(), MediumSeverity.Rank())
	assert.Greater(t, MediumSeverity.Rank(), LowSeverity.Rank())
	assert.Greater(t, LowSeverity.Rank(), Severity("bogus").Rank())
}

func TestTeamProfileStrong(t *testing.T) {
	p := TeamProfile{
		Strengths: map[Category]CategoryStrength{
			CatPoints: {ZScore: 1.2, Confidence: OKConfidence},
			CatBlocks: {ZScore: 1.2, Confidence: LowConfidence},
		},
	}

	assert.True(t, p.Strong(CatPoints, 0.5))
	assert.False(t, p.Strong(CatPoints, 2.0))
	assert.False(t, p.Strong(CatBlocks, 0.5), "low confidence never counts as strong")
	assert.False(t, p.Strong(CatSteals, 0.5), "absent category is not strong")
}

func TestWeaknessProfileDeficitFor(t *testing.T) {
	w := WeaknessProfile{
		Weaknesses: []Weakness{
			{Category: CatBlocks, Deficit: 1.8},
			{Category: CatSteals, Deficit: 0.5},
		},
	}

	assert.InDelta(t, 1.8, w.DeficitFor(CatBlocks), 1e-9)
	assert.Zero(t, w.DeficitFor(CatPoints))
}

func TestRosterCompositionCovered(t *testing.T) {
	rc := RosterComposition{
		Center: []Category{CatBlocks, CatRebounds},
	}

	assert.True(t, rc.Covered(Center, CatBlocks))
	assert.False(t, rc.Covered(Center, CatSteals))
	assert.False(t, rc.Covered(PointGuard, CatBlocks))
}

func TestLeagueSnapshotFindPlayer(t *testing.T) {
	s := LeagueSnapshot{
		MyTeamID: "team-a",
		Teams: []TeamSnapshot{
			{TeamID: "team-a", Roster: []PlayerRecords{{PlayerID: "a1", Name: "Alpha Guard"}}},
		},
		FreeAgents: []PlayerRecords{{PlayerID: "fa1", Name: "Waiver Blocker"}},
	}

	p, teamID, ok := s.FindPlayer("a1")
	require.True(t, ok)
	assert.Equal(t, "Alpha Guard", p.Name)
	assert.Equal(t, "team-a", teamID)

	p, teamID, ok = s.FindPlayer("waiver blocker")
	require.True(t, ok, "name lookup is case-insensitive")
	assert.Equal(t, "fa1", p.PlayerID)
	assert.Empty(t, teamID, "free agents carry no team id")

	_, _, ok = s.FindPlayer("nobody")
	assert.False(t, ok)

	require.NotNil(t, s.MyTeam())
	assert.Equal(t, "team-a", s.MyTeam().TeamID)
	assert.Nil(t, s.Team("team-z"))
}
