package narrate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoopsight/frontoffice/schema"
)

func testTeam() *schema.TeamSnapshot {
	return &schema.TeamSnapshot{
		TeamID: "team-a",
		Name:   "The Front Office",
		Roster: []schema.PlayerRecords{
			{
				PlayerID:  "p1",
				Name:      "Rim Protector",
				Positions: []schema.Position{schema.Center},
				Records: []schema.StatRecord{
					{
						PlayerID:    "p1",
						Window:      schema.Window7Day,
						GamesPlayed: 3,
						Lines: map[schema.Category]float64{
							schema.CatBlocks: 2.8,
							schema.CatPoints: 11.5,
							schema.CatFGPct:  0.61,
						},
					},
				},
			},
			{
				PlayerID:  "p2",
				Name:      "Hurt Guard",
				Positions: []schema.Position{schema.PointGuard},
				Records: []schema.StatRecord{
					{
						PlayerID:     "p2",
						Window:       schema.Window7Day,
						Availability: schema.InjuredStatus,
					},
				},
			},
		},
	}
}

func TestScoutContext(t *testing.T) {
	profile := &schema.TeamProfile{
		TeamID:     "team-a",
		RosterSize: 2,
		Strengths: map[schema.Category]schema.CategoryStrength{
			schema.CatPoints: {ZScore: 1.1, Confidence: schema.OKConfidence},
			schema.CatBlocks: {ZScore: -1.3, Confidence: schema.OKConfidence},
			schema.CatFTPct:  {ZScore: 0.1, ReliableCount: 1, Confidence: schema.LowConfidence},
		},
	}
	weaknesses := &schema.WeaknessProfile{
		TeamID: "team-a",
		Weaknesses: []schema.Weakness{
			{Category: schema.CatBlocks, Deficit: 1.3, ZScore: -1.3},
		},
		LowConfidence: []schema.Category{schema.CatFTPct},
	}
	candidates := []schema.CandidateScore{
		{
			PlayerID:  "p9",
			Name:      "Waiver Wing",
			Positions: []schema.Position{schema.SmallForward},
			Composite: 1.9,
			Contributions: map[schema.Category]float64{
				schema.CatBlocks: 1.5,
				schema.CatSteals: 0.4,
			},
		},
		{
			PlayerID:   "p10",
			Name:       "Ghost Entry",
			Positions:  []schema.Position{schema.PointGuard},
			DataCaveat: true,
		},
	}

	out := ScoutContext(testTeam(), profile, weaknesses, candidates)

	assert.Contains(t, out, "CURRENT ROSTER:")
	assert.Contains(t, out, "- Rim Protector (C): 7d: 11.5 pts 2.8 blk fg_pct 61.0%")
	assert.Contains(t, out, "- Hurt Guard (PG) [injured]")
	assert.Contains(t, out, "- blk: z -1.30")
	assert.Contains(t, out, "- ft_pct: z +0.10 (low confidence, 1 reliable players)")
	assert.Contains(t, out, "1. blk (z -1.30, deficit 1.30)")
	assert.Contains(t, out, "Excluded for low confidence: ft_pct")
	assert.Contains(t, out, "1. Waiver Wing (SF) score 1.90 [Strong] helps: blk +1.50, stl +0.40")
	assert.Contains(t, out, "2. Ghost Entry (PG) score 0.00 [Marginal] (no usable data)")
	assert.Contains(t, out, "YOUR TASK:")
}

func TestScoutContextEmptyInputs(t *testing.T) {
	out := ScoutContext(nil, nil, nil, nil)

	assert.Contains(t, out, "- No roster available")
	assert.Contains(t, out, "- No profile available")
	assert.Contains(t, out, "- No weaknesses detected")
	assert.Contains(t, out, "- No candidates scored")
}

func TestTradeContext(t *testing.T) {
	snapshot := &schema.LeagueSnapshot{
		LeagueID: "league-1",
		MyTeamID: "team-a",
		Teams: []schema.TeamSnapshot{
			*testTeam(),
			{
				TeamID: "team-b",
				Roster: []schema.PlayerRecords{
					{PlayerID: "p5", Name: "Corner Sniper", Positions: []schema.Position{schema.ShootingGuard}},
				},
			},
		},
	}
	eval := &schema.TradeEvaluation{
		SideA: schema.TradeSide{
			TeamID:   "team-a",
			Incoming: []string{"p5"},
			Outgoing: []string{"p1"},
			NetDelta: map[schema.Category]schema.StatValue{
				schema.CatThreesMade: {Value: 1.2, Known: true},
				schema.CatBlocks:     {Value: -2.8, Known: true},
				schema.CatFTPct:      {Known: false},
			},
			NeedGain: -0.2,
		},
		SideB: schema.TradeSide{
			TeamID:   "team-b",
			Incoming: []string{"p1"},
			Outgoing: []string{"p5"},
			NetDelta: map[schema.Category]schema.StatValue{
				schema.CatBlocks: {Value: 2.8, Known: true},
			},
			NeedGain: 0.9,
		},
		Fairness: -1.1,
		RiskFlags: []schema.RiskFlag{
			{PlayerID: "p1", Severity: schema.HighSeverity, Description: "shutdown candidate", ToTeam: "team-b"},
		},
	}

	out := TradeContext(snapshot, eval)

	assert.Contains(t, out, "Side team-a receives: Corner Sniper")
	assert.Contains(t, out, "Side team-a sends: Rim Protector")
	assert.Contains(t, out, "- team-a: blk -2.80 3pm +1.20 (need gain -0.20)")
	assert.Contains(t, out, "- team-b: blk +2.80 (need gain +0.90)")
	assert.Contains(t, out, "FAIRNESS SCORE: -1.10 (positive favors team-a)")
	assert.Contains(t, out, "- p1 going to team-b [high]: shutdown candidate")
	assert.Contains(t, out, "ANALYSIS INSTRUCTIONS:")
}

func TestTradeContextUnknownPlayerFallsBackToID(t *testing.T) {
	eval := &schema.TradeEvaluation{
		SideA: schema.TradeSide{TeamID: "team-a", Incoming: []string{"mystery"}},
		SideB: schema.TradeSide{TeamID: "team-b", Outgoing: []string{"mystery"}},
	}

	out := TradeContext(nil, eval)

	assert.Contains(t, out, "Side team-a receives: mystery")
	assert.Contains(t, out, "Side team-a sends: nothing")
}
