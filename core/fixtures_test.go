package core

import (
	"github.com/hoopsight/frontoffice/schema"
)

// flatBaseline returns a baseline with the given mean and stddev for
// every category, simple enough to compute expected z-scores by hand.
func flatBaseline(mean, stddev float64) schema.LeagueBaseline {
	baseline := make(schema.LeagueBaseline, len(schema.AllCategories))
	for _, c := range schema.AllCategories {
		baseline[c] = schema.CategoryBaseline{Mean: mean, StdDev: stddev}
	}
	return baseline
}

// testBaseline returns a baseline with plausible per-category values.
func testBaseline() schema.LeagueBaseline {
	return schema.LeagueBaseline{
		schema.CatPoints:     {Mean: 14.0, StdDev: 6.0},
		schema.CatRebounds:   {Mean: 5.5, StdDev: 2.5},
		schema.CatAssists:    {Mean: 3.0, StdDev: 2.0},
		schema.CatSteals:     {Mean: 0.9, StdDev: 0.4},
		schema.CatBlocks:     {Mean: 0.6, StdDev: 0.5},
		schema.CatTurnovers:  {Mean: 1.8, StdDev: 0.7},
		schema.CatThreesMade: {Mean: 1.5, StdDev: 1.0},
		schema.CatFGPct:      {Mean: 0.46, StdDev: 0.05},
		schema.CatFTPct:      {Mean: 0.78, StdDev: 0.08},
	}
}

// vectorOf builds a CategoryVector with the given known counting values.
// Categories not listed stay unknown.
func vectorOf(values map[schema.Category]float64) schema.CategoryVector {
	v := schema.NewCategoryVector()
	for c, val := range values {
		sv := schema.StatValue{Value: val, Known: true}
		if c.IsRate() {
			sv.Volume = 10
		}
		v[c] = sv
	}
	return v
}

// playerOf builds a PlayerVector with reliable games played.
func playerOf(id string, positions []schema.Position, values map[schema.Category]float64) schema.PlayerVector {
	return schema.PlayerVector{
		PlayerID:    id,
		Name:        id,
		Positions:   positions,
		GamesPlayed: 20,
		Vector:      vectorOf(values),
	}
}

// recordOf builds a StatRecord for one window.
func recordOf(playerID string, window schema.Window, games int, lines map[schema.Category]float64, volumes map[schema.Category]float64) schema.StatRecord {
	return schema.StatRecord{
		PlayerID:    playerID,
		Window:      window,
		GamesPlayed: games,
		Lines:       lines,
		Volumes:     volumes,
	}
}
