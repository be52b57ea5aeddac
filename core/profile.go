package core

import (
	"math"

	"github.com/hoopsight/frontoffice/schema"
)

// ProfilerConfig controls team-level aggregation and confidence.
type ProfilerConfig struct {
	// ReliableGames is the blended games-played count a player needs for
	// their category data to count toward confidence.
	ReliableGames int

	// MinReliablePlayers is the roster count below which a category's
	// confidence flag drops to low.
	MinReliablePlayers int
}

// DefaultProfilerConfig returns the stock profiler configuration.
func DefaultProfilerConfig() ProfilerConfig {
	return ProfilerConfig{ReliableGames: 5, MinReliablePlayers: 5}
}

// directedZ flips the sign for categories where lower is better, so a
// positive z always reads as roster strength.
func directedZ(c schema.Category, z float64) float64 {
	if c.IsNegative() {
		return -z
	}
	return z
}

// BuildTeamProfile aggregates a roster's CategoryVectors into one
// per-category strength profile against the league baseline.
//
// Counting categories sum member contributions; the z-score treats the
// roster total as a sum of n draws from the baseline population, so it
// normalizes against n*mean with std*sqrt(n). Rate categories are
// volume-weighted averages compared against the baseline directly;
// a low-volume high-percentage player must not drag the team FG% up
// as if he shot starter volume.
//
// Returns MissingBaselineError when the baseline omits a recognized
// category. Aggregation is order-independent over the roster.
func BuildTeamProfile(teamID string, roster []schema.PlayerVector, baseline schema.LeagueBaseline, cfg ProfilerConfig) (schema.TeamProfile, error) {
	if err := checkBaseline(baseline); err != nil {
		return schema.TeamProfile{}, err
	}

	profile := schema.TeamProfile{
		TeamID:     teamID,
		RosterSize: len(roster),
		Strengths:  make(map[schema.Category]schema.CategoryStrength, len(schema.AllCategories)),
	}

	for _, c := range schema.AllCategories {
		base := baseline[c]
		var strength schema.CategoryStrength

		if c.IsRate() {
			strength = rateStrength(c, roster, base)
		} else {
			strength = countingStrength(c, roster, base)
		}

		strength.ReliableCount = reliableCount(c, roster, cfg.ReliableGames)
		strength.Confidence = schema.OKConfidence
		if strength.ReliableCount < cfg.MinReliablePlayers {
			strength.Confidence = schema.LowConfidence
		}
		profile.Strengths[c] = strength
	}

	return profile, nil
}

// countingStrength sums known member values and scores the total
// against n draws from the baseline population.
func countingStrength(c schema.Category, roster []schema.PlayerVector, base schema.CategoryBaseline) schema.CategoryStrength {
	var total float64
	n := 0
	for _, p := range roster {
		sv := p.Vector[c]
		if !sv.Known {
			continue
		}
		total += sv.Value
		n++
	}
	if n == 0 || base.StdDev <= 0 {
		return schema.CategoryStrength{TeamValue: total}
	}
	z := (total - float64(n)*base.Mean) / (base.StdDev * math.Sqrt(float64(n)))
	return schema.CategoryStrength{ZScore: directedZ(c, z), TeamValue: total}
}

// rateStrength volume-weights known member percentages and scores the
// aggregate rate against the baseline.
func rateStrength(c schema.Category, roster []schema.PlayerVector, base schema.CategoryBaseline) schema.CategoryStrength {
	var num, den float64
	for _, p := range roster {
		sv := p.Vector[c]
		if !sv.Known || sv.Volume <= 0 {
			continue
		}
		num += sv.Volume * sv.Value
		den += sv.Volume
	}
	if den == 0 || base.StdDev <= 0 {
		return schema.CategoryStrength{}
	}
	team := num / den
	z := (team - base.Mean) / base.StdDev
	return schema.CategoryStrength{ZScore: directedZ(c, z), TeamValue: team}
}

// reliableCount counts roster players whose category datum is both
// known and backed by enough games.
func reliableCount(c schema.Category, roster []schema.PlayerVector, reliableGames int) int {
	n := 0
	for _, p := range roster {
		if p.Vector[c].Known && p.GamesPlayed >= reliableGames {
			n++
		}
	}
	return n
}

// BuildRosterComposition derives, per position, the categories the
// roster already covers with strength. A player contributes a category
// to every position he is eligible for.
func BuildRosterComposition(roster []schema.PlayerVector, baseline schema.LeagueBaseline, strongThreshold float64) schema.RosterComposition {
	comp := make(schema.RosterComposition)
	for _, p := range roster {
		for _, c := range schema.AllCategories {
			sv := p.Vector[c]
			if !sv.Known {
				continue
			}
			base, ok := baseline[c]
			if !ok || base.StdDev <= 0 {
				continue
			}
			z := directedZ(c, (sv.Value-base.Mean)/base.StdDev)
			if z < strongThreshold {
				continue
			}
			for _, pos := range p.Positions {
				if !comp.Covered(pos, c) {
					comp[pos] = append(comp[pos], c)
				}
			}
		}
	}
	return comp
}
