package core

import (
	"sort"

	"github.com/hoopsight/frontoffice/schema"
)

// DetectorConfig controls which categories count as weaknesses and how
// ties rank.
type DetectorConfig struct {
	// SeverityThreshold is the strength z-score below which a category
	// is reported as a weakness.
	SeverityThreshold float64

	// Precedence is the league-strategy priority order used to break
	// ties. It is configuration, not policy: category leagues commonly
	// rank scarce categories like blocks and steals ahead of turnovers,
	// points leagues do not.
	Precedence []schema.Category
}

// DefaultDetectorConfig returns the stock detector configuration.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		SeverityThreshold: -0.5,
		Precedence: []schema.Category{
			schema.CatBlocks, schema.CatSteals, schema.CatThreesMade,
			schema.CatAssists, schema.CatRebounds, schema.CatPoints,
			schema.CatFGPct, schema.CatFTPct, schema.CatTurnovers,
		},
	}
}

// precedenceRank returns the position of c in the precedence list, or
// len(precedence) for categories not listed so they sort last.
func precedenceRank(precedence []schema.Category, c schema.Category) int {
	for i, p := range precedence {
		if p == c {
			return i
		}
	}
	return len(precedence)
}

// DetectWeaknesses derives the ordered weakness ranking from a team
// profile: categories below the severity threshold, most deficient
// first, ties broken by the configured precedence. Low-confidence
// categories never enter the primary ranking; they are reported
// separately so callers can surface them with a caveat.
//
// Deterministic given the same profile and configuration.
func DetectWeaknesses(profile schema.TeamProfile, cfg DetectorConfig) schema.WeaknessProfile {
	out := schema.WeaknessProfile{TeamID: profile.TeamID}

	for _, c := range schema.AllCategories {
		s, ok := profile.Strengths[c]
		if !ok {
			continue
		}
		if s.Confidence == schema.LowConfidence {
			out.LowConfidence = append(out.LowConfidence, c)
			continue
		}
		if s.ZScore < cfg.SeverityThreshold {
			out.Weaknesses = append(out.Weaknesses, schema.Weakness{
				Category: c,
				Deficit:  -s.ZScore,
				ZScore:   s.ZScore,
			})
		}
	}

	sort.SliceStable(out.Weaknesses, func(i, j int) bool {
		wi, wj := out.Weaknesses[i], out.Weaknesses[j]
		if wi.ZScore != wj.ZScore {
			return wi.ZScore < wj.ZScore
		}
		return precedenceRank(cfg.Precedence, wi.Category) < precedenceRank(cfg.Precedence, wj.Category)
	})

	return out
}
