package core

import (
	"context"
	"math"
	"sync"

	"github.com/hoopsight/frontoffice/schema"
)

// FloorScore is the composite assigned to a candidate with no usable
// category data. It sits below any real composite so such candidates
// always rank last, carrying a data caveat instead of vanishing.
const FloorScore = -math.MaxFloat64

// ScorerConfig controls candidate scoring.
type ScorerConfig struct {
	// RedundancyPenalty is subtracted once per strong category the
	// candidate duplicates at a position the roster already covers.
	RedundancyPenalty float64

	// StrongThreshold is the candidate z-score at which a category counts
	// as one of the candidate's strengths for redundancy purposes.
	StrongThreshold float64

	// Precedence breaks exact composite ties after games played, matching
	// the weakness detector's configured priority order.
	Precedence []schema.Category
}

// DefaultScorerConfig returns the stock scorer configuration.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		RedundancyPenalty: 0.35,
		StrongThreshold:   0.5,
		Precedence:        DefaultDetectorConfig().Precedence,
	}
}

// ScoreCandidate computes one free agent's composite score against a
// weakness profile. The base score weights the candidate's normalized
// value in each weak category by that category's deficit, so production
// in a category the team needs more counts for more. Unknown categories
// contribute nothing; a candidate with no known data at all gets
// FloorScore plus a caveat.
func ScoreCandidate(candidate schema.PlayerVector, weaknesses schema.WeaknessProfile, baseline schema.LeagueBaseline, comp schema.RosterComposition, cfg ScorerConfig) schema.CandidateScore {
	score := schema.CandidateScore{
		PlayerID:      candidate.PlayerID,
		Name:          candidate.Name,
		Positions:     candidate.Positions,
		GamesPlayed:   candidate.GamesPlayed,
		Availability:  candidate.Availability,
		Contributions: make(map[schema.Category]float64),
	}

	if candidate.Vector.AllUnknown() {
		score.Composite = FloorScore
		score.DataCaveat = true
		return score
	}

	var base float64
	for _, w := range weaknesses.Weaknesses {
		sv := candidate.Vector[w.Category]
		if !sv.Known {
			continue
		}
		z := candidateZ(w.Category, sv, baseline)
		contribution := z * w.Deficit
		score.Contributions[w.Category] = contribution
		base += contribution
	}

	overlap := redundancyOverlap(candidate, baseline, comp, cfg.StrongThreshold)
	score.RedundancyPenalty = cfg.RedundancyPenalty * float64(overlap)
	score.Composite = base - score.RedundancyPenalty
	return score
}

// candidateZ normalizes a candidate's category value against the league
// baseline, inverting negative categories so positive means help.
func candidateZ(c schema.Category, sv schema.StatValue, baseline schema.LeagueBaseline) float64 {
	base := baseline[c]
	if base.StdDev <= 0 {
		return 0
	}
	return directedZ(c, (sv.Value-base.Mean)/base.StdDev)
}

// redundancyOverlap counts the candidate's strong categories that the
// roster already covers at one of the candidate's eligible positions.
func redundancyOverlap(candidate schema.PlayerVector, baseline schema.LeagueBaseline, comp schema.RosterComposition, strongThreshold float64) int {
	overlap := 0
	for _, c := range schema.AllCategories {
		sv := candidate.Vector[c]
		if !sv.Known || candidateZ(c, sv, baseline) < strongThreshold {
			continue
		}
		for _, pos := range candidate.Positions {
			if comp.Covered(pos, c) {
				overlap++
				break
			}
		}
	}
	return overlap
}

// ScoreCandidates scores every candidate and returns the ranked result.
// Returns MissingBaselineError when the baseline omits a recognized
// category.
func ScoreCandidates(candidates []schema.PlayerVector, weaknesses schema.WeaknessProfile, baseline schema.LeagueBaseline, comp schema.RosterComposition, cfg ScorerConfig) ([]schema.CandidateScore, error) {
	if err := checkBaseline(baseline); err != nil {
		return nil, err
	}
	scores := make([]schema.CandidateScore, len(candidates))
	for i, c := range candidates {
		scores[i] = ScoreCandidate(c, weaknesses, baseline, comp, cfg)
	}
	return rankCandidates(scores, cfg.Precedence), nil
}

// ScoreCandidatesParallel scores candidates with a worker pool. Each
// candidate is independent, so workers write to unique indexes and the
// final ranking is identical to the sequential path.
func ScoreCandidatesParallel(ctx context.Context, candidates []schema.PlayerVector, weaknesses schema.WeaknessProfile, baseline schema.LeagueBaseline, comp schema.RosterComposition, cfg ScorerConfig, workers int) ([]schema.CandidateScore, error) {
	if err := checkBaseline(baseline); err != nil {
		return nil, err
	}
	if workers <= 1 || len(candidates) < 2 {
		return ScoreCandidates(candidates, weaknesses, baseline, comp, cfg)
	}

	scores := make([]schema.CandidateScore, len(candidates))
	idxCh := make(chan int, len(candidates))

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range idxCh {
				if ctx.Err() != nil {
					return
				}
				scores[i] = ScoreCandidate(candidates[i], weaknesses, baseline, comp, cfg)
			}
		})
	}
	for i := range candidates {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rankCandidates(scores, cfg.Precedence), nil
}
