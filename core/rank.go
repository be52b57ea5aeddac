package core

import (
	"math"
	"sort"

	"github.com/hoopsight/frontoffice/schema"
)

// rankCandidates stable-sorts candidate scores into their final order:
// composite descending, total games played descending (more data, more
// trustworthy signal), then the configured category precedence of each
// candidate's top contribution, then player id for byte-identical
// output across runs.
func rankCandidates(scores []schema.CandidateScore, precedence []schema.Category) []schema.CandidateScore {
	sort.SliceStable(scores, func(i, j int) bool {
		si, sj := scores[i], scores[j]
		if si.Composite != sj.Composite {
			return si.Composite > sj.Composite
		}
		if si.GamesPlayed != sj.GamesPlayed {
			return si.GamesPlayed > sj.GamesPlayed
		}
		ri := precedenceRank(precedence, topContribution(si))
		rj := precedenceRank(precedence, topContribution(sj))
		if ri != rj {
			return ri < rj
		}
		return si.PlayerID < sj.PlayerID
	})
	return scores
}

// topContribution returns the category contributing the most to a
// candidate's composite, scanning in canonical order for determinism.
func topContribution(s schema.CandidateScore) schema.Category {
	var top schema.Category
	best := math.Inf(-1)
	for _, c := range schema.AllCategories {
		v, ok := s.Contributions[c]
		if ok && v > best {
			best = v
			top = c
		}
	}
	return top
}

// TruncateCandidates returns the top limit entries, or all entries when
// limit exceeds the slice.
func TruncateCandidates(scores []schema.CandidateScore, limit int) []schema.CandidateScore {
	if limit > 0 && len(scores) > limit {
		return scores[:limit]
	}
	return scores
}
