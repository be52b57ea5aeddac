package core

import (
	"github.com/hoopsight/frontoffice/schema"
)

// TradeConfig controls trade evaluation.
type TradeConfig struct {
	// RiskSeverityCutoff is the minimum severity at which an external
	// risk signal becomes a flag on the evaluation. Flags are always
	// surfaced explicitly, never folded into the fairness number.
	RiskSeverityCutoff schema.Severity
}

// DefaultTradeConfig returns the stock trade configuration.
func DefaultTradeConfig() TradeConfig {
	return TradeConfig{RiskSeverityCutoff: schema.MediumSeverity}
}

// TradeProposal is a two-sided proposed trade with each side's current
// weakness profile. AToB holds the players side A sends to side B, BToA
// the reverse.
type TradeProposal struct {
	SideA string
	SideB string
	AToB  []schema.PlayerVector
	BToA  []schema.PlayerVector

	NeedsA schema.WeaknessProfile
	NeedsB schema.WeaknessProfile
}

// EvaluateTrade computes per-side net category deltas, a need-weighted
// fairness score, and explicit risk flags for a proposed trade.
//
// Each side's net delta is incoming minus outgoing, with rate
// categories volume-weighted the same way the profiler aggregates them.
// The fairness score judges each side's delta against that side's own
// weaknesses, so a trade is good for a side relative to what that side
// needs rather than in absolute value terms. The score is
// antisymmetric: swapping the two sides with reversed player sets
// negates it.
//
// Returns IncompleteTradeError when either player list is empty, and
// MissingBaselineError when the baseline omits a recognized category.
func EvaluateTrade(p TradeProposal, baseline schema.LeagueBaseline, risks []schema.RiskSignal, cfg TradeConfig) (schema.TradeEvaluation, error) {
	if len(p.AToB) == 0 {
		return schema.TradeEvaluation{}, &IncompleteTradeError{TeamID: p.SideA}
	}
	if len(p.BToA) == 0 {
		return schema.TradeEvaluation{}, &IncompleteTradeError{TeamID: p.SideB}
	}
	if err := checkBaseline(baseline); err != nil {
		return schema.TradeEvaluation{}, err
	}

	sideA := schema.TradeSide{
		TeamID:   p.SideA,
		Incoming: playerIDs(p.BToA),
		Outgoing: playerIDs(p.AToB),
		NetDelta: netDelta(p.BToA, p.AToB),
	}
	sideB := schema.TradeSide{
		TeamID:   p.SideB,
		Incoming: playerIDs(p.AToB),
		Outgoing: playerIDs(p.BToA),
		NetDelta: netDelta(p.AToB, p.BToA),
	}
	sideA.NeedGain = needGain(sideA.NetDelta, p.NeedsA, baseline)
	sideB.NeedGain = needGain(sideB.NetDelta, p.NeedsB, baseline)

	eval := schema.TradeEvaluation{
		SideA:    sideA,
		SideB:    sideB,
		Fairness: sideA.NeedGain - sideB.NeedGain,
	}
	eval.RiskFlags = collectRiskFlags(p, risks, cfg.RiskSeverityCutoff)
	return eval, nil
}

// playerIDs projects the vectors to their ids, preserving input order.
func playerIDs(players []schema.PlayerVector) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.PlayerID
	}
	return ids
}

// netDelta computes incoming minus outgoing per category. Counting
// categories subtract sums; rate categories subtract volume-weighted
// averages. A category with no known data on either side stays unknown
// rather than reading as a zero-impact swap.
func netDelta(incoming, outgoing []schema.PlayerVector) map[schema.Category]schema.StatValue {
	delta := make(map[schema.Category]schema.StatValue, len(schema.AllCategories))
	for _, c := range schema.AllCategories {
		var in, out schema.StatValue
		if c.IsRate() {
			in = rateAggregate(c, incoming)
			out = rateAggregate(c, outgoing)
		} else {
			in = countingSum(c, incoming)
			out = countingSum(c, outgoing)
		}
		if !in.Known && !out.Known {
			delta[c] = schema.StatValue{}
			continue
		}
		delta[c] = schema.StatValue{Value: in.Value - out.Value, Known: true}
	}
	return delta
}

// countingSum sums known values for a counting category.
func countingSum(c schema.Category, players []schema.PlayerVector) schema.StatValue {
	var total float64
	known := false
	for _, p := range players {
		sv := p.Vector[c]
		if !sv.Known {
			continue
		}
		total += sv.Value
		known = true
	}
	return schema.StatValue{Value: total, Known: known}
}

// rateAggregate volume-weights known percentages for a rate category.
func rateAggregate(c schema.Category, players []schema.PlayerVector) schema.StatValue {
	var num, den float64
	for _, p := range players {
		sv := p.Vector[c]
		if !sv.Known || sv.Volume <= 0 {
			continue
		}
		num += sv.Volume * sv.Value
		den += sv.Volume
	}
	if den == 0 {
		return schema.StatValue{}
	}
	return schema.StatValue{Value: num / den, Volume: den, Known: true}
}

// needGain weights a side's net delta by that side's own weakness
// deficits. Deltas are normalized by the baseline's spread so counting
// and rate categories combine on a comparable scale.
func needGain(delta map[schema.Category]schema.StatValue, needs schema.WeaknessProfile, baseline schema.LeagueBaseline) float64 {
	var gain float64
	for _, w := range needs.Weaknesses {
		sv, ok := delta[w.Category]
		if !ok || !sv.Known {
			continue
		}
		base := baseline[w.Category]
		if base.StdDev <= 0 {
			continue
		}
		z := directedZ(w.Category, sv.Value/base.StdDev)
		gain += z * w.Deficit
	}
	return gain
}

// collectRiskFlags surfaces every traded player carrying a risk signal
// at or above the cutoff, attached to the side receiving the player.
func collectRiskFlags(p TradeProposal, risks []schema.RiskSignal, cutoff schema.Severity) []schema.RiskFlag {
	signals := make(map[string][]schema.RiskSignal, len(risks))
	for _, r := range risks {
		signals[r.PlayerID] = append(signals[r.PlayerID], r)
	}

	var flags []schema.RiskFlag
	appendFlags := func(players []schema.PlayerVector, toTeam string) {
		for _, pl := range players {
			for _, sig := range signals[pl.PlayerID] {
				if sig.Severity.Rank() < cutoff.Rank() {
					continue
				}
				flags = append(flags, schema.RiskFlag{
					PlayerID:    sig.PlayerID,
					Severity:    sig.Severity,
					Description: sig.Description,
					ToTeam:      toTeam,
				})
			}
		}
	}
	appendFlags(p.AToB, p.SideB)
	appendFlags(p.BToA, p.SideA)
	return flags
}
