package core

import (
	"github.com/hoopsight/frontoffice/schema"
)

// NormalizerConfig controls how raw stat windows blend into a single
// vector. Weights and minimums are external configuration, not policy.
type NormalizerConfig struct {
	// BlendWeights maps each window to its share of the blended vector.
	BlendWeights map[schema.Window]float64

	// MinGames is the games-played count at which a window reaches full
	// weight. Below it the window's contribution ramps down linearly
	// instead of dropping out, so a player crossing the threshold between
	// scans does not jump in the rankings.
	MinGames map[schema.Window]int
}

// Default blend configuration. Recent form dominates, the 14-day window
// dampens one hot week, season-long data is opt-in via config.
const (
	defaultBlend7Day   = 0.6
	defaultBlend14Day  = 0.4
	defaultBlendSeason = 0.0

	defaultMinGames7Day   = 3
	defaultMinGames14Day  = 6
	defaultMinGamesSeason = 20
)

// DefaultNormalizerConfig returns the stock blend configuration.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		BlendWeights: map[schema.Window]float64{
			schema.Window7Day:   defaultBlend7Day,
			schema.Window14Day:  defaultBlend14Day,
			schema.WindowSeason: defaultBlendSeason,
		},
		MinGames: map[schema.Window]int{
			schema.Window7Day:   defaultMinGames7Day,
			schema.Window14Day:  defaultMinGames14Day,
			schema.WindowSeason: defaultMinGamesSeason,
		},
	}
}

// reliabilityRamp returns the continuous down-weight factor for a window
// with the given games played.
func reliabilityRamp(gamesPlayed, minGames int) float64 {
	if minGames <= 0 {
		return 1
	}
	return clamp01(float64(gamesPlayed) / float64(minGames))
}

// vectorFromRecord converts one StatRecord into a CategoryVector.
// Absent categories stay unknown; a rate category with no recorded
// volume keeps Volume zero so denominator-based aggregates exclude it.
func vectorFromRecord(r schema.StatRecord) schema.CategoryVector {
	v := schema.NewCategoryVector()
	for _, c := range schema.AllCategories {
		raw, ok := r.Lines[c]
		if !ok {
			continue
		}
		sv := schema.StatValue{Value: raw, Known: true}
		if c.IsRate() {
			sv.Volume = r.Volumes[c]
		}
		v[c] = sv
	}
	return v
}

// NormalizeWindows converts an entity's StatRecords into one
// CategoryVector per window. Pure function of its inputs.
func NormalizeWindows(records []schema.StatRecord) map[schema.Window]schema.CategoryVector {
	out := make(map[schema.Window]schema.CategoryVector, len(records))
	for _, r := range records {
		out[r.Window] = vectorFromRecord(r)
	}
	return out
}

// Blend combines an entity's windows into a single vector under the
// configured weighting, applying the reliability ramp per window.
// The returned games count is the deepest window's games played, for
// use as a trustworthiness tie-break downstream.
//
// Returns DataQualityError when the entity has zero valid windows
// (no record with at least one game played).
func Blend(playerID string, records []schema.StatRecord, cfg NormalizerConfig) (schema.CategoryVector, int, error) {
	var windows []weightedVector
	var fallback []weightedVector // ramp-weight escape hatch when configured weights zero out
	games := 0

	for _, w := range schema.AllWindows {
		rec, ok := findRecord(records, w)
		if !ok || rec.GamesPlayed <= 0 {
			continue
		}
		if rec.GamesPlayed > games {
			games = rec.GamesPlayed
		}
		vec := vectorFromRecord(rec)
		ramp := reliabilityRamp(rec.GamesPlayed, cfg.MinGames[w])
		fallback = append(fallback, weightedVector{vec: vec, weight: ramp})
		if eff := cfg.BlendWeights[w] * ramp; eff > 0 {
			windows = append(windows, weightedVector{vec: vec, weight: eff})
		}
	}

	if len(fallback) == 0 {
		return nil, 0, &DataQualityError{PlayerID: playerID}
	}
	// All valid windows carry zero configured weight (e.g. season-only
	// data with a recency-only blend). Falling back to the ramp weights
	// keeps real data in play instead of erroring out.
	if len(windows) == 0 {
		windows = fallback
	}

	blended := schema.NewCategoryVector()
	for _, c := range schema.AllCategories {
		if c.IsRate() {
			blended[c] = blendRate(c, windows)
		} else {
			blended[c] = blendCounting(c, windows)
		}
	}
	return blended, games, nil
}

// weightedVector pairs one window's vector with its effective weight.
type weightedVector struct {
	vec    schema.CategoryVector
	weight float64
}

// blendCounting computes the weighted average of a counting category
// across windows, skipping unknown entries.
func blendCounting(c schema.Category, windows []weightedVector) schema.StatValue {
	var sum, weight float64
	for _, w := range windows {
		sv := w.vec[c]
		if !sv.Known {
			continue
		}
		sum += w.weight * sv.Value
		weight += w.weight
	}
	if weight == 0 {
		return schema.StatValue{}
	}
	return schema.StatValue{Value: sum / weight, Known: true}
}

// blendRate computes the volume-weighted average of a rate category
// across windows. Windows with unknown values or zero volume are
// excluded from the denominator rather than treated as zero attempts.
func blendRate(c schema.Category, windows []weightedVector) schema.StatValue {
	var num, den, volNum, volDen float64
	for _, w := range windows {
		sv := w.vec[c]
		if !sv.Known || sv.Volume <= 0 {
			continue
		}
		num += w.weight * sv.Volume * sv.Value
		den += w.weight * sv.Volume
		volNum += w.weight * sv.Volume
		volDen += w.weight
	}
	if den == 0 {
		return schema.StatValue{}
	}
	return schema.StatValue{Value: num / den, Volume: volNum / volDen, Known: true}
}

// findRecord returns the first record for the given window.
func findRecord(records []schema.StatRecord, w schema.Window) (schema.StatRecord, bool) {
	for _, r := range records {
		if r.Window == w {
			return r, true
		}
	}
	return schema.StatRecord{}, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
