package schema

// ScoutOutput bundles the results of one scout run: the roster profile,
// its weakness ranking, and the full scored candidate pool.
type ScoutOutput struct {
	Profile    TeamProfile      `json:"profile"`
	Weaknesses WeaknessProfile  `json:"weaknesses"`
	Candidates []CandidateScore `json:"candidates"`
}

// EnrichedCandidateScore adds presentation data to a CandidateScore.
type EnrichedCandidateScore struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	CandidateScore
}

// EnrichedWeakness adds presentation data to a Weakness.
type EnrichedWeakness struct {
	Rank int `json:"rank"`
	Weakness
}

// EnrichCandidates attaches rank and label presentation fields to a
// ranked candidate slice. The input order is preserved.
func EnrichCandidates(ranked []CandidateScore) []EnrichedCandidateScore {
	enriched := make([]EnrichedCandidateScore, len(ranked))
	for i, c := range ranked {
		enriched[i] = EnrichedCandidateScore{
			Rank:           i + 1,
			Label:          GetPlainLabel(c.Composite),
			CandidateScore: c,
		}
	}
	return enriched
}

// EnrichWeaknesses attaches rank presentation fields to an ordered
// weakness slice.
func EnrichWeaknesses(ordered []Weakness) []EnrichedWeakness {
	enriched := make([]EnrichedWeakness, len(ordered))
	for i, w := range ordered {
		enriched[i] = EnrichedWeakness{Rank: i + 1, Weakness: w}
	}
	return enriched
}

// CategoryDefinition describes one scoring category for display.
type CategoryDefinition struct {
	Name      Category `json:"name"`
	Kind      string   `json:"kind"`
	Direction string   `json:"direction"`
	Purpose   string   `json:"purpose"`
}

// MetricsRenderModel holds the processed category definitions ready for
// rendering in any output format.
type MetricsRenderModel struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Categories  []CategoryDefinition `json:"categories"`
	Blend       map[Window]float64   `json:"blend"`
	Labels      map[string]float64   `json:"labels"`
}

// Scoring label constants.
const (
	PrimeValue    = "Prime"    // Clear add that fills a top need
	StrongValue   = "Strong"   // Solid add
	UsefulValue   = "Useful"   // Situational add
	MarginalValue = "Marginal" // Unlikely to move a category
)

// GetPlainLabel returns a plain text label bucketing a composite score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 3.0:
		return PrimeValue
	case score >= 1.5:
		return StrongValue
	case score >= 0.5:
		return UsefulValue
	default:
		return MarginalValue
	}
}
