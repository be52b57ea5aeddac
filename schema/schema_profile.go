package schema

// CategoryStrength is one category's team-level standing against the
// league baseline.
type CategoryStrength struct {
	ZScore        float64    `json:"z_score"`
	TeamValue     float64    `json:"team_value"`
	ReliableCount int        `json:"reliable_count"` // roster players with trustworthy data
	Confidence    Confidence `json:"confidence"`
}

// TeamProfile aggregates a roster's CategoryVectors into per-category
// strength scores. It lives for one analysis run only; persistence, if
// any, belongs to an external store.
type TeamProfile struct {
	TeamID     string                        `json:"team_id"`
	RosterSize int                           `json:"roster_size"`
	Strengths  map[Category]CategoryStrength `json:"strengths"`
}

// Strong reports whether the category's z-score is at or above the
// given threshold with usable confidence.
func (p TeamProfile) Strong(c Category, threshold float64) bool {
	s, ok := p.Strengths[c]
	return ok && s.Confidence != LowConfidence && s.ZScore >= threshold
}

// Weakness is one underperforming category with its deficit magnitude
// (how far below the baseline the roster sits, positive = worse).
type Weakness struct {
	Category Category `json:"category"`
	Deficit  float64  `json:"deficit"`
	ZScore   float64  `json:"z_score"`
}

// WeaknessProfile is the ordered weakness ranking for one roster, most
// severe first. LowConfidence lists categories excluded from the primary
// ranking for lack of data, so callers can surface them with a caveat.
type WeaknessProfile struct {
	TeamID        string     `json:"team_id"`
	Weaknesses    []Weakness `json:"weaknesses"`
	LowConfidence []Category `json:"low_confidence,omitempty"`
}

// Deficit returns the deficit magnitude for a category, or zero when
// the category is not in the weakness ranking.
func (w WeaknessProfile) DeficitFor(c Category) float64 {
	for _, wk := range w.Weaknesses {
		if wk.Category == c {
			return wk.Deficit
		}
	}
	return 0
}

// RosterComposition records, per position, the categories the roster is
// already strong in at that position. The redundancy penalty consults it
// so a second shot-blocking center does not outrank a need-filling guard.
type RosterComposition map[Position][]Category

// Covered reports whether the position already has roster strength in
// the given category.
func (rc RosterComposition) Covered(pos Position, c Category) bool {
	for _, have := range rc[pos] {
		if have == c {
			return true
		}
	}
	return false
}
