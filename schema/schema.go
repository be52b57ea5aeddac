// Package schema has configs, models and shared constants for all parts of frontoffice.
package schema

// StatRecord represents one player's raw per-game averages for a single
// time window, as delivered by a stats provider. Records are immutable
// once produced; a refresh cycle replaces them wholesale.
type StatRecord struct {
	PlayerID     string               `json:"player_id"`
	Window       Window               `json:"window"`
	GamesPlayed  int                  `json:"games_played"`
	Availability Availability         `json:"availability,omitempty"`
	Lines        map[Category]float64 `json:"lines"`             // absent key = value unknown, never zero
	Volumes      map[Category]float64 `json:"volumes,omitempty"` // attempts per game for rate categories
}

// StatValue is one category entry inside a CategoryVector. Known
// distinguishes a real value (zero included) from missing source data,
// so a shot-blocker's 0.0 never gets confused with "no data".
type StatValue struct {
	Value  float64 `json:"value"`
	Volume float64 `json:"volume,omitempty"` // rate categories only
	Known  bool    `json:"known"`
}

// CategoryVector maps every recognized category to a normalized value.
// Invariant: all keys in AllCategories are present; missing source data
// is an explicit unknown entry.
type CategoryVector map[Category]StatValue

// NewCategoryVector returns a vector with every recognized category
// present and marked unknown.
func NewCategoryVector() CategoryVector {
	v := make(CategoryVector, len(AllCategories))
	for _, c := range AllCategories {
		v[c] = StatValue{}
	}
	return v
}

// AllUnknown reports whether no category carries a known value.
func (v CategoryVector) AllUnknown() bool {
	for _, c := range AllCategories {
		if v[c].Known {
			return false
		}
	}
	return true
}

// PlayerVector is one entity's blended CategoryVector plus the roster
// metadata the scoring paths need.
type PlayerVector struct {
	PlayerID     string         `json:"player_id"`
	Name         string         `json:"name"`
	Positions    []Position     `json:"positions"`
	GamesPlayed  int            `json:"games_played"`
	Availability Availability   `json:"availability,omitempty"`
	Vector       CategoryVector `json:"vector"`
}

// CategoryBaseline is the league-wide mean and standard deviation for
// one category's scoring population.
type CategoryBaseline struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// LeagueBaseline maps each category to its population baseline. It is
// supplied externally per analysis run, never held as ambient state.
type LeagueBaseline map[Category]CategoryBaseline

// RiskSignal is an externally supplied indicator that a player may see
// reduced or zero playing time (injury report, shutdown candidate).
type RiskSignal struct {
	PlayerID    string   `json:"player_id"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}
