package schema

// CandidateScore is one free agent's composite score against a
// WeaknessProfile. Ephemeral, recomputed per scan.
type CandidateScore struct {
	PlayerID          string               `json:"player_id"`
	Name              string               `json:"name"`
	Positions         []Position           `json:"positions"`
	GamesPlayed       int                  `json:"games_played"`
	Availability      Availability         `json:"availability,omitempty"`
	Composite         float64              `json:"composite"`
	Contributions     map[Category]float64 `json:"contributions"` // per-category breakdown for --explain
	RedundancyPenalty float64              `json:"redundancy_penalty"`
	DataCaveat        bool                 `json:"data_caveat,omitempty"` // no usable category data
}

// TradeSide is one team's half of a proposed trade.
type TradeSide struct {
	TeamID   string                 `json:"team_id"`
	Incoming []string               `json:"incoming"` // player ids entering this roster
	Outgoing []string               `json:"outgoing"` // player ids leaving this roster
	NetDelta map[Category]StatValue `json:"net_delta"`
	NeedGain float64                `json:"need_gain"` // delta weighted by this side's own weaknesses
}

// RiskFlag surfaces an external risk signal attached to a trade
// evaluation. Flags are never folded into the numeric score.
type RiskFlag struct {
	PlayerID    string   `json:"player_id"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	ToTeam      string   `json:"to_team"` // side receiving the flagged player
}

// TradeEvaluation is the structured verdict for a two-sided trade.
// Fairness is antisymmetric: positive favors side A's needs, negative
// side B's, and swapping the sides negates it.
type TradeEvaluation struct {
	SideA     TradeSide  `json:"side_a"`
	SideB     TradeSide  `json:"side_b"`
	Fairness  float64    `json:"fairness"`
	RiskFlags []RiskFlag `json:"risk_flags,omitempty"`
}
