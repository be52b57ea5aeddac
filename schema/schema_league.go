package schema

import "time"

// PlayerRecords bundles one player's identity with the StatRecords a
// provider delivered for each requested window.
type PlayerRecords struct {
	PlayerID  string       `json:"player_id"`
	Name      string       `json:"name"`
	Positions []Position   `json:"positions"`
	Records   []StatRecord `json:"records"`
}

// TeamSnapshot is one fantasy roster as of the snapshot time.
type TeamSnapshot struct {
	TeamID string          `json:"team_id"`
	Name   string          `json:"name"`
	Roster []PlayerRecords `json:"roster"`
}

// LeagueSnapshot is the full provider-facing input for one analysis
// run: rosters, free agents, the league baseline, and risk signals.
// The engine consumes it read-only; refreshing it is provider work.
type LeagueSnapshot struct {
	LeagueID    string          `json:"league_id"`
	MyTeamID    string          `json:"my_team_id"`
	Teams       []TeamSnapshot  `json:"teams"`
	FreeAgents  []PlayerRecords `json:"free_agents"`
	Baseline    LeagueBaseline  `json:"baseline"`
	RiskSignals []RiskSignal    `json:"risk_signals,omitempty"`
	FetchedAt   time.Time       `json:"fetched_at"`
}

// Team returns the roster snapshot for the given team id, or nil.
func (s *LeagueSnapshot) Team(teamID string) *TeamSnapshot {
	for i := range s.Teams {
		if s.Teams[i].TeamID == teamID {
			return &s.Teams[i]
		}
	}
	return nil
}

// MyTeam returns the snapshot owner's roster, or nil.
func (s *LeagueSnapshot) MyTeam() *TeamSnapshot {
	return s.Team(s.MyTeamID)
}

// FindPlayer locates a player by id or case-insensitive name across
// all rosters and the free-agent pool. The returned team id is empty
// for free agents.
func (s *LeagueSnapshot) FindPlayer(idOrName string) (PlayerRecords, string, bool) {
	for _, t := range s.Teams {
		for _, p := range t.Roster {
			if matchPlayer(p, idOrName) {
				return p, t.TeamID, true
			}
		}
	}
	for _, p := range s.FreeAgents {
		if matchPlayer(p, idOrName) {
			return p, "", true
		}
	}
	return PlayerRecords{}, "", false
}

func matchPlayer(p PlayerRecords, idOrName string) bool {
	return p.PlayerID == idOrName || equalFold(p.Name, idOrName)
}
