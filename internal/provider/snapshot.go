// Package provider loads league data from snapshot files and remote
// stats APIs.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// FileSnapshotProvider reads a full league snapshot from a local JSON
// file. It is the default provider: a snapshot file is cheap to export
// from league hosts and keeps analysis runs reproducible.
type FileSnapshotProvider struct {
	Path string
}

var _ contract.SnapshotProvider = &FileSnapshotProvider{} // Compile-time check
var _ contract.BaselineProvider = &FileSnapshotProvider{} // Compile-time check
var _ contract.RiskProvider = &FileSnapshotProvider{}     // Compile-time check

// NewFileSnapshotProvider returns a provider backed by the given file.
func NewFileSnapshotProvider(path string) *FileSnapshotProvider {
	return &FileSnapshotProvider{Path: path}
}

// LeagueSnapshot reads and validates the snapshot file.
func (p *FileSnapshotProvider) LeagueSnapshot(ctx context.Context) (*schema.LeagueSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %q: %w", p.Path, err)
	}

	var snapshot schema.LeagueSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %q: %w", p.Path, err)
	}

	if err := validateSnapshot(&snapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot file %q: %w", p.Path, err)
	}

	return &snapshot, nil
}

// LeagueBaseline returns the baseline embedded in the snapshot.
func (p *FileSnapshotProvider) LeagueBaseline(ctx context.Context) (schema.LeagueBaseline, error) {
	snapshot, err := p.LeagueSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Baseline, nil
}

// RiskSignals returns the risk signals embedded in the snapshot.
func (p *FileSnapshotProvider) RiskSignals(ctx context.Context) ([]schema.RiskSignal, error) {
	snapshot, err := p.LeagueSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.RiskSignals, nil
}

// validateSnapshot checks the structural invariants the engine relies on.
func validateSnapshot(s *schema.LeagueSnapshot) error {
	if len(s.Teams) == 0 {
		return fmt.Errorf("snapshot has no teams")
	}
	if s.MyTeamID != "" && s.Team(s.MyTeamID) == nil {
		return fmt.Errorf("my_team_id %q does not match any team", s.MyTeamID)
	}
	if len(s.Baseline) == 0 {
		return fmt.Errorf("snapshot has no league baseline")
	}
	for c, b := range s.Baseline {
		if !schema.KnownCategory(c) {
			return fmt.Errorf("baseline has unknown category %q", c)
		}
		if b.StdDev <= 0 {
			return fmt.Errorf("baseline std_dev for %s must be positive (got %g)", c, b.StdDev)
		}
	}

	seen := make(map[string]string)
	for _, t := range s.Teams {
		if t.TeamID == "" {
			return fmt.Errorf("team %q has no team_id", t.Name)
		}
		for _, player := range t.Roster {
			if player.PlayerID == "" {
				return fmt.Errorf("player %q on team %s has no player_id", player.Name, t.TeamID)
			}
			if owner, ok := seen[player.PlayerID]; ok {
				return fmt.Errorf("player %s appears on both %s and %s", player.PlayerID, owner, t.TeamID)
			}
			seen[player.PlayerID] = t.TeamID
		}
	}
	for _, player := range s.FreeAgents {
		if owner, ok := seen[player.PlayerID]; ok {
			return fmt.Errorf("player %s is both a free agent and on %s", player.PlayerID, owner)
		}
		seen[player.PlayerID] = "free agency"
	}

	return nil
}
