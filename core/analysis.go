package core

import (
	"context"
	"fmt"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/internal/provider"
	"github.com/hoopsight/frontoffice/schema"
)

// NormalizerFromConfig adapts the resolved CLI configuration to the
// normalizer's engine configuration.
func NormalizerFromConfig(cfg *contract.Config) NormalizerConfig {
	return NormalizerConfig{
		BlendWeights: cfg.BlendWeights,
		MinGames:     cfg.MinGames,
	}
}

// ProfilerFromConfig adapts the resolved CLI configuration to the
// profiler's engine configuration.
func ProfilerFromConfig(cfg *contract.Config) ProfilerConfig {
	return ProfilerConfig{
		ReliableGames:      cfg.ReliableGames,
		MinReliablePlayers: cfg.MinReliablePlayers,
	}
}

// DetectorFromConfig adapts the resolved CLI configuration to the
// weakness detector's engine configuration.
func DetectorFromConfig(cfg *contract.Config) DetectorConfig {
	return DetectorConfig{
		SeverityThreshold: cfg.SeverityThreshold,
		Precedence:        cfg.Precedence,
	}
}

// ScorerFromConfig adapts the resolved CLI configuration to the
// candidate scorer's engine configuration.
func ScorerFromConfig(cfg *contract.Config) ScorerConfig {
	return ScorerConfig{
		RedundancyPenalty: cfg.RedundancyPenalty,
		StrongThreshold:   cfg.StrongThreshold,
		Precedence:        cfg.Precedence,
	}
}

// TradeFromConfig adapts the resolved CLI configuration to the trade
// evaluator's engine configuration.
func TradeFromConfig(cfg *contract.Config) TradeConfig {
	return TradeConfig{RiskSeverityCutoff: cfg.RiskSeverityCutoff}
}

// loadSnapshot reads the league snapshot and optionally refreshes every
// player's stat records from the configured stats API.
func loadSnapshot(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.LeagueSnapshot, error) {
	snap := provider.NewFileSnapshotProvider(cfg.SnapshotPath)
	snapshot, err := snap.LeagueSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.TeamID != "" {
		snapshot.MyTeamID = cfg.TeamID
	}
	if snapshot.MyTeam() == nil {
		return nil, fmt.Errorf("team %q not found in snapshot", snapshot.MyTeamID)
	}
	if cfg.StatsAPIBase != "" {
		refreshSnapshotStats(ctx, cfg, snapshot, mgr)
	}
	return snapshot, nil
}

// refreshSnapshotStats replaces each player's stat records with fresh
// ones from the stats API. Failures degrade to the snapshot's records
// with a warning so one flaky player never sinks a whole scan.
func refreshSnapshotStats(ctx context.Context, cfg *contract.Config, snapshot *schema.LeagueSnapshot, mgr contract.CacheManager) {
	var cache contract.CacheStore
	if mgr != nil {
		cache = mgr.GetRecordStore()
	}
	var stats contract.StatsProvider = provider.NewStatsClient(cfg.StatsAPIBase, cache)

	refresh := func(p *schema.PlayerRecords) {
		records, err := stats.PlayerRecords(ctx, p.PlayerID, schema.AllWindows)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Stats refresh failed for %s", p.PlayerID), err)
			return
		}
		if len(records) > 0 {
			p.Records = records
		}
	}

	for i := range snapshot.Teams {
		for j := range snapshot.Teams[i].Roster {
			refresh(&snapshot.Teams[i].Roster[j])
		}
	}
	for i := range snapshot.FreeAgents {
		refresh(&snapshot.FreeAgents[i])
	}
}

// buildPlayerVector blends one player's records into a single vector.
// A player with no usable window propagates DataQualityError.
func buildPlayerVector(p schema.PlayerRecords, ncfg NormalizerConfig) (schema.PlayerVector, error) {
	vector, games, err := Blend(p.PlayerID, p.Records, ncfg)
	if err != nil {
		return schema.PlayerVector{}, err
	}
	return schema.PlayerVector{
		PlayerID:     p.PlayerID,
		Name:         p.Name,
		Positions:    p.Positions,
		GamesPlayed:  games,
		Availability: playerAvailability(p.Records),
		Vector:       vector,
	}, nil
}

// playerAvailability picks the most recent window's availability.
func playerAvailability(records []schema.StatRecord) schema.Availability {
	for _, w := range schema.AllWindows {
		for _, r := range records {
			if r.Window == w && r.Availability != "" {
				return r.Availability
			}
		}
	}
	return schema.UnknownStatus
}

// assembleRoster blends a roster into player vectors. Players with no
// usable data are skipped with a warning; a roster hole must not sink
// the whole profile.
func assembleRoster(players []schema.PlayerRecords, ncfg NormalizerConfig) []schema.PlayerVector {
	roster := make([]schema.PlayerVector, 0, len(players))
	for _, p := range players {
		pv, err := buildPlayerVector(p, ncfg)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping roster player %s", p.PlayerID), err)
			continue
		}
		roster = append(roster, pv)
	}
	return roster
}

// assembleCandidates blends the free-agent pool into player vectors.
// Unlike roster assembly, players with no usable data stay in the pool
// with an all-unknown vector so they surface at the bottom of the
// ranking with a caveat instead of silently vanishing.
func assembleCandidates(players []schema.PlayerRecords, ncfg NormalizerConfig) []schema.PlayerVector {
	candidates := make([]schema.PlayerVector, 0, len(players))
	for _, p := range players {
		pv, err := buildPlayerVector(p, ncfg)
		if err != nil {
			pv = schema.PlayerVector{
				PlayerID:     p.PlayerID,
				Name:         p.Name,
				Positions:    p.Positions,
				Availability: playerAvailability(p.Records),
				Vector:       schema.NewCategoryVector(),
			}
		}
		candidates = append(candidates, pv)
	}
	return candidates
}

// teamNeeds profiles one roster and derives its weakness ranking.
func teamNeeds(teamID string, roster []schema.PlayerVector, baseline schema.LeagueBaseline, cfg *contract.Config) (schema.TeamProfile, schema.WeaknessProfile, error) {
	profile, err := BuildTeamProfile(teamID, roster, baseline, ProfilerFromConfig(cfg))
	if err != nil {
		return schema.TeamProfile{}, schema.WeaknessProfile{}, err
	}
	weaknesses := DetectWeaknesses(profile, DetectorFromConfig(cfg))
	return profile, weaknesses, nil
}

// runScoutCore performs the shared profile, detect, and score steps.
func runScoutCore(ctx context.Context, cfg *contract.Config, snapshot *schema.LeagueSnapshot, mgr contract.CacheManager) (*schema.ScoutOutput, error) {
	// --- 0. Begin run tracking (if configured) ---
	var runID int64
	var runStore contract.RunStore
	if mgr != nil {
		runStore = mgr.GetRunStore()
	}
	if runStore != nil {
		configParams := map[string]any{
			"snapshot":     cfg.SnapshotPath,
			"team":         snapshot.MyTeamID,
			"workers":      cfg.Workers,
			"result_limit": cfg.ResultLimit,
		}
		var err error
		runID, err = runStore.BeginRun(configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	ncfg := NormalizerFromConfig(cfg)

	// --- 1. Profile the roster ---
	myTeam := snapshot.MyTeam()
	roster := assembleRoster(myTeam.Roster, ncfg)
	profile, weaknesses, err := teamNeeds(myTeam.TeamID, roster, snapshot.Baseline, cfg)
	if err != nil {
		return nil, err
	}
	comp := BuildRosterComposition(roster, snapshot.Baseline, cfg.StrongThreshold)

	// --- 2. Score the free-agent pool ---
	candidates := assembleCandidates(snapshot.FreeAgents, ncfg)
	scores, err := ScoreCandidatesParallel(ctx, candidates, weaknesses, snapshot.Baseline, comp, ScorerFromConfig(cfg), cfg.Workers)
	if err != nil {
		return nil, err
	}

	// --- 3. End run tracking ---
	if runStore != nil && runID > 0 {
		for _, s := range scores {
			if err := runStore.RecordCandidateScore(runID, s); err != nil {
				contract.LogWarn(fmt.Sprintf("Failed to record score for %s", s.PlayerID), err)
			}
		}
		if err := runStore.EndRun(runID, len(scores)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return &schema.ScoutOutput{
		Profile:    profile,
		Weaknesses: weaknesses,
		Candidates: scores,
	}, nil
}
