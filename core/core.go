// Package core has core logic for normalization, profiling, scoring,
// ranking, and trade evaluation.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/internal/narrate"
	"github.com/hoopsight/frontoffice/internal/outwriter"
	"github.com/hoopsight/frontoffice/internal/provider"
	"github.com/hoopsight/frontoffice/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteScout runs the full waiver scan and prints ranked candidates.
// It serves as the main entry point for the 'scout' mode.
func ExecuteScout(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	snapshot, err := loadSnapshot(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	output, err := runScoutCore(ctx, cfg, snapshot, mgr)
	if err != nil {
		return err
	}
	ranked := TruncateCandidates(output.Candidates, cfg.ResultLimit)

	if cfg.Prompt {
		return writePrompt(cfg, narrate.ScoutContext(snapshot.MyTeam(), &output.Profile, &output.Weaknesses, ranked))
	}

	duration := time.Since(start)
	return outwriter.WriteCandidateResults(ranked, &output.Weaknesses, cfg, duration)
}

// GetScoutResults runs the waiver scan and returns structured results
// instead of printing them. Agent surfaces build on this.
func GetScoutResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.ScoutOutput, error) {
	snapshot, err := loadSnapshot(ctx, cfg, mgr)
	if err != nil {
		return nil, err
	}
	output, err := runScoutCore(ctx, cfg, snapshot, mgr)
	if err != nil {
		return nil, err
	}
	output.Candidates = TruncateCandidates(output.Candidates, cfg.ResultLimit)
	return output, nil
}

// ExecuteProfile profiles the configured roster and prints its
// strengths and weaknesses. It serves as the main entry point for the
// 'profile' mode.
func ExecuteProfile(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	profile, weaknesses, err := GetProfileResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteProfileResults(profile, weaknesses, cfg)
}

// GetProfileResults profiles the configured roster and returns the
// structured results instead of printing them. Agent surfaces build on
// this.
func GetProfileResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.TeamProfile, *schema.WeaknessProfile, error) {
	snapshot, err := loadSnapshot(ctx, cfg, mgr)
	if err != nil {
		return nil, nil, err
	}
	myTeam := snapshot.MyTeam()
	roster := assembleRoster(myTeam.Roster, NormalizerFromConfig(cfg))
	profile, weaknesses, err := teamNeeds(myTeam.TeamID, roster, snapshot.Baseline, cfg)
	if err != nil {
		return nil, nil, err
	}
	return &profile, &weaknesses, nil
}

// ExecuteTrade evaluates a proposed two-sided trade and prints the
// verdict. Giving lists the players leaving the configured team,
// getting the players arriving; ids and case-insensitive names both
// resolve. It serves as the main entry point for the 'trade' mode.
func ExecuteTrade(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, giving, getting []string) error {
	snapshot, err := loadSnapshot(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	eval, err := evaluateTradeCore(ctx, cfg, snapshot, giving, getting)
	if err != nil {
		return err
	}

	if cfg.Prompt {
		return writePrompt(cfg, narrate.TradeContext(snapshot, eval))
	}
	return outwriter.WriteTradeResults(eval, cfg)
}

// GetTradeResults evaluates a trade and returns the structured result
// instead of printing it. Agent surfaces build on this.
func GetTradeResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, giving, getting []string) (*schema.TradeEvaluation, error) {
	snapshot, err := loadSnapshot(ctx, cfg, mgr)
	if err != nil {
		return nil, err
	}
	return evaluateTradeCore(ctx, cfg, snapshot, giving, getting)
}

// ExecuteMetrics displays the formal definitions of all scoring
// categories. No snapshot is read.
func ExecuteMetrics(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.PrintMetricsDefinitions(cfg)
}

// evaluateTradeCore resolves both sides of the trade, profiles each
// roster's needs, and runs the evaluator.
func evaluateTradeCore(ctx context.Context, cfg *contract.Config, snapshot *schema.LeagueSnapshot, giving, getting []string) (*schema.TradeEvaluation, error) {
	ncfg := NormalizerFromConfig(cfg)
	myTeam := snapshot.MyTeam()

	aToB, err := resolveTradePlayers(snapshot, giving, ncfg, myTeam.TeamID)
	if err != nil {
		return nil, err
	}
	bToA, otherTeamID, err := resolveIncomingPlayers(snapshot, getting, ncfg, myTeam.TeamID)
	if err != nil {
		return nil, err
	}

	otherTeam := snapshot.Team(otherTeamID)
	if otherTeam == nil {
		return nil, fmt.Errorf("team %q not found in snapshot", otherTeamID)
	}

	_, needsA, err := teamNeeds(myTeam.TeamID, assembleRoster(myTeam.Roster, ncfg), snapshot.Baseline, cfg)
	if err != nil {
		return nil, err
	}
	_, needsB, err := teamNeeds(otherTeam.TeamID, assembleRoster(otherTeam.Roster, ncfg), snapshot.Baseline, cfg)
	if err != nil {
		return nil, err
	}

	risk := provider.NewFileSnapshotProvider(cfg.SnapshotPath)
	risks, err := risk.RiskSignals(ctx)
	if err != nil {
		contract.LogWarn("Risk signals unavailable", err)
	}

	proposal := TradeProposal{
		SideA:  myTeam.TeamID,
		SideB:  otherTeam.TeamID,
		AToB:   aToB,
		BToA:   bToA,
		NeedsA: needsA,
		NeedsB: needsB,
	}
	eval, err := EvaluateTrade(proposal, snapshot.Baseline, risks, TradeFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

// resolveTradePlayers resolves outgoing players and verifies each one
// is on the expected roster.
func resolveTradePlayers(snapshot *schema.LeagueSnapshot, idsOrNames []string, ncfg NormalizerConfig, expectTeam string) ([]schema.PlayerVector, error) {
	players := make([]schema.PlayerVector, 0, len(idsOrNames))
	for _, id := range idsOrNames {
		p, teamID, ok := snapshot.FindPlayer(id)
		if !ok {
			return nil, fmt.Errorf("player %q not found in snapshot", id)
		}
		if teamID != expectTeam {
			return nil, fmt.Errorf("player %q is not on team %q", id, expectTeam)
		}
		players = append(players, tradeVector(p, ncfg))
	}
	return players, nil
}

// resolveIncomingPlayers resolves incoming players and derives the
// counterparty team, requiring all of them to come from one roster.
func resolveIncomingPlayers(snapshot *schema.LeagueSnapshot, idsOrNames []string, ncfg NormalizerConfig, myTeam string) ([]schema.PlayerVector, string, error) {
	players := make([]schema.PlayerVector, 0, len(idsOrNames))
	otherTeam := ""
	for _, id := range idsOrNames {
		p, teamID, ok := snapshot.FindPlayer(id)
		if !ok {
			return nil, "", fmt.Errorf("player %q not found in snapshot", id)
		}
		if teamID == "" {
			return nil, "", fmt.Errorf("player %q is a free agent, not trade material", id)
		}
		if teamID == myTeam {
			return nil, "", fmt.Errorf("player %q is already on team %q", id, myTeam)
		}
		if otherTeam == "" {
			otherTeam = teamID
		} else if teamID != otherTeam {
			return nil, "", fmt.Errorf("incoming players span teams %q and %q; trades are two-sided", otherTeam, teamID)
		}
		players = append(players, tradeVector(p, ncfg))
	}
	return players, otherTeam, nil
}

// tradeVector blends a traded player, degrading to an all-unknown
// vector when no window is usable so the delta reads unknown instead
// of dropping the player.
func tradeVector(p schema.PlayerRecords, ncfg NormalizerConfig) schema.PlayerVector {
	pv, err := buildPlayerVector(p, ncfg)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("No usable data for traded player %s", p.PlayerID), err)
		return schema.PlayerVector{
			PlayerID:     p.PlayerID,
			Name:         p.Name,
			Positions:    p.Positions,
			Availability: playerAvailability(p.Records),
			Vector:       schema.NewCategoryVector(),
		}
	}
	return pv
}

// writePrompt writes a narration context to the configured output file
// or stdout.
func writePrompt(cfg *contract.Config, prompt string) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}
	_, err = io.WriteString(file, prompt)
	return err
}
