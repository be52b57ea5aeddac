package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hoopsight/frontoffice/core"
	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// requestConfig clones the base config with the common per-request
// overrides applied.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if s := request.GetString("snapshot", ""); s != "" {
		cfg.SnapshotPath = s
	}
	if t := request.GetString("team", ""); t != "" {
		cfg.TeamID = t
	}
	return cfg
}

func (h *toolHandler) handleGetTeamProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	profile, weaknesses, err := core.GetProfileResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile failed: %v", err)), nil
	}

	result := struct {
		Profile    *schema.TeamProfile     `json:"profile"`
		Weaknesses *schema.WeaknessProfile `json:"weaknesses"`
	}{Profile: profile, Weaknesses: weaknesses}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWaiverTargets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	output, err := core.GetScoutResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	result := struct {
		Weaknesses schema.WeaknessProfile          `json:"weaknesses"`
		Candidates []schema.EnrichedCandidateScore `json:"candidates"`
	}{
		Weaknesses: output.Weaknesses,
		Candidates: schema.EnrichCandidates(output.Candidates),
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEvaluateTrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	giving := splitPlayerList(request.GetString("giving", ""))
	getting := splitPlayerList(request.GetString("getting", ""))
	if len(giving) == 0 {
		return mcp.NewToolResultError("giving is required"), nil
	}
	if len(getting) == 0 {
		return mcp.NewToolResultError("getting is required"), nil
	}

	eval, err := core.GetTradeResults(ctx, cfg, h.mgr, giving, getting)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trade evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(eval, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// splitPlayerList splits a comma-separated player list, dropping empty
// entries.
func splitPlayerList(raw string) []string {
	var players []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			players = append(players, trimmed)
		}
	}
	return players
}
