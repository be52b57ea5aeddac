// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hoopsight/frontoffice/internal/contract"
)

// NewMCPServer initializes and configures the frontoffice MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Frontoffice Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_team_profile ---
	s.AddTool(mcp.NewTool("get_team_profile",
		mcp.WithDescription("Profile a fantasy roster's per-category strengths and ranked weaknesses against the league baseline."),
		mcp.WithString("snapshot", mcp.Description("Path to the league snapshot file (defaults to the configured snapshot).")),
		mcp.WithString("team", mcp.Description("Team id to profile (defaults to the snapshot owner's team).")),
	), h.handleGetTeamProfile)

	// --- 2. Tool: get_waiver_targets ---
	s.AddTool(mcp.NewTool("get_waiver_targets",
		mcp.WithDescription("Scan the free-agent pool and rank pickups by how well they address the roster's weak categories."),
		mcp.WithString("snapshot", mcp.Description("Path to the league snapshot file.")),
		mcp.WithString("team", mcp.Description("Team id to scan for (defaults to the snapshot owner's team).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked candidates returned.")),
	), h.handleGetWaiverTargets)

	// --- 3. Tool: evaluate_trade ---
	s.AddTool(mcp.NewTool("evaluate_trade",
		mcp.WithDescription("Evaluate a proposed two-sided trade: per-category net deltas, a need-weighted fairness score, and risk flags."),
		mcp.WithString("giving", mcp.Description("Comma-separated players leaving the configured team (ids or names)."), mcp.Required()),
		mcp.WithString("getting", mcp.Description("Comma-separated players arriving (ids or names)."), mcp.Required()),
		mcp.WithString("snapshot", mcp.Description("Path to the league snapshot file.")),
		mcp.WithString("team", mcp.Description("Team id proposing the trade (defaults to the snapshot owner's team).")),
	), h.handleEvaluateTrade)

	return s
}

// StartMCPServer starts the frontoffice MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
