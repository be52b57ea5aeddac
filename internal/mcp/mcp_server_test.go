package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/internal/contract"
	mcp_internal "github.com/hoopsight/frontoffice/internal/mcp"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		SnapshotPath: "missing-snapshot.json",
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("evaluate_trade missing giving", func(t *testing.T) {
		tool := s.GetTool("evaluate_trade")
		require.NotNil(t, tool, "Tool evaluate_trade should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "evaluate_trade",
				Arguments: map[string]any{
					"giving":  "", // Missing required
					"getting": "p1",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "giving is required")
	})

	t.Run("evaluate_trade missing getting", func(t *testing.T) {
		tool := s.GetTool("evaluate_trade")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "evaluate_trade",
				Arguments: map[string]any{
					"giving":  "p1",
					"getting": " , ", // Only separators
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "getting is required")
	})

	t.Run("get_team_profile missing snapshot file", func(t *testing.T) {
		tool := s.GetTool("get_team_profile")
		require.NotNil(t, tool, "Tool get_team_profile should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_team_profile",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "profile failed")
	})
}
