package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hoopsight/frontoffice/core"
	"github.com/hoopsight/frontoffice/internal/contract"
)

// scoutCmd performs a full waiver-wire scan.
var scoutCmd = &cobra.Command{
	Use:   "scout [snapshot-path]",
	Short: "Rank free agents by how well they patch your weak categories.",
	Long: `Scan every free agent in the snapshot and rank them by weakness fit.

Profiles your roster against the league baseline, detects your weak
categories, then scores each available player by how much of that
deficit they would recover, helping you:
- Find the pickup that actually moves your standings
- Avoid redundant adds at positions you already cover
- Spot injured or suspended players before you claim them
- See which targets are ranked on thin data

Examples:
  # Scan the league snapshot with defaults
  frontoffice scout league.json

  # Show more targets with per-category breakdowns
  frontoffice scout league.json --limit 25 --explain

  # Include games played, penalties, and availability
  frontoffice scout league.json --detail

  # Export findings to CSV for tracking
  frontoffice scout league.json --output csv --output-file targets.csv

  # Build a prompt for an AI assistant instead of a table
  frontoffice scout league.json --prompt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScout(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run scout scan", err)
		}
	},
}
