package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hoopsight/frontoffice/core"
	"github.com/hoopsight/frontoffice/internal/contract"
)

// profileCmd profiles a single roster against the league baseline.
var profileCmd = &cobra.Command{
	Use:   "profile [snapshot-path]",
	Short: "Show your roster's category standings and ranked weaknesses.",
	Long: `Profile a roster category by category against the league baseline.

Aggregates every rostered player's blended production into team-level
z-scores, then ranks the categories you are losing, helping you:
- See exactly which categories cost you matchups
- Separate real weaknesses from small-sample noise
- Track how streaming and injuries shift your standings
- Decide whether to punt a category or patch it

Examples:
  # Profile the snapshot's configured team
  frontoffice profile league.json

  # Profile a rival roster
  frontoffice profile league.json --team team-raptors

  # Tighten what counts as weak
  frontoffice profile league.json --severity-threshold -0.25

  # Export the profile for a spreadsheet
  frontoffice profile league.json --output csv --output-file profile.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run profile", err)
		}
	},
}
