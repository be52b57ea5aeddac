package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hoopsight/frontoffice/core"
	"github.com/hoopsight/frontoffice/internal/contract"
)

// splitPlayerArg splits a comma-separated player list, dropping empty
// entries.
func splitPlayerArg(raw string) []string {
	parts := strings.Split(raw, ",")
	players := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			players = append(players, trimmed)
		}
	}
	return players
}

// tradeCmd evaluates a proposed two-sided trade.
var tradeCmd = &cobra.Command{
	Use:   "trade [snapshot-path]",
	Short: "Evaluate a proposed trade against both rosters' needs.",
	Long: `Evaluate a two-sided trade proposal category by category.

Computes the net category deltas for both rosters, weighs them against
each side's detected weaknesses, and reports a fairness score, helping
you:
- See which categories you gain and which you give up
- Catch trades that look even but gut your strengths
- Flag injured or suspended players hiding in the package
- Build a counter-offer grounded in your actual needs

Players resolve by ID or case-insensitive name. Everything you receive
must come from a single opposing roster.

Examples:
  # Evaluate a one-for-one swap
  frontoffice trade league.json --give p-gobert --get p-lavine

  # Evaluate a package deal by name
  frontoffice trade league.json --give "Rudy Gobert,Pat Bev" --get "Zach LaVine"

  # Raise the bar for risk warnings
  frontoffice trade league.json --give p-gobert --get p-lavine --risk-cutoff high

  # Build a prompt for an AI assistant instead of a verdict
  frontoffice trade league.json --give p-gobert --get p-lavine --prompt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		giving := splitPlayerArg(viper.GetString("give"))
		getting := splitPlayerArg(viper.GetString("get"))
		if len(giving) == 0 || len(getting) == 0 {
			contract.LogFatal("Cannot evaluate trade", errors.New("both --give and --get must name at least one player"))
		}
		if err := core.ExecuteTrade(rootCtx, cfg, cacheManager, giving, getting); err != nil {
			contract.LogFatal("Cannot evaluate trade", err)
		}
	},
}
