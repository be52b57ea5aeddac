package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hoopsight/frontoffice/core"
	"github.com/hoopsight/frontoffice/internal/contract"
)

// metricsCmd displays the formal definitions of all scoring categories.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display category definitions, blend weights, and label buckets",
	Long: `Show the formal definitions behind every number frontoffice prints.

Provides complete transparency into how players are ranked, including:
- Each category's kind (counting or rate) and direction
- The recency-window blend weights in effect
- The composite-score buckets behind each label

No snapshot is read. This is purely informational.

Use this to:
- Understand what each category measures
- Explain the rankings to your league mates
- Validate custom blend weights from .frontoffice.yaml
- Document scoring methodology

Examples:
  # Show default definitions
  frontoffice metrics

  # View with custom blend weights from config file
  frontoffice metrics --config .frontoffice.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
