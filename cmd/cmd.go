// Package cmd defines the command-line interface for frontoffice.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoutCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(tradeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-candidate metadata (games played, penalties, availability)")
	rootCmd.PersistentFlags().Bool("explain", false, "Print per-candidate category contribution breakdown")
	rootCmd.PersistentFlags().Bool("prompt", false, "Emit an analysis prompt for an AI assistant instead of a table")
	rootCmd.PersistentFlags().StringP("snapshot", "s", "", "Path to the league snapshot JSON file")
	rootCmd.PersistentFlags().String("stats-api", "", "Base URL for a live stats API (optional)")
	rootCmd.PersistentFlags().String("league", "", "League identifier override")
	rootCmd.PersistentFlags().StringP("team", "t", "", "Team identifier to analyze (defaults to the snapshot's my_team_id)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent scoring workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Float64("severity-threshold", contract.DefaultSeverityThreshold, "Z-score at or below which a category counts as weak")
	rootCmd.PersistentFlags().Float64("strong-threshold", contract.DefaultStrongThreshold, "Z-score at or above which a category counts as strong")
	rootCmd.PersistentFlags().Float64("redundancy-penalty", contract.DefaultRedundancyPenalty, "Per-overlap penalty for positions the roster already covers")
	rootCmd.PersistentFlags().String("risk-cutoff", string(schema.MediumSeverity), "Minimum severity for trade risk signals: low or medium or high")
	rootCmd.PersistentFlags().String("precedence", "", "Comma-separated category order for tie-breaking (e.g., 'blk,stl,3pm')")
	rootCmd.PersistentFlags().Int("reliable-games", contract.DefaultReliableGames, "Games played in a window before its stats count as reliable")
	rootCmd.PersistentFlags().Int("min-reliable", contract.DefaultMinReliablePlayers, "Reliable players required for a category to be ranked with confidence")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("run-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emoji in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of tradeCmd to Viper
	tradeCmd.Flags().String("give", "", "Comma-separated player IDs or names leaving your roster")
	tradeCmd.Flags().String("get", "", "Comma-separated player IDs or names joining your roster")
	if err := viper.BindPFlags(tradeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trade flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
