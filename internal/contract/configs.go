package contract

import (
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/hoopsight/frontoffice/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 15
	MaxResultLimit     = 200
	DefaultPrecision   = 2

	DefaultSeverityThreshold  = -0.5
	DefaultStrongThreshold    = 0.5
	DefaultRedundancyPenalty  = 0.35
	DefaultReliableGames      = 5
	DefaultMinReliablePlayers = 5
)

// CacheGranularity defines the time granularity for caching provider
// payloads. One bucket per hour keeps repeat scans cheap without
// serving stale lines across a game night.
const CacheGranularity = time.Hour

// DefaultWorkers is the default number of concurrent scoring workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// BlendRawInput holds window-blend overrides from the YAML config file.
// Pointers distinguish "absent" from an explicit zero.
type BlendRawInput struct {
	Week7  *float64 `mapstructure:"7d"`
	Week14 *float64 `mapstructure:"14d"`
	Season *float64 `mapstructure:"season"`
}

// MinGamesRawInput holds per-window minimum games overrides from the
// YAML config file.
type MinGamesRawInput struct {
	Week7  *int `mapstructure:"7d"`
	Week14 *int `mapstructure:"14d"`
	Season *int `mapstructure:"season"`
}

// Config holds the runtime configuration for an analysis run.
// This struct remains the "final, validated" config.
type Config struct {
	SnapshotPath string
	StatsAPIBase string
	LeagueID     string
	TeamID       string

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	BlendWeights map[schema.Window]float64
	MinGames     map[schema.Window]int

	SeverityThreshold  float64
	StrongThreshold    float64
	RedundancyPenalty  float64
	RiskSeverityCutoff schema.Severity
	Precedence         []schema.Category
	ReliableGames      int
	MinReliablePlayers int

	Detail  bool
	Explain bool
	Prompt  bool // emit the narration context instead of tables

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunBackend   schema.DatabaseBackend
	RunDBConnect string

	UseEmojis bool
	UseColors bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Snapshot       string  `mapstructure:"snapshot"`
	StatsAPI       string  `mapstructure:"stats-api"`
	League         string  `mapstructure:"league"`
	Team           string  `mapstructure:"team"`
	Limit          int     `mapstructure:"limit"`
	Workers        int     `mapstructure:"workers"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	Severity       float64 `mapstructure:"severity-threshold"`
	Strong         float64 `mapstructure:"strong-threshold"`
	Redundancy     float64 `mapstructure:"redundancy-penalty"`
	RiskCutoff     string  `mapstructure:"risk-cutoff"`
	PrecedenceStr  string  `mapstructure:"precedence"`
	ReliableGames  int     `mapstructure:"reliable-games"`
	MinReliable    int     `mapstructure:"min-reliable"`
	CacheBackend   string  `mapstructure:"cache-backend"`
	CacheDBConnect string  `mapstructure:"cache-db-connect"`
	RunBackend     string  `mapstructure:"run-backend"`
	RunDBConnect   string  `mapstructure:"run-db-connect"`
	Emoji          string  `mapstructure:"emoji"`
	Color          string  `mapstructure:"color"`

	// --- Fields from scoutCmd.Flags() ---
	Detail  bool `mapstructure:"detail"`
	Explain bool `mapstructure:"explain"`
	Prompt  bool `mapstructure:"prompt"`

	// --- Window blend overrides from config file ---
	Blend BlendRawInput `mapstructure:"blend"`

	// --- Minimum games overrides from config file ---
	MinGames MinGamesRawInput `mapstructure:"min_games"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.BlendWeights != nil {
		clone.BlendWeights = make(map[schema.Window]float64, len(c.BlendWeights))
		maps.Copy(clone.BlendWeights, c.BlendWeights)
	}
	if c.MinGames != nil {
		clone.MinGames = make(map[schema.Window]int, len(c.MinGames))
		maps.Copy(clone.MinGames, c.MinGames)
	}
	if c.Precedence != nil {
		clone.Precedence = slices.Clone(c.Precedence)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the
// raw inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := processBlend(cfg, input); err != nil {
		return err
	}
	if err := processPrecedence(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotPath = input.Snapshot
	cfg.StatsAPIBase = strings.TrimRight(input.StatsAPI, "/")
	cfg.LeagueID = input.League
	cfg.TeamID = input.Team
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Prompt = input.Prompt

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 1 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 1 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if !schema.ValidOutputModes[cfg.Output] {
		return fmt.Errorf("invalid output format %q. must be text, csv, json, parquet", input.Output)
	}

	return nil
}

// processThresholds validates the scoring thresholds and counts.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	if input.Severity >= 0 {
		return fmt.Errorf("severity-threshold must be negative, a weakness sits below the baseline (received %g)", input.Severity)
	}
	cfg.SeverityThreshold = input.Severity

	if input.Strong <= 0 {
		return fmt.Errorf("strong-threshold must be positive (received %g)", input.Strong)
	}
	cfg.StrongThreshold = input.Strong

	if input.Redundancy < 0 {
		return fmt.Errorf("redundancy-penalty cannot be negative (received %g)", input.Redundancy)
	}
	cfg.RedundancyPenalty = input.Redundancy

	cutoff := schema.Severity(strings.ToLower(input.RiskCutoff))
	if cutoff.Rank() == 0 {
		return fmt.Errorf("invalid risk-cutoff %q. must be low, medium, high", input.RiskCutoff)
	}
	cfg.RiskSeverityCutoff = cutoff

	if input.ReliableGames < 0 || input.MinReliable < 0 {
		return fmt.Errorf("reliable-games and min-reliable cannot be negative")
	}
	cfg.ReliableGames = input.ReliableGames
	cfg.MinReliablePlayers = input.MinReliable
	return nil
}

// processBlend merges default window weights and minimum games with
// config-file overrides, then checks the result is usable.
func processBlend(cfg *Config, input *ConfigRawInput) error {
	cfg.BlendWeights = map[schema.Window]float64{
		schema.Window7Day:   0.6,
		schema.Window14Day:  0.4,
		schema.WindowSeason: 0.0,
	}
	applyWeight := func(w schema.Window, v *float64) error {
		if v == nil {
			return nil
		}
		if *v < 0 {
			return fmt.Errorf("blend weight for %s cannot be negative (received %g)", w, *v)
		}
		cfg.BlendWeights[w] = *v
		return nil
	}
	if err := applyWeight(schema.Window7Day, input.Blend.Week7); err != nil {
		return err
	}
	if err := applyWeight(schema.Window14Day, input.Blend.Week14); err != nil {
		return err
	}
	if err := applyWeight(schema.WindowSeason, input.Blend.Season); err != nil {
		return err
	}

	var total float64
	for _, v := range cfg.BlendWeights {
		total += v
	}
	if total <= 0 {
		return fmt.Errorf("at least one window blend weight must be positive")
	}

	cfg.MinGames = map[schema.Window]int{
		schema.Window7Day:   3,
		schema.Window14Day:  6,
		schema.WindowSeason: 20,
	}
	applyMin := func(w schema.Window, v *int) error {
		if v == nil {
			return nil
		}
		if *v < 0 {
			return fmt.Errorf("min_games for %s cannot be negative (received %d)", w, *v)
		}
		cfg.MinGames[w] = *v
		return nil
	}
	if err := applyMin(schema.Window7Day, input.MinGames.Week7); err != nil {
		return err
	}
	if err := applyMin(schema.Window14Day, input.MinGames.Week14); err != nil {
		return err
	}
	return applyMin(schema.WindowSeason, input.MinGames.Season)
}

// processPrecedence parses the category priority list used for
// tie-breaks. Unlisted categories rank after listed ones.
func processPrecedence(cfg *Config, input *ConfigRawInput) error {
	raw := strings.TrimSpace(input.PrecedenceStr)
	if raw == "" {
		cfg.Precedence = []schema.Category{
			schema.CatBlocks, schema.CatSteals, schema.CatThreesMade,
			schema.CatAssists, schema.CatRebounds, schema.CatPoints,
			schema.CatFGPct, schema.CatFTPct, schema.CatTurnovers,
		}
		return nil
	}

	seen := make(map[schema.Category]bool)
	var precedence []schema.Category
	for part := range strings.SplitSeq(raw, ",") {
		c := schema.Category(strings.ToLower(strings.TrimSpace(part)))
		if c == "" {
			continue
		}
		if !schema.KnownCategory(c) {
			return fmt.Errorf("unknown category %q in precedence list", c)
		}
		if seen[c] {
			return fmt.Errorf("category %q listed twice in precedence list", c)
		}
		seen[c] = true
		precedence = append(precedence, c)
	}
	if len(precedence) == 0 {
		return fmt.Errorf("precedence list is empty")
	}
	cfg.Precedence = precedence
	return nil
}

// validateBackendConfigs validates cache and run-store backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if !schema.ValidDatabaseBackends[cfg.CacheBackend] {
		return fmt.Errorf("invalid cache backend %q. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if cfg.RunBackend != "" {
		if !schema.ValidDatabaseBackends[cfg.RunBackend] {
			return fmt.Errorf("invalid run backend %q. must be sqlite, mysql, postgresql, none", input.RunBackend)
		}
		cfg.RunDBConnect = input.RunDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect); err != nil {
			return err
		}

		// Cache and run tracking must not share a SQLite file.
		if cfg.CacheBackend == schema.SQLiteBackend && cfg.RunBackend == schema.SQLiteBackend {
			cachePath := cfg.CacheDBConnect
			if cachePath == "" {
				cachePath = GetCacheDBFilePath()
			}
			runPath := cfg.RunDBConnect
			if runPath == "" {
				runPath = GetRunDBFilePath()
			}
			if cachePath == runPath {
				return fmt.Errorf("cache and run storage must use different SQLite database files. Both resolve to %q", cachePath)
			}
		}
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connect string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connect string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ProcessProfilingConfig validates and applies the profiling prefix.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	if prefix == "" {
		profile.Enabled = false
		return nil
	}
	if strings.ContainsAny(prefix, " \t") {
		return fmt.Errorf("profile prefix cannot contain whitespace")
	}
	profile.Enabled = true
	profile.Prefix = prefix
	return nil
}

// ParseBoolString parses yes/no style flag values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on", "":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no, got %q", s)
	}
}
