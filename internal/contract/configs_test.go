package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/schema"
)

// validInput returns a raw input that passes every validation step.
// Tests mutate the fields they care about.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Snapshot:      "league.json",
		Limit:         DefaultResultLimit,
		Workers:       4,
		Precision:     DefaultPrecision,
		Output:        "text",
		Severity:      DefaultSeverityThreshold,
		Strong:        DefaultStrongThreshold,
		Redundancy:    DefaultRedundancyPenalty,
		RiskCutoff:    string(schema.MediumSeverity),
		ReliableGames: DefaultReliableGames,
		MinReliable:   DefaultMinReliablePlayers,
		CacheBackend:  string(schema.NoneBackend),
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(_ *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "limit of zero",
			mutate:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: true,
		},
		{
			name:        "limit above maximum",
			mutate:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: true,
		},
		{
			name:        "zero workers",
			mutate:      func(in *ConfigRawInput) { in.Workers = 0 },
			expectError: true,
		},
		{
			name:        "precision out of range",
			mutate:      func(in *ConfigRawInput) { in.Precision = 5 },
			expectError: true,
		},
		{
			name:        "invalid output format",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "uppercase output format is accepted",
			mutate:      func(in *ConfigRawInput) { in.Output = "JSON" },
			expectError: false,
		},
		{
			name:        "severity threshold must be negative",
			mutate:      func(in *ConfigRawInput) { in.Severity = 0.5 },
			expectError: true,
		},
		{
			name:        "strong threshold must be positive",
			mutate:      func(in *ConfigRawInput) { in.Strong = -0.5 },
			expectError: true,
		},
		{
			name:        "negative redundancy penalty",
			mutate:      func(in *ConfigRawInput) { in.Redundancy = -0.1 },
			expectError: true,
		},
		{
			name:        "invalid risk cutoff",
			mutate:      func(in *ConfigRawInput) { in.RiskCutoff = "extreme" },
			expectError: true,
		},
		{
			name:        "invalid emoji flag value",
			mutate:      func(in *ConfigRawInput) { in.Emoji = "maybe" },
			expectError: true,
		},
		{
			name:        "custom precedence list",
			mutate:      func(in *ConfigRawInput) { in.PrecedenceStr = "stl, blk, 3pm" },
			expectError: false,
		},
		{
			name:        "precedence with unknown category",
			mutate:      func(in *ConfigRawInput) { in.PrecedenceStr = "stl,dunks" },
			expectError: true,
		},
		{
			name:        "precedence with duplicate category",
			mutate:      func(in *ConfigRawInput) { in.PrecedenceStr = "stl,blk,stl" },
			expectError: true,
		},
		{
			name:        "mysql cache backend without connection string",
			mutate:      func(in *ConfigRawInput) { in.CacheBackend = string(schema.MySQLBackend) },
			expectError: true,
		},
		{
			name: "mysql cache backend with valid connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = string(schema.MySQLBackend)
				in.CacheDBConnect = "user:pass@tcp(localhost:3306)/frontoffice"
			},
			expectError: false,
		},
		{
			name: "postgres run backend missing dbname",
			mutate: func(in *ConfigRawInput) {
				in.RunBackend = string(schema.PostgreSQLBackend)
				in.RunDBConnect = "host=localhost user=fo"
			},
			expectError: true,
		},
		{
			name: "sqlite cache and run sharing a file",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = string(schema.SQLiteBackend)
				in.CacheDBConnect = "/tmp/fo.db"
				in.RunBackend = string(schema.SQLiteBackend)
				in.RunDBConnect = "/tmp/fo.db"
			},
			expectError: true,
		},
		{
			name: "sqlite cache and run with distinct files",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = string(schema.SQLiteBackend)
				in.CacheDBConnect = "/tmp/fo_cache.db"
				in.RunBackend = string(schema.SQLiteBackend)
				in.RunDBConnect = "/tmp/fo_runs.db"
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, 0.6, cfg.BlendWeights[schema.Window7Day])
	assert.Equal(t, 0.4, cfg.BlendWeights[schema.Window14Day])
	assert.Equal(t, 0.0, cfg.BlendWeights[schema.WindowSeason])
	assert.Equal(t, 3, cfg.MinGames[schema.Window7Day])
	assert.Equal(t, 6, cfg.MinGames[schema.Window14Day])
	assert.Equal(t, 20, cfg.MinGames[schema.WindowSeason])

	require.Len(t, cfg.Precedence, len(schema.AllCategories))
	assert.Equal(t, schema.CatBlocks, cfg.Precedence[0])
	assert.Equal(t, schema.CatSteals, cfg.Precedence[1])

	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
}

func TestProcessBlendOverrides(t *testing.T) {
	seven := 0.5
	fourteen := 0.3
	season := 0.2

	input := validInput()
	input.Blend = BlendRawInput{Week7: &seven, Week14: &fourteen, Season: &season}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, 0.5, cfg.BlendWeights[schema.Window7Day])
	assert.Equal(t, 0.3, cfg.BlendWeights[schema.Window14Day])
	assert.Equal(t, 0.2, cfg.BlendWeights[schema.WindowSeason])
}

func TestProcessBlendAllZero(t *testing.T) {
	zero := 0.0

	input := validInput()
	input.Blend = BlendRawInput{Week7: &zero, Week14: &zero, Season: &zero}

	cfg := &Config{}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blend weight")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	clone := cfg.Clone()
	clone.BlendWeights[schema.Window7Day] = 99
	clone.MinGames[schema.Window7Day] = 99
	clone.Precedence[0] = schema.CatTurnovers

	assert.Equal(t, 0.6, cfg.BlendWeights[schema.Window7Day])
	assert.Equal(t, 3, cfg.MinGames[schema.Window7Day])
	assert.Equal(t, schema.CatBlocks, cfg.Precedence[0])
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		hasError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"on", true, false},
		{"", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"off", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProcessProfilingConfig(t *testing.T) {
	var profile ProfileConfig
	require.NoError(t, ProcessProfilingConfig(&profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(&profile, "scout-run"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "scout-run", profile.Prefix)

	assert.Error(t, ProcessProfilingConfig(&profile, "bad prefix"))
}
