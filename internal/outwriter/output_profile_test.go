package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

func testProfile() *schema.TeamProfile {
	return &schema.TeamProfile{
		TeamID:     "team-a",
		RosterSize: 13,
		Strengths: map[schema.Category]schema.CategoryStrength{
			schema.CatPoints:  {ZScore: 1.8, TeamValue: 112.5, ReliableCount: 10, Confidence: schema.OKConfidence},
			schema.CatBlocks:  {ZScore: -1.4, TeamValue: 3.1, ReliableCount: 8, Confidence: schema.OKConfidence},
			schema.CatAssists: {ZScore: 0.2, TeamValue: 24.0, ReliableCount: 9, Confidence: schema.OKConfidence},
			schema.CatFTPct:   {ZScore: 0.0, TeamValue: 0.78, ReliableCount: 2, Confidence: schema.LowConfidence},
		},
	}
}

func TestWriteProfileTable(t *testing.T) {
	cfg := &contract.Config{
		Output:            schema.TextOut,
		Precision:         2,
		Detail:            true,
		StrongThreshold:   0.5,
		SeverityThreshold: -0.5,
		UseColors:         false,
		Width:             120,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	weaknesses := testWeaknesses()

	var buf bytes.Buffer
	err := writeProfileTable(testProfile(), weaknesses, cfg, fmtFloat, intFmt, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Team team-a (13 rostered players)")
	assert.Contains(t, output, "+1.80")
	assert.Contains(t, output, "strong")
	assert.Contains(t, output, "-1.40")
	assert.Contains(t, output, "weak")
	assert.Contains(t, output, "neutral")
	assert.Contains(t, output, "low data")
	assert.Contains(t, output, "Weaknesses, most severe first:")
	assert.Contains(t, output, "1. blk")
	assert.Contains(t, output, "Low-confidence categories excluded from ranking: ft_pct")
}

func TestWriteProfileCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	err := writeProfileCSV(&buf, testProfile(), fmtFloat, intFmt)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // header + 4 categories

	assert.Contains(t, lines[0], "z_score")
	// Canonical category order: pts before ast before blk before ft_pct
	assert.Contains(t, lines[1], "pts")
	assert.Contains(t, lines[2], "ast")
	assert.Contains(t, lines[3], "blk")
	assert.Contains(t, lines[4], "ft_pct")
	assert.Contains(t, lines[4], "low")
}

func TestWriteProfileJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeProfileJSON(&buf, testProfile(), testWeaknesses())
	require.NoError(t, err)

	var result struct {
		Profile    map[string]any `json:"profile"`
		Weaknesses map[string]any `json:"weaknesses"`
	}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "team-a", result.Profile["team_id"])
	assert.Equal(t, float64(13), result.Profile["roster_size"])
	assert.NotNil(t, result.Weaknesses["weaknesses"])
}

func TestWriteProfileResultsParquetUnsupported(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.ParquetOut,
		Precision: 2,
	}

	err := WriteProfileResults(testProfile(), nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet")
}
