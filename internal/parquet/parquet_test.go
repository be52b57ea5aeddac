package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/schema"
)

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	runSchema := parquet.SchemaOf(new(Run))
	require.NotNil(t, runSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_scored",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := runSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestCandidateScoreStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	scoreSchema := parquet.SchemaOf(new(CandidateScore))
	require.NotNil(t, scoreSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"player_id",
		"player_name",
		"scored_at",
		"composite",
		"redundancy_penalty",
		"games_played",
		"data_caveat",
		"score_label",
	}

	for _, colName := range expectedColumns {
		col, ok := scoreSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func sampleRunRecords() []schema.RunRecord {
	now := time.Now()
	endTime := now.Add(-time.Minute)
	durationMs := int64(90000)
	totalScored := int64(42)

	return []schema.RunRecord{
		{
			RunID:         1,
			StartTime:     now.Add(-2 * time.Minute),
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			TotalScored:   &totalScored,
			ConfigParams:  `{"limit":15,"output":"text"}`,
		},
		{
			// Still running, nullable completion fields
			RunID:     2,
			StartTime: now,
		},
	}
}

func TestWriteRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "runs.parquet")

	data := ConvertRunRecords(sampleRunRecords())
	require.Len(t, data, 2)
	assert.Nil(t, data[1].EndTime)
	assert.Nil(t, data[1].ConfigParams)

	err := WriteRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[Run](file)
	defer func() { _ = reader.Close() }()

	got := make([]Run, 4)
	n, err := reader.Read(got)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)
	assert.Equal(t, int64(1), got[0].RunID)
	require.NotNil(t, got[0].TotalScored)
	assert.Equal(t, int64(42), *got[0].TotalScored)
	assert.Nil(t, got[1].EndTime)
}

func TestWriteCandidateScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "scores.parquet")

	records := []schema.CandidateScoreRecord{
		{
			RunID:             1,
			PlayerID:          "p100",
			Name:              "Rim Protector",
			ScoredAt:          time.Now(),
			Composite:         3.4,
			RedundancyPenalty: 0.0,
			GamesPlayed:       22,
			Label:             "Prime",
		},
		{
			RunID:             1,
			PlayerID:          "p200",
			Name:              "Combo Guard",
			ScoredAt:          time.Now(),
			Composite:         0.9,
			RedundancyPenalty: 0.35,
			GamesPlayed:       18,
			Label:             "Useful",
		},
	}

	data := ConvertCandidateScoreRecords(records)
	err := WriteCandidateScoresParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[CandidateScore](file)
	defer func() { _ = reader.Close() }()

	got := make([]CandidateScore, 4)
	n, err := reader.Read(got)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)
	assert.Equal(t, "p100", got[0].PlayerID)
	assert.Equal(t, 3.4, got[0].Composite)
	assert.Equal(t, "Useful", got[1].Label)
}
