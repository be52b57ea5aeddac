// Package parquet provides data structures and functions for exporting
// frontoffice run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/hoopsight/frontoffice/schema"
)

// Run represents a single analysis run with metadata.
// This struct maps to the frontoffice_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalScored is the number of candidates scored in this run (nullable)
	TotalScored *int64 `parquet:"total_scored,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// CandidateScore represents one scored candidate in a run.
// This struct maps to the frontoffice_candidate_scores database table.
type CandidateScore struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// PlayerID is the provider-scoped player identifier
	PlayerID string `parquet:"player_id,snappy"`

	// Name is the player's display name
	Name string `parquet:"player_name,snappy"`

	// ScoredAt is when this candidate was scored
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// Composite is the final fit score after penalties
	Composite float64 `parquet:"composite,snappy"`

	// RedundancyPenalty is the amount subtracted for positional overlap
	RedundancyPenalty float64 `parquet:"redundancy_penalty,snappy"`

	// GamesPlayed is the largest game count across windows
	GamesPlayed int32 `parquet:"games_played,snappy"`

	// DataCaveat marks candidates scored with no usable data
	DataCaveat bool `parquet:"data_caveat,snappy"`

	// Label is the plain text bucket for the composite score
	Label string `parquet:"score_label,snappy"`
}

// ConvertRunRecords converts database run records into Parquet rows.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	runs := make([]Run, len(records))
	for i, r := range records {
		run := Run{
			RunID:         r.RunID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			RunDurationMs: r.RunDurationMs,
			TotalScored:   r.TotalScored,
		}
		if r.ConfigParams != "" {
			params := r.ConfigParams
			run.ConfigParams = &params
		}
		runs[i] = run
	}
	return runs
}

// ConvertCandidateScoreRecords converts database score records into Parquet rows.
func ConvertCandidateScoreRecords(records []schema.CandidateScoreRecord) []CandidateScore {
	scores := make([]CandidateScore, len(records))
	for i, r := range records {
		scores[i] = CandidateScore{
			RunID:             r.RunID,
			PlayerID:          r.PlayerID,
			Name:              r.Name,
			ScoredAt:          r.ScoredAt,
			Composite:         r.Composite,
			RedundancyPenalty: r.RedundancyPenalty,
			GamesPlayed:       r.GamesPlayed,
			DataCaveat:        r.DataCaveat,
			Label:             r.Label,
		}
	}
	return scores
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCandidateScoresParquet writes a slice of CandidateScore structs to a Parquet file.
func WriteCandidateScoresParquet(data []CandidateScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CandidateScore struct tags
	writer := parquet.NewGenericWriter[CandidateScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
