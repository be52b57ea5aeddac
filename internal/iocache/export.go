package iocache

import (
	"errors"
	"fmt"

	"github.com/hoopsight/frontoffice/internal/parquet"
)

// ExecuteRunExport performs the actual export of run history to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not configured. Set --run-backend to enable it")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total candidates scored: %d\n", status.TotalScored)

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all candidate scores
	scores, err := store.GetAllCandidateScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve candidate scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetScores := parquet.ConvertCandidateScoreRecords(scores)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write candidate scores to Parquet
	scoresFile := outputFile + ".candidate_scores.parquet"
	if err := parquet.WriteCandidateScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write candidate scores: %w", err)
	}
	fmt.Printf("Exported %d candidate scores to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
