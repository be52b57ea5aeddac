package schema

import "time"

// CacheStatus represents the status of the stat-record cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunStatus represents the status of the analysis-run tracking store.
type RunStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
	TotalScored   int       `json:"total_scored"`
}

// RunRecord represents a row from the frontoffice_runs table.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int64
	TotalScored   *int64
	ConfigParams  string
}

// CandidateScoreRecord represents a row from the frontoffice_candidate_scores table.
type CandidateScoreRecord struct {
	RunID             int64
	PlayerID          string
	Name              string
	ScoredAt          time.Time
	Composite         float64
	RedundancyPenalty float64
	GamesPlayed       int32
	DataCaveat        bool
	Label             string
}
