package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// Table names for run tracking.
const (
	runsTable            = "frontoffice_runs"
	candidateScoresTable = "frontoffice_candidate_scores"
)

// RunStoreImpl implements the RunStore interface.
type RunStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.RunStore = &RunStoreImpl{} // Compile-time check

// NewRunStore creates a new RunStore with the specified backend.
func NewRunStore(backend schema.DatabaseBackend, connStr string) (contract.RunStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetRunDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &RunStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Check that the server is running and the connection string is valid", backend, err)
	}

	// Create the table schemas
	if err := createRunTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create run tables: %w", err)
	}

	return &RunStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createRunTables creates the run tracking tables.
func createRunTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{runsTable, getCreateRunsQuery(backend)},
		{candidateScoresTable, getCreateCandidateScoresQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for frontoffice_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(runsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				run_duration_ms INT,
				total_scored INT,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				run_duration_ms INT,
				total_scored INT,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time TEXT NOT NULL,
				end_time TEXT,
				run_duration_ms INTEGER,
				total_scored INTEGER,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateCandidateScoresQuery returns the CREATE TABLE query for frontoffice_candidate_scores.
func getCreateCandidateScoresQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(candidateScoresTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				player_id VARCHAR(100) NOT NULL,
				player_name VARCHAR(200) NOT NULL,
				scored_at DATETIME(6) NOT NULL,
				composite DOUBLE NOT NULL,
				redundancy_penalty DOUBLE NOT NULL,
				games_played INT NOT NULL,
				data_caveat BOOLEAN NOT NULL,
				score_label VARCHAR(50) NOT NULL,
				PRIMARY KEY (run_id, player_id)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				player_id TEXT NOT NULL,
				player_name TEXT NOT NULL,
				scored_at TIMESTAMPTZ NOT NULL,
				composite DOUBLE PRECISION NOT NULL,
				redundancy_penalty DOUBLE PRECISION NOT NULL,
				games_played INT NOT NULL,
				data_caveat BOOLEAN NOT NULL,
				score_label TEXT NOT NULL,
				PRIMARY KEY (run_id, player_id)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				player_id TEXT NOT NULL,
				player_name TEXT NOT NULL,
				scored_at TEXT NOT NULL,
				composite REAL NOT NULL,
				redundancy_penalty REAL NOT NULL,
				games_played INTEGER NOT NULL,
				data_caveat BOOLEAN NOT NULL,
				score_label TEXT NOT NULL,
				PRIMARY KEY (run_id, player_id)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new analysis run and returns its unique ID.
func (rs *RunStoreImpl) BeginRun(configParams map[string]any) (int64, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return 0, nil
	}

	// Serialize config params to JSON
	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	startTime := time.Now().UTC()
	quotedTableName := quoteTableName(runsTable, rs.backend)

	var runID int64
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES ($1, $2) RETURNING run_id`, quotedTableName)
		err = rs.db.QueryRow(query, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES (?, ?)`, quotedTableName)
		var result sql.Result
		result, err = rs.db.Exec(query, formatTime(startTime, rs.backend), string(configJSON))
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return runID, nil
}

// EndRun updates the run with completion data.
func (rs *RunStoreImpl) EndRun(runID int64, totalScored int) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	// First, get the start_time to calculate duration
	quotedTableName := quoteTableName(runsTable, rs.backend)
	startTime, err := rs.runStartTime(runID, quotedTableName)
	if err != nil {
		return err
	}

	endTime := time.Now().UTC()
	durationMs := endTime.Sub(startTime).Milliseconds()

	var updateQuery string
	var args []any

	switch rs.backend {
	case schema.PostgreSQLBackend:
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = $1, run_duration_ms = $2, total_scored = $3 WHERE run_id = $4`, quotedTableName)
		args = []any{endTime, durationMs, totalScored, runID}
	default: // SQLite and MySQL
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, total_scored = ? WHERE run_id = ?`, quotedTableName)
		args = []any{formatTime(endTime, rs.backend), durationMs, totalScored, runID}
	}

	if _, err := rs.db.Exec(updateQuery, args...); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	return nil
}

// runStartTime reads back the stored start time for a run, handling the
// per-backend time representation.
func (rs *RunStoreImpl) runStartTime(runID int64, quotedTableName string) (time.Time, error) {
	var query string
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = $1`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, quotedTableName)
	}

	row := rs.db.QueryRow(query, runID)

	switch rs.backend {
	case schema.SQLiteBackend:
		var startTimeStr string
		if err := row.Scan(&startTimeStr); err != nil {
			return time.Time{}, fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
		startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse start_time: %w", err)
		}
		return startTime, nil
	default: // MySQL and PostgreSQL store as native datetime
		var startTime time.Time
		if err := row.Scan(&startTime); err != nil {
			return time.Time{}, fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
		return startTime, nil
	}
}

// RecordCandidateScore stores one scored candidate for the run.
func (rs *RunStoreImpl) RecordCandidateScore(runID int64, score schema.CandidateScore) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(candidateScoresTable, rs.backend)
	scoredAt := formatTime(time.Now().UTC(), rs.backend)

	var query string
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, player_id, player_name, scored_at, composite,
			                redundancy_penalty, games_played, data_caveat, score_label)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, player_id, player_name, scored_at, composite,
			                redundancy_penalty, games_played, data_caveat, score_label)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	args := []any{
		runID, score.PlayerID, score.Name, scoredAt, score.Composite,
		score.RedundancyPenalty, score.GamesPlayed, score.DataCaveat,
		schema.GetPlainLabel(score.Composite),
	}

	if _, err := rs.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert candidate score: %w", err)
	}

	return nil
}

// Clear removes all tracked runs and scores without dropping the tables.
func (rs *RunStoreImpl) Clear() error {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	for _, table := range []string{candidateScoresTable, runsTable} {
		query := fmt.Sprintf("DELETE FROM %s", quoteTableName(table, rs.backend))
		if _, err := rs.db.Exec(query); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// Close closes the underlying connection.
func (rs *RunStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the run store.
func (rs *RunStoreImpl) GetStatus() (schema.RunStatus, error) {
	status := schema.RunStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}

	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(runsTable, rs.backend))
	row := rs.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		// Get last run info
		lastRunQuery := fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", quoteTableName(runsTable, rs.backend))
		row = rs.db.QueryRow(lastRunQuery)

		switch rs.backend {
		case schema.SQLiteBackend:
			var lastRunID int64
			var lastRunTimeStr string
			if err := row.Scan(&lastRunID, &lastRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
			status.LastRunID = lastRunID
			lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse last run time: %w", err)
			}
			status.LastRunTime = lastRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.LastRunID, &status.LastRunTime); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
		}

		// Get oldest run time
		oldestRunQuery := fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quoteTableName(runsTable, rs.backend))
		row = rs.db.QueryRow(oldestRunQuery)

		switch rs.backend {
		case schema.SQLiteBackend:
			var oldestRunTimeStr string
			if err := row.Scan(&oldestRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get oldest run time: %w", err)
			}
			oldestRunTime, err := time.Parse(time.RFC3339Nano, oldestRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse oldest run time: %w", err)
			}
			status.OldestRunTime = oldestRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.OldestRunTime); err != nil {
				return status, fmt.Errorf("failed to get oldest run time: %w", err)
			}
		}

		// Get total candidates scored across all runs
		scoredQuery := fmt.Sprintf("SELECT COALESCE(SUM(total_scored), 0) FROM %s", quoteTableName(runsTable, rs.backend))
		row = rs.db.QueryRow(scoredQuery)
		if err := row.Scan(&status.TotalScored); err != nil {
			return status, fmt.Errorf("failed to get total scored: %w", err)
		}
	}

	return status, nil
}

// GetAllRuns retrieves all runs from the store.
func (rs *RunStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)
	query := fmt.Sprintf("SELECT run_id, start_time, end_time, run_duration_ms, total_scored, config_params FROM %s ORDER BY run_id", quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord

	for rows.Next() {
		var record schema.RunRecord

		switch rs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.RunDurationMs, &record.TotalScored, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &record.TotalScored, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan run: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return results, nil
}

// GetAllCandidateScores retrieves all recorded candidate scores from the store.
func (rs *RunStoreImpl) GetAllCandidateScores() ([]schema.CandidateScoreRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(candidateScoresTable, rs.backend)
	query := fmt.Sprintf(`SELECT run_id, player_id, player_name, scored_at, composite,
    redundancy_penalty, games_played, data_caveat, score_label
    FROM %s ORDER BY run_id, player_id`, quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.CandidateScoreRecord

	for rows.Next() {
		var record schema.CandidateScoreRecord

		switch rs.backend {
		case schema.SQLiteBackend:
			var scoredAtStr string
			if err := rows.Scan(&record.RunID, &record.PlayerID, &record.Name, &scoredAtStr,
				&record.Composite, &record.RedundancyPenalty, &record.GamesPlayed,
				&record.DataCaveat, &record.Label); err != nil {
				return nil, fmt.Errorf("failed to scan candidate score: %w", err)
			}
			scoredAt, err := time.Parse(time.RFC3339Nano, scoredAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse scored_at: %w", err)
			}
			record.ScoredAt = scoredAt
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.PlayerID, &record.Name, &record.ScoredAt,
				&record.Composite, &record.RedundancyPenalty, &record.GamesPlayed,
				&record.DataCaveat, &record.Label); err != nil {
				return nil, fmt.Errorf("failed to scan candidate score: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidate scores: %w", err)
	}

	return results, nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
