// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/hoopsight/frontoffice/schema"
)

// SnapshotProvider loads the full league snapshot an analysis run
// consumes. Implementations may read a file or assemble the snapshot
// from remote providers; the engine only sees the result.
type SnapshotProvider interface {
	// LeagueSnapshot returns the snapshot, honoring ctx for cancellation.
	LeagueSnapshot(ctx context.Context) (*schema.LeagueSnapshot, error)
}

// StatsProvider fetches raw per-player stat records per window.
// This is the boundary to the real-world stats source; the engine
// never calls it directly.
type StatsProvider interface {
	// PlayerRecords returns the stat records for one player across the
	// requested windows.
	PlayerRecords(ctx context.Context, playerID string, windows []schema.Window) ([]schema.StatRecord, error)
}

// BaselineProvider supplies the league-wide per-category mean and
// standard deviation for the scoring population.
type BaselineProvider interface {
	LeagueBaseline(ctx context.Context) (schema.LeagueBaseline, error)
}

// RiskProvider supplies external risk signals (injury reports,
// shutdown candidates) for the trade path.
type RiskProvider interface {
	RiskSignals(ctx context.Context) ([]schema.RiskSignal, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetRecordStore() CacheStore
	GetRunStore() RunStore
}

// CacheStore defines the interface for cached provider payloads.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}

// RunStore tracks analysis runs and the candidate scores they produced.
type RunStore interface {
	// BeginRun creates a new analysis run and returns its unique ID.
	BeginRun(configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, totalScored int) error

	// RecordCandidateScore stores one scored candidate for the run.
	RecordCandidateScore(runID int64, score schema.CandidateScore) error

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves every tracked run for export.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllCandidateScores retrieves every recorded candidate score for export.
	GetAllCandidateScores() ([]schema.CandidateScoreRecord, error)

	// Clear removes all tracked runs and scores.
	Clear() error

	Close() error
}
