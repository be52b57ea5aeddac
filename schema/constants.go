package schema

// Custom string types for type safety.
type (
	// Category represents one scored statistical dimension in a category league.
	Category string

	// Window represents a stat aggregation time window.
	Window string

	// Position represents a fantasy roster position.
	Position string

	// Availability represents a player's availability status.
	Availability string

	// Severity represents the severity of an external risk signal.
	Severity string

	// Confidence represents how trustworthy a per-category value is.
	Confidence string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// The nine standard categories of a nine-cat league.
const (
	CatPoints     Category = "pts"
	CatRebounds   Category = "reb"
	CatAssists    Category = "ast"
	CatSteals     Category = "stl"
	CatBlocks     Category = "blk"
	CatTurnovers  Category = "tov"
	CatThreesMade Category = "3pm"
	CatFGPct      Category = "fg_pct"
	CatFTPct      Category = "ft_pct"
)

// AllCategories lists every recognized category in canonical order.
// Every CategoryVector carries exactly these keys, and all per-category
// iteration follows this order so ranked output is reproducible.
var AllCategories = []Category{
	CatPoints, CatRebounds, CatAssists, CatSteals, CatBlocks,
	CatTurnovers, CatThreesMade, CatFGPct, CatFTPct,
}

// NegativeCategories are categories where a lower value is better.
var NegativeCategories = map[Category]bool{
	CatTurnovers: true,
}

// rateCategories are denominator-based categories that must be
// volume-weighted when aggregated.
var rateCategories = map[Category]bool{
	CatFGPct: true,
	CatFTPct: true,
}

// IsRate reports whether the category is a shooting-percentage style rate
// that aggregates by volume-weighted average instead of sum.
func (c Category) IsRate() bool { return rateCategories[c] }

// IsNegative reports whether lower values are better for the category.
func (c Category) IsNegative() bool { return NegativeCategories[c] }

// KnownCategory reports whether c is one of the recognized categories.
func KnownCategory(c Category) bool {
	for _, k := range AllCategories {
		if k == c {
			return true
		}
	}
	return false
}

// All stat windows supported.
const (
	Window7Day   Window = "7d"
	Window14Day  Window = "14d"
	WindowSeason Window = "season"
)

// AllWindows lists windows from most recent to least recent.
var AllWindows = []Window{Window7Day, Window14Day, WindowSeason}

// All roster positions supported.
const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
	Guard         Position = "G"
	Forward       Position = "F"
	Utility       Position = "Util"
)

// All availability statuses supported.
const (
	ActiveStatus    Availability = "active"
	InjuredStatus   Availability = "injured"
	SuspendedStatus Availability = "suspended"
	UnknownStatus   Availability = "unknown"
)

// All risk severities supported, in ascending order.
const (
	LowSeverity    Severity = "low"
	MediumSeverity Severity = "medium"
	HighSeverity   Severity = "high"
)

// Rank returns a comparable ordering for severities. Unrecognized
// severities rank below low so they never trip a cutoff by accident.
func (s Severity) Rank() int {
	switch s {
	case LowSeverity:
		return 1
	case MediumSeverity:
		return 2
	case HighSeverity:
		return 3
	default:
		return 0
	}
}

// All confidence levels supported.
const (
	OKConfidence  Confidence = "ok"
	LowConfidence Confidence = "low"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes is the allow-list for output validation.
var ValidOutputModes = map[OutputMode]bool{
	CSVOut:     true,
	TextOut:    true,
	JSONOut:    true,
	ParquetOut: true,
}

// ValidDatabaseBackends is the allow-list for backend validation.
var ValidDatabaseBackends = map[DatabaseBackend]bool{
	SQLiteBackend:     true,
	MySQLBackend:      true,
	PostgreSQLBackend: true,
	NoneBackend:       true,
}
