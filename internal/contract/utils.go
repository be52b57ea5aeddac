package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hoopsight/frontoffice/schema"
)

// Color variables for console output.
var (
	PrimeColor    = color.New(color.FgGreen, color.Bold) // primeColor represents a clear add that fills a top need.
	StrongColor   = color.New(color.FgCyan, color.Bold)  // strongColor represents a solid add.
	UsefulColor   = color.New(color.FgYellow)            // usefulColor represents a situational add, not bold.
	MarginalColor = color.New(color.FgWhite)             // marginalColor represents a player unlikely to move a category.
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies
// the appropriate color.
func GetColorLabel(score float64) string {
	text := schema.GetPlainLabel(score)

	switch text {
	case schema.PrimeValue:
		return PrimeColor.Sprint(text)
	case schema.StrongValue:
		return StrongColor.Sprint(text)
	case schema.UsefulValue:
		return UsefulColor.Sprint(text)
	default: // "Marginal"
		return MarginalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a player name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for both the ellipsis and at least
// one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for stat record storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".frontoffice_cache.db"
	}
	return filepath.Join(homeDir, ".frontoffice_cache.db")
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".frontoffice_runs.db"
	}
	return filepath.Join(homeDir, ".frontoffice_runs.db")
}
