package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// fmtSigned renders a z-style value with an explicit sign so strengths
// and deficits read unambiguously in tables.
func fmtSigned(v float64, precision int) string {
	return fmt.Sprintf("%+.*f", precision, v)
}

// getMaxTableNameWidth calculates the maximum width for player names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 30 // Rank + Pos + Score + Label with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 30 // Games + Penalty + Availability with formatting
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 35 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to prevent overly wide tables
		return 40
	}
	return available
}

// formatTopContributions lists the top categories driving a candidate's
// score, highest contribution first.
func formatTopContributions(c *schema.CandidateScore) string {
	type entry struct {
		cat   schema.Category
		value float64
	}

	var entries []entry
	// Canonical order keeps ties deterministic
	for _, cat := range schema.AllCategories {
		if v, ok := c.Contributions[cat]; ok && v > 0 {
			entries = append(entries, entry{cat, v})
		}
	}
	if len(entries) == 0 {
		if c.DataCaveat {
			return "No usable data"
		}
		return "No weak-category fit"
	}

	// Stable selection sort over a handful of entries
	for i := 0; i < len(entries); i++ {
		best := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].value > entries[best].value {
				best = j
			}
		}
		entries[i], entries[best] = entries[best], entries[i]
	}

	limit := min(len(entries), 3)
	parts := make([]string, 0, limit)
	for _, e := range entries[:limit] {
		parts = append(parts, string(e.cat))
	}
	return strings.Join(parts, " > ")
}
