package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/internal/parquet"
	"github.com/hoopsight/frontoffice/schema"
)

// WriteCandidateResults outputs ranked candidate scores, dispatching
// based on the output format configured.
func WriteCandidateResults(candidates []schema.CandidateScore, weaknesses *schema.WeaknessProfile, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCandidateJSON(w, candidates, weaknesses)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCandidateCSV(w, candidates, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeCandidateParquet(candidates, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCandidateTable(candidates, weaknesses, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeCandidateTable generates and writes the human-readable table.
func writeCandidateTable(candidates []schema.CandidateScore, weaknesses *schema.WeaknessProfile, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	if weaknesses != nil && len(weaknesses.Weaknesses) > 0 {
		parts := make([]string, 0, len(weaknesses.Weaknesses))
		for _, wk := range weaknesses.Weaknesses {
			parts = append(parts, fmt.Sprintf("%s (%s)", wk.Category, fmtSigned(wk.ZScore, cfg.Precision)))
		}
		if _, err := fmt.Fprintf(writer, "Targeting weaknesses: %s\n", strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	if weaknesses != nil && len(weaknesses.LowConfidence) > 0 {
		if _, err := fmt.Fprintf(writer, "Low-confidence categories excluded: %s\n", schema.FormatCategories(weaknesses.LowConfidence)); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Player", "Pos", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Games", "Penalty", "Status")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	labelFunc := schema.GetPlainLabel
	if cfg.UseColors {
		labelFunc = contract.GetColorLabel
	}
	nameWidth := getMaxTableNameWidth(cfg)
	for i, c := range candidates {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(c.Name, nameWidth),
			schema.FormatPositions(c.Positions),
			formatComposite(c, fmtFloat),
			labelFunc(c.Composite),
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf(intFmt, c.GamesPlayed),
				fmtFloat(c.RedundancyPenalty),
				formatAvailability(c.Availability),
			)
		}
		if cfg.Explain {
			row = append(row, formatTopContributions(&c)) // Contribution breakdown
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d candidates\n", len(candidates)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scan completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// formatComposite renders the composite score, flagging candidates that
// carried no usable data instead of printing the floor sentinel.
func formatComposite(c schema.CandidateScore, fmtFloat func(float64) string) string {
	if c.DataCaveat {
		return "n/a"
	}
	return fmtFloat(c.Composite)
}

// formatAvailability renders a player's availability for table output.
func formatAvailability(a schema.Availability) string {
	if a == "" {
		return string(schema.UnknownStatus)
	}
	return string(a)
}

// writeCandidateCSV writes ranked candidates in CSV format.
func writeCandidateCSV(w io.Writer, candidates []schema.CandidateScore, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"player_id",
		"player",
		"positions",
		"score",
		"label",
		"games_played",
		"redundancy_penalty",
		"availability",
		"data_caveat",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, c := range candidates {
			rec := []string{
				strconv.Itoa(i + 1),
				c.PlayerID,
				c.Name,
				schema.FormatPositions(c.Positions),
				formatComposite(c, fmtFloat),
				schema.GetPlainLabel(c.Composite),
				fmt.Sprintf(intFmt, c.GamesPlayed),
				fmtFloat(c.RedundancyPenalty),
				formatAvailability(c.Availability),
				strconv.FormatBool(c.DataCaveat),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCandidateJSON writes ranked candidates in JSON format.
func writeCandidateJSON(w io.Writer, candidates []schema.CandidateScore, weaknesses *schema.WeaknessProfile) error {
	output := struct {
		Weaknesses *schema.WeaknessProfile         `json:"weaknesses,omitempty"`
		Candidates []schema.EnrichedCandidateScore `json:"candidates"`
	}{
		Weaknesses: weaknesses,
		Candidates: schema.EnrichCandidates(candidates),
	}
	return writeJSON(w, output)
}

// writeCandidateParquet writes ranked candidates to a Parquet file.
// Parquet output always requires an explicit file path.
func writeCandidateParquet(candidates []schema.CandidateScore, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	now := time.Now().UTC()
	rows := make([]parquet.CandidateScore, len(candidates))
	for i, c := range candidates {
		rows[i] = parquet.CandidateScore{
			PlayerID:          c.PlayerID,
			Name:              c.Name,
			ScoredAt:          now,
			Composite:         c.Composite,
			RedundancyPenalty: c.RedundancyPenalty,
			GamesPlayed:       int32(c.GamesPlayed),
			DataCaveat:        c.DataCaveat,
			Label:             schema.GetPlainLabel(c.Composite),
		}
	}

	if err := parquet.WriteCandidateScoresParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
