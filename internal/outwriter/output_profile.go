package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// WriteProfileResults outputs a team's per-category profile alongside
// its ranked weaknesses, dispatching based on the output format.
func WriteProfileResults(profile *schema.TeamProfile, weaknesses *schema.WeaknessProfile, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileJSON(w, profile, weaknesses)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileCSV(w, profile, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for candidate scans and run exports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileTable(profile, weaknesses, cfg, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
}

// writeProfileTable generates and writes the human-readable profile.
func writeProfileTable(profile *schema.TeamProfile, weaknesses *schema.WeaknessProfile, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Team %s (%d rostered players)\n", profile.TeamID, profile.RosterSize); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	headers := []string{"Category", "Z-Score", "Standing"}
	if cfg.Detail {
		headers = append(headers, "Team Value", "Reliable", "Confidence")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cat := range schema.AllCategories {
		s, ok := profile.Strengths[cat]
		if !ok {
			continue
		}
		row := []string{
			string(cat),
			fmtSigned(s.ZScore, cfg.Precision),
			formatStanding(s, cfg),
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(s.TeamValue),
				fmt.Sprintf(intFmt, s.ReliableCount),
				string(s.Confidence),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if weaknesses != nil && len(weaknesses.Weaknesses) > 0 {
		if _, err := fmt.Fprintf(writer, "Weaknesses, most severe first:\n"); err != nil {
			return err
		}
		for i, wk := range weaknesses.Weaknesses {
			if _, err := fmt.Fprintf(writer, "  %d. %s (z %s, deficit %s)\n", i+1, wk.Category, fmtSigned(wk.ZScore, cfg.Precision), fmtFloat(wk.Deficit)); err != nil {
				return err
			}
		}
	}
	if weaknesses != nil && len(weaknesses.LowConfidence) > 0 {
		if _, err := fmt.Fprintf(writer, "Low-confidence categories excluded from ranking: %s\n", schema.FormatCategories(weaknesses.LowConfidence)); err != nil {
			return err
		}
	}
	return nil
}

// formatStanding classifies a category's z-score against the configured
// strength and severity thresholds.
func formatStanding(s schema.CategoryStrength, cfg *contract.Config) string {
	if s.Confidence == schema.LowConfidence {
		return "low data"
	}
	switch {
	case s.ZScore >= cfg.StrongThreshold:
		return "strong"
	case s.ZScore <= cfg.SeverityThreshold:
		return "weak"
	default:
		return "neutral"
	}
}

// writeProfileCSV writes the per-category profile in CSV format.
func writeProfileCSV(w io.Writer, profile *schema.TeamProfile, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"team_id",
		"category",
		"z_score",
		"team_value",
		"reliable_count",
		"confidence",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, cat := range schema.AllCategories {
			s, ok := profile.Strengths[cat]
			if !ok {
				continue
			}
			rec := []string{
				profile.TeamID,
				string(cat),
				fmtFloat(s.ZScore),
				fmtFloat(s.TeamValue),
				fmt.Sprintf(intFmt, s.ReliableCount),
				string(s.Confidence),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeProfileJSON writes the profile and weaknesses in JSON format.
func writeProfileJSON(w io.Writer, profile *schema.TeamProfile, weaknesses *schema.WeaknessProfile) error {
	output := struct {
		Profile    *schema.TeamProfile     `json:"profile"`
		Weaknesses *schema.WeaknessProfile `json:"weaknesses,omitempty"`
	}{
		Profile:    profile,
		Weaknesses: weaknesses,
	}
	return writeJSON(w, output)
}
