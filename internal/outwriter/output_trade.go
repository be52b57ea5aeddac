package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// WriteTradeResults outputs a two-sided trade evaluation, dispatching
// based on the output format.
func WriteTradeResults(eval *schema.TradeEvaluation, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, eval)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTradeCSV(w, eval, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for candidate scans and run exports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTradeTable(eval, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeTradeTable generates and writes the human-readable evaluation.
func writeTradeTable(eval *schema.TradeEvaluation, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Trade: %s %s %s\n", eval.SideA.TeamID, tradeArrow(cfg), eval.SideB.TeamID); err != nil {
		return err
	}
	for _, side := range []schema.TradeSide{eval.SideA, eval.SideB} {
		if _, err := fmt.Fprintf(writer, "  %s receives %s, sends %s\n", side.TeamID, formatPlayerList(side.Incoming), formatPlayerList(side.Outgoing)); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Category", eval.SideA.TeamID, eval.SideB.TeamID})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cat := range schema.AllCategories {
		a, aOK := eval.SideA.NetDelta[cat]
		b, bOK := eval.SideB.NetDelta[cat]
		if !aOK && !bOK {
			continue
		}
		data = append(data, []string{
			string(cat),
			formatDelta(a, cfg.Precision),
			formatDelta(b, cfg.Precision),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Need gain: %s %s vs %s %s\n",
		eval.SideA.TeamID, fmtSigned(eval.SideA.NeedGain, cfg.Precision),
		eval.SideB.TeamID, fmtSigned(eval.SideB.NeedGain, cfg.Precision)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Fairness: %s (%s)\n", fmtSigned(eval.Fairness, cfg.Precision), fairnessVerdict(eval)); err != nil {
		return err
	}

	for _, flag := range eval.RiskFlags {
		if _, err := fmt.Fprintf(writer, "Risk [%s] %s -> %s: %s\n", flag.Severity, flag.PlayerID, flag.ToTeam, flag.Description); err != nil {
			return err
		}
	}
	return nil
}

// fairnessVerdict turns the signed fairness score into a one-line verdict.
func fairnessVerdict(eval *schema.TradeEvaluation) string {
	switch {
	case eval.Fairness > 0:
		return fmt.Sprintf("favors %s", eval.SideA.TeamID)
	case eval.Fairness < 0:
		return fmt.Sprintf("favors %s", eval.SideB.TeamID)
	default:
		return "even"
	}
}

// tradeArrow picks the separator between team names in the header line.
func tradeArrow(cfg *contract.Config) string {
	if cfg.UseEmojis {
		return "🔁"
	}
	return "<->"
}

// formatDelta renders a category delta, marking rate categories whose
// denominators never materialized.
func formatDelta(v schema.StatValue, precision int) string {
	if !v.Known {
		return "n/a"
	}
	return fmtSigned(v.Value, precision)
}

// formatPlayerList joins player ids for the side summary lines.
func formatPlayerList(ids []string) string {
	if len(ids) == 0 {
		return "nothing"
	}
	return strings.Join(ids, ", ")
}

// writeTradeCSV writes per-category net deltas for both sides.
func writeTradeCSV(w io.Writer, eval *schema.TradeEvaluation, fmtFloat func(float64) string) error {
	header := []string{
		"team_id",
		"category",
		"net_delta",
		"known",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, side := range []schema.TradeSide{eval.SideA, eval.SideB} {
			for _, cat := range schema.AllCategories {
				v, ok := side.NetDelta[cat]
				if !ok {
					continue
				}
				rec := []string{
					side.TeamID,
					string(cat),
					fmtFloat(v.Value),
					fmt.Sprintf("%t", v.Known),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
