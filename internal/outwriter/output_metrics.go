package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// categoryPurposes maps each category to a one-line description.
var categoryPurposes = map[schema.Category]string{
	schema.CatPoints:     "Points scored",
	schema.CatRebounds:   "Total rebounds",
	schema.CatAssists:    "Assists",
	schema.CatSteals:     "Steals",
	schema.CatBlocks:     "Blocked shots",
	schema.CatTurnovers:  "Turnovers committed",
	schema.CatThreesMade: "Three-pointers made",
	schema.CatFGPct:      "Field goal percentage, weighted by attempts",
	schema.CatFTPct:      "Free throw percentage, weighted by attempts",
}

// categoryKind returns the display kind of a category.
func categoryKind(c schema.Category) string {
	if c.IsRate() {
		return "rate"
	}
	return "counting"
}

// categoryDirection returns the display direction of a category.
func categoryDirection(c schema.Category) string {
	if c.IsNegative() {
		return "lower is better"
	}
	return "higher is better"
}

// PrintMetricsDefinitions displays the formal definitions of all scoring
// categories. This is a static display that does not read any snapshot.
func PrintMetricsDefinitions(cfg *contract.Config) error {
	renderModel := buildMetricsRenderModel(cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(w, renderModel)
		}, "Wrote text")
	}
}

// buildMetricsRenderModel constructs the complete render model.
func buildMetricsRenderModel(cfg *contract.Config) *schema.MetricsRenderModel {
	categories := make([]schema.CategoryDefinition, 0, len(schema.AllCategories))
	for _, c := range schema.AllCategories {
		categories = append(categories, schema.CategoryDefinition{
			Name:      c,
			Kind:      categoryKind(c),
			Direction: categoryDirection(c),
			Purpose:   categoryPurposes[c],
		})
	}

	return &schema.MetricsRenderModel{
		Title:       "Frontoffice Scoring Categories",
		Description: "Each category is normalized to a z-score against the league baseline, blended across recency windows",
		Categories:  categories,
		Blend:       cfg.BlendWeights,
		Labels: map[string]float64{
			schema.PrimeValue:    3.0,
			schema.StrongValue:   1.5,
			schema.UsefulValue:   0.5,
			schema.MarginalValue: 0,
		},
	}
}

// writeMetricsText displays category definitions in human-readable text format.
func writeMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	if _, err := fmt.Fprintf(w, "🏀 %s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "==============================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, cat := range renderModel.Categories {
		if _, err := fmt.Fprintf(w, "%-7s (%s, %s): %s\n", cat.Name, cat.Kind, cat.Direction, cat.Purpose); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n🪟 Blend Weights\n"); err != nil {
		return err
	}
	for _, win := range schema.AllWindows {
		if _, err := fmt.Fprintf(w, "   %-7s %.2f\n", win, renderModel.Blend[win]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n🏷️  Label Buckets (composite score)\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "   %s >= %.1f, %s >= %.1f, %s >= %.1f, %s below\n",
		schema.PrimeValue, renderModel.Labels[schema.PrimeValue],
		schema.StrongValue, renderModel.Labels[schema.StrongValue],
		schema.UsefulValue, renderModel.Labels[schema.UsefulValue],
		schema.MarginalValue)
	return err
}

// writeMetricsCSV writes the category definitions in CSV format.
func writeMetricsCSV(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	header := []string{"category", "kind", "direction", "purpose"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, cat := range renderModel.Categories {
			record := []string{string(cat.Name), cat.Kind, cat.Direction, cat.Purpose}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
