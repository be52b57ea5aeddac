package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

func metricsConfig() *contract.Config {
	return &contract.Config{
		Precision: 2,
		BlendWeights: map[schema.Window]float64{
			schema.Window7Day:  0.6,
			schema.Window14Day: 0.4,
		},
	}
}

func TestWriteMetricsText(t *testing.T) {
	renderModel := buildMetricsRenderModel(metricsConfig())

	var buf bytes.Buffer
	err := writeMetricsText(&buf, renderModel)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Frontoffice Scoring Categories")
	assert.Contains(t, output, "tov     (counting, lower is better): Turnovers committed")
	assert.Contains(t, output, "fg_pct  (rate, higher is better)")
	assert.Contains(t, output, "Blend Weights")
	assert.Contains(t, output, "7d      0.60")
	assert.Contains(t, output, "Prime >= 3.0")
}

func TestWriteMetricsJSON(t *testing.T) {
	renderModel := buildMetricsRenderModel(metricsConfig())

	var buf bytes.Buffer
	err := writeJSON(&buf, renderModel)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "Frontoffice Scoring Categories", result["title"])
	assert.Contains(t, result, "categories")
	assert.Contains(t, result, "blend")
	assert.Contains(t, result, "labels")
}

func TestWriteMetricsCSV(t *testing.T) {
	renderModel := buildMetricsRenderModel(metricsConfig())

	var buf bytes.Buffer
	err := writeMetricsCSV(&buf, renderModel)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(schema.AllCategories)+1)
	assert.Equal(t, []string{"category", "kind", "direction", "purpose"}, records[0])
	assert.Equal(t, "pts", records[1][0])
	assert.Equal(t, "counting", records[1][1])
}

func TestBuildMetricsRenderModelOrder(t *testing.T) {
	renderModel := buildMetricsRenderModel(metricsConfig())

	require.Len(t, renderModel.Categories, len(schema.AllCategories))
	for i, c := range schema.AllCategories {
		assert.Equal(t, c, renderModel.Categories[i].Name, "categories follow canonical order")
	}
}
