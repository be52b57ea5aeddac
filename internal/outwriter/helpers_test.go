package outwriter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(3)
	assert.Equal(t, "1.235", fmtFloat(1.2345))
	assert.Equal(t, "%d", intFmt)
}

func TestFmtSigned(t *testing.T) {
	assert.Equal(t, "+1.50", fmtSigned(1.5, 2))
	assert.Equal(t, "-0.25", fmtSigned(-0.25, 2))
	assert.Equal(t, "+0.00", fmtSigned(0, 2))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		cfg      contract.Config
		expected int
	}{
		{
			name:     "narrow terminal clamps to minimum",
			cfg:      contract.Config{Width: 40},
			expected: 12,
		},
		{
			name:     "wide terminal clamps to maximum",
			cfg:      contract.Config{Width: 300},
			expected: 40,
		},
		{
			name:     "detail and explain reserve extra columns",
			cfg:      contract.Config{Width: 130, Detail: true, Explain: true},
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getMaxTableNameWidth(&tt.cfg))
		})
	}
}

func TestFormatTopContributions(t *testing.T) {
	tests := []struct {
		name      string
		candidate schema.CandidateScore
		expected  string
	}{
		{
			name: "top three positive categories in descending order",
			candidate: schema.CandidateScore{
				Contributions: map[schema.Category]float64{
					schema.CatBlocks:   2.5,
					schema.CatRebounds: 1.0,
					schema.CatSteals:   0.5,
					schema.CatPoints:   0.1,
				},
			},
			expected: "blk > reb > stl",
		},
		{
			name: "negative contributions are skipped",
			candidate: schema.CandidateScore{
				Contributions: map[schema.Category]float64{
					schema.CatBlocks:    -0.5,
					schema.CatTurnovers: -1.0,
					schema.CatAssists:   0.8,
				},
			},
			expected: "ast",
		},
		{
			name:      "no usable data",
			candidate: schema.CandidateScore{DataCaveat: true},
			expected:  "No usable data",
		},
		{
			name:      "no weak-category fit",
			candidate: schema.CandidateScore{Contributions: map[schema.Category]float64{}},
			expected:  "No weak-category fit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTopContributions(&tt.candidate))
		})
	}
}

func TestWriteWithFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(outputFile, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	}, "Wrote output")
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
