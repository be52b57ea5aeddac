package contract

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestGetColorLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		score    float64
		expected string
	}{
		{4.2, "Prime"},
		{3.0, "Prime"},
		{1.5, "Strong"},
		{0.5, "Useful"},
		{0.0, "Marginal"},
		{-2.5, "Marginal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetColorLabel(tt.score))
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Jokic", TruncateName("Jokic", 10))
	assert.Equal(t, "Giannis A...", TruncateName("Giannis Antetokounmpo", 12))
	// Widths too small to hold an ellipsis leave the name alone.
	assert.Equal(t, "Curry", TruncateName("Curry", 3))
}

func TestSelectOutputFileStdout(t *testing.T) {
	f, err := SelectOutputFile("")
	assert.NoError(t, err)
	assert.NotNil(t, f)
}
