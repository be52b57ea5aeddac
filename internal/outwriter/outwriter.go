// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCandidates prints ranked candidate scores using the configured output format.
func (ow *OutWriter) WriteCandidates(candidates []schema.CandidateScore, weaknesses *schema.WeaknessProfile, cfg *contract.Config, duration time.Duration) error {
	return WriteCandidateResults(candidates, weaknesses, cfg, duration)
}

// WriteProfile prints a team profile using the configured output format.
func (ow *OutWriter) WriteProfile(profile *schema.TeamProfile, weaknesses *schema.WeaknessProfile, cfg *contract.Config) error {
	return WriteProfileResults(profile, weaknesses, cfg)
}

// WriteTrade prints a trade evaluation using the configured output format.
func (ow *OutWriter) WriteTrade(eval *schema.TradeEvaluation, cfg *contract.Config) error {
	return WriteTradeResults(eval, cfg)
}
