package core

import (
	"fmt"

	"github.com/hoopsight/frontoffice/schema"
)

// DataQualityError signals that an entity had no usable stat window.
// Callers typically skip the entity and surface a caveat instead of a score.
type DataQualityError struct {
	PlayerID string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("no usable stat window for player %q", e.PlayerID)
}

// MissingBaselineError signals that the league baseline omits a
// recognized category the engine needs.
type MissingBaselineError struct {
	Category schema.Category
}

func (e *MissingBaselineError) Error() string {
	return fmt.Sprintf("league baseline missing category %q", e.Category)
}

// IncompleteTradeError signals that one side of a proposed trade has no
// players, leaving nothing to compare.
type IncompleteTradeError struct {
	TeamID string
}

func (e *IncompleteTradeError) Error() string {
	return fmt.Sprintf("trade side %q has no players", e.TeamID)
}

// checkBaseline verifies the baseline covers every recognized category.
func checkBaseline(baseline schema.LeagueBaseline) error {
	for _, c := range schema.AllCategories {
		if _, ok := baseline[c]; !ok {
			return &MissingBaselineError{Category: c}
		}
	}
	return nil
}
