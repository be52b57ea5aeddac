package schema

import (
	"sort"
	"strings"
)

// equalFold is a trim-tolerant, case-insensitive string comparison used
// for player-name matching.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ParsePositions parses a provider position string like "PG,SG" or
// "C/Util" into Position values, dropping empty parts.
func ParsePositions(s string) []Position {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ' '
	})
	positions := make([]Position, 0, len(fields))
	for _, f := range fields {
		positions = append(positions, Position(f))
	}
	return positions
}

// FormatPositions formats eligible positions as "PG/SG".
func FormatPositions(positions []Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = string(p)
	}
	return strings.Join(parts, "/")
}

// FormatCategories formats categories as "blk, stl".
func FormatCategories(cats []Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// CategoriesEqual compares two category slices, considering them equal
// if they contain the same categories regardless of order.
func CategoriesEqual(a, b []Category) bool {
	if len(a) != len(b) {
		return false
	}

	aSorted := make([]string, len(a))
	for i, c := range a {
		aSorted[i] = string(c)
	}
	sort.Strings(aSorted)

	bSorted := make([]string, len(b))
	for i, c := range b {
		bSorted[i] = string(c)
	}
	sort.Strings(bSorted)

	for i := range aSorted {
		if aSorted[i] != bSorted[i] {
			return false
		}
	}
	return true
}
