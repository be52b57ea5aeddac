// Package narrate assembles prompt context strings for AI collaborators.
// It is pure string assembly over engine output; no AI client, no network.
package narrate

import (
	"fmt"
	"strings"

	"github.com/hoopsight/frontoffice/schema"
)

const scoutHeader = `You are an elite fantasy basketball general manager and data analyst.
Your goal is to provide a concise, high-impact scout report for a category league.

LEAGUE RULES:
- This is a category league (pts, reb, ast, stl, blk, tov, 3pm, fg_pct, ft_pct).
- Victory is determined by winning the majority of categories.
- STRATEGY: prioritize weak categories that a single pickup could flip.
- Do not chase categories that are lost by a landslide.`

const scoutTask = `YOUR TASK:
1. Compare the underperformers on the current roster with the ranked targets above.
2. For each recommendation, name the weak categories it addresses and a drop target
   from the roster with a clear justification.
3. Use a professional, tactical tone. Avoid flowery prose.`

const tradeTask = `ANALYSIS INSTRUCTIONS:
Act as a ruthless fantasy basketball general manager. Compare the two sides based on:
1. Statistical impact: the per-category net deltas above.
2. Need fit: whether the incoming players address each side's weak categories.
3. Risk: flag any listed risk signals on incoming players.
4. Verdict: accept, reject, or counter.`

// ScoutContext builds the scout-report prompt context from a roster
// profile, its weakness ranking, and the ranked candidate list.
func ScoutContext(team *schema.TeamSnapshot, profile *schema.TeamProfile, weaknesses *schema.WeaknessProfile, candidates []schema.CandidateScore) string {
	var b strings.Builder
	b.WriteString(scoutHeader)
	b.WriteString("\n\nCURRENT ROSTER:\n")
	writeRoster(&b, team)

	b.WriteString("\nCATEGORY PROFILE:\n")
	writeProfileLines(&b, profile)

	b.WriteString("\nWEAKNESSES, MOST SEVERE FIRST:\n")
	writeWeaknessLines(&b, weaknesses)

	b.WriteString("\nRANKED WAIVER TARGETS:\n")
	writeCandidateLines(&b, candidates)

	b.WriteString("\n")
	b.WriteString(scoutTask)
	b.WriteString("\n")
	return b.String()
}

// TradeContext builds the trade-evaluation prompt context from a
// structured evaluation and the snapshot rosters involved.
func TradeContext(snapshot *schema.LeagueSnapshot, eval *schema.TradeEvaluation) string {
	var b strings.Builder
	b.WriteString("TRADE EVALUATION REQUEST\n\n")

	for _, side := range []schema.TradeSide{eval.SideA, eval.SideB} {
		fmt.Fprintf(&b, "Side %s receives: %s\n", side.TeamID, playerNames(snapshot, side.Incoming))
		fmt.Fprintf(&b, "Side %s sends: %s\n", side.TeamID, playerNames(snapshot, side.Outgoing))
	}

	b.WriteString("\nPER-CATEGORY NET DELTAS:\n")
	for _, side := range []schema.TradeSide{eval.SideA, eval.SideB} {
		fmt.Fprintf(&b, "- %s:", side.TeamID)
		for _, cat := range schema.AllCategories {
			v, ok := side.NetDelta[cat]
			if !ok || !v.Known {
				continue
			}
			fmt.Fprintf(&b, " %s %+.2f", cat, v.Value)
		}
		fmt.Fprintf(&b, " (need gain %+.2f)\n", side.NeedGain)
	}

	fmt.Fprintf(&b, "\nFAIRNESS SCORE: %+.2f (positive favors %s)\n", eval.Fairness, eval.SideA.TeamID)

	if len(eval.RiskFlags) > 0 {
		b.WriteString("\nRISK SIGNALS:\n")
		for _, flag := range eval.RiskFlags {
			fmt.Fprintf(&b, "- %s going to %s [%s]: %s\n", flag.PlayerID, flag.ToTeam, flag.Severity, flag.Description)
		}
	}

	b.WriteString("\n")
	b.WriteString(tradeTask)
	b.WriteString("\n")
	return b.String()
}

// writeRoster emits one line per rostered player with their most recent
// window's stat line.
func writeRoster(b *strings.Builder, team *schema.TeamSnapshot) {
	if team == nil || len(team.Roster) == 0 {
		b.WriteString("- No roster available\n")
		return
	}
	for _, p := range team.Roster {
		fmt.Fprintf(b, "- %s (%s)%s", p.Name, schema.FormatPositions(p.Positions), statusSuffix(p.Records))
		if line := formatStatLines(p.Records); line != "" {
			fmt.Fprintf(b, ": %s", line)
		}
		b.WriteString("\n")
	}
}

// statusSuffix annotates non-active players the way a wire report would.
func statusSuffix(records []schema.StatRecord) string {
	for _, r := range records {
		if r.Availability != "" && r.Availability != schema.ActiveStatus && r.Availability != schema.UnknownStatus {
			return fmt.Sprintf(" [%s]", r.Availability)
		}
	}
	return ""
}

// formatStatLines renders each window's raw per-game line, most recent
// window first.
func formatStatLines(records []schema.StatRecord) string {
	byWindow := make(map[schema.Window]schema.StatRecord, len(records))
	for _, r := range records {
		byWindow[r.Window] = r
	}

	var parts []string
	for _, w := range schema.AllWindows {
		r, ok := byWindow[w]
		if !ok || len(r.Lines) == 0 {
			continue
		}
		var line strings.Builder
		fmt.Fprintf(&line, "%s:", w)
		for _, cat := range schema.AllCategories {
			v, known := r.Lines[cat]
			if !known {
				continue
			}
			if cat.IsRate() {
				fmt.Fprintf(&line, " %s %.1f%%", cat, v*100)
			} else {
				fmt.Fprintf(&line, " %.1f %s", v, cat)
			}
		}
		parts = append(parts, line.String())
	}
	return strings.Join(parts, " | ")
}

// writeProfileLines emits the per-category standing in canonical order.
func writeProfileLines(b *strings.Builder, profile *schema.TeamProfile) {
	if profile == nil {
		b.WriteString("- No profile available\n")
		return
	}
	for _, cat := range schema.AllCategories {
		s, ok := profile.Strengths[cat]
		if !ok {
			continue
		}
		if s.Confidence == schema.LowConfidence {
			fmt.Fprintf(b, "- %s: z %+.2f (low confidence, %d reliable players)\n", cat, s.ZScore, s.ReliableCount)
			continue
		}
		fmt.Fprintf(b, "- %s: z %+.2f\n", cat, s.ZScore)
	}
}

// writeWeaknessLines emits the ordered weakness ranking.
func writeWeaknessLines(b *strings.Builder, weaknesses *schema.WeaknessProfile) {
	if weaknesses == nil || len(weaknesses.Weaknesses) == 0 {
		b.WriteString("- No weaknesses detected\n")
		return
	}
	for i, wk := range weaknesses.Weaknesses {
		fmt.Fprintf(b, "%d. %s (z %+.2f, deficit %.2f)\n", i+1, wk.Category, wk.ZScore, wk.Deficit)
	}
	if len(weaknesses.LowConfidence) > 0 {
		fmt.Fprintf(b, "Excluded for low confidence: %s\n", schema.FormatCategories(weaknesses.LowConfidence))
	}
}

// writeCandidateLines emits ranked candidates with their top positive
// contributions so the narrator can reason about category fit.
func writeCandidateLines(b *strings.Builder, candidates []schema.CandidateScore) {
	if len(candidates) == 0 {
		b.WriteString("- No candidates scored\n")
		return
	}
	for i, c := range candidates {
		fmt.Fprintf(b, "%d. %s (%s) score %.2f [%s]", i+1, c.Name, schema.FormatPositions(c.Positions), c.Composite, schema.GetPlainLabel(c.Composite))
		if c.DataCaveat {
			b.WriteString(" (no usable data)\n")
			continue
		}
		if tops := topContributions(c.Contributions); tops != "" {
			fmt.Fprintf(b, " helps: %s", tops)
		}
		b.WriteString("\n")
	}
}

// topContributions lists positive contributions, biggest first.
func topContributions(contributions map[schema.Category]float64) string {
	type entry struct {
		cat   schema.Category
		value float64
	}
	var entries []entry
	for _, cat := range schema.AllCategories {
		if v, ok := contributions[cat]; ok && v > 0 {
			entries = append(entries, entry{cat, v})
		}
	}
	if len(entries) == 0 {
		return ""
	}
	for i := 0; i < len(entries); i++ {
		best := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].value > entries[best].value {
				best = j
			}
		}
		entries[i], entries[best] = entries[best], entries[i]
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %+.2f", e.cat, e.value))
	}
	return strings.Join(parts, ", ")
}

// playerNames resolves player ids to display names where the snapshot
// knows them, falling back to the raw id.
func playerNames(snapshot *schema.LeagueSnapshot, ids []string) string {
	if len(ids) == 0 {
		return "nothing"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id
		if snapshot != nil {
			if p, _, ok := snapshot.FindPlayer(id); ok {
				names[i] = p.Name
			}
		}
	}
	return strings.Join(names, ", ")
}
