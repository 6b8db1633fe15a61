// Package report encodes engine results for output: JSON (the canonical
// shape), YAML, or human-readable text lines.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/liferpg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatText}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or text)", name)
}

// Encode renders v in the given format. JSON and YAML use two-space indent.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	case FormatText:
		return []byte(strings.Join(Text(v), "\n")), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// Text renders a result as display lines.
func Text(v any) []string {
	switch r := v.(type) {
	case types.CompleteResult:
		return completeLines(r)
	case types.MissResult:
		return missLines(r)
	case types.DayResult:
		return dayLines(r)
	case types.Snapshot:
		out := PlayerLines(r.Player)
		return append(out, QuestLines(r.ActiveQuests)...)
	case types.PlayerSnapshot:
		return PlayerLines(r)
	case types.QuestList:
		return QuestLines(r.Quests)
	case types.HelpResult:
		return helpLines(r)
	case types.MessageResult:
		return []string{r.Message}
	case types.ErrorResult:
		return []string{"Error: " + r.Error}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

func completeLines(r types.CompleteResult) []string {
	if !r.Success {
		return []string{"Error: " + r.Error}
	}
	q := r.QuestCompleted
	out := []string{fmt.Sprintf("✔ Completed %s: %s (+%d XP)", q.ID, q.Title, r.XPAwarded)}
	if r.LevelsGained > 0 && r.PlayerStats != nil {
		out = append(out, fmt.Sprintf("★ Level up! You are now level %d.", r.PlayerStats.Level))
	}
	if r.PlayerStats != nil {
		out = append(out, xpLine(*r.PlayerStats))
	}
	return out
}

func missLines(r types.MissResult) []string {
	if !r.Success {
		return []string{"Error: " + r.Error}
	}
	q := r.QuestMissed
	out := []string{fmt.Sprintf("✘ Missed %s: %s (%d XP, streak %d)", q.ID, q.Title, r.XPPenalty, r.MissedStreak)}
	if r.PlayerStats != nil {
		out = append(out, xpLine(*r.PlayerStats))
	}
	return out
}

func dayLines(r types.DayResult) []string {
	out := []string{"☀ " + r.Message}
	if r.AutoMissed > 0 {
		out = append(out, fmt.Sprintf("✘ %d unfinished quest(s) auto-missed.", r.AutoMissed))
	}
	if r.PowerUp != nil {
		out = append(out, fmt.Sprintf("✦ Power-up: %s for %d day(s)!", r.PowerUp.Type, r.PowerUp.DurationDays))
	}
	out = append(out, xpLine(r.GameState.Player))
	return append(out, QuestLines(r.GameState.ActiveQuests)...)
}

// PlayerLines renders the player view.
func PlayerLines(p types.PlayerSnapshot) []string {
	st := p.Stats
	return []string{
		fmt.Sprintf("%s %s, Level %d %s", p.Rank.Icon, p.Name, p.Level, p.Rank.Name),
		xpLine(p),
		fmt.Sprintf("Stats: health %d, energy %d, focus %d, discipline %d, productivity %d, consistency %d",
			st.Health, st.Energy, st.Focus, st.Discipline, st.Productivity, st.Consistency),
		"Buffs: " + BuffSummary(p.ActiveBuffs),
		fmt.Sprintf("Completed %d | Miss streak %d", p.CompletedQuests, p.MissedStreak),
	}
}

func xpLine(p types.PlayerSnapshot) string {
	return fmt.Sprintf("Day %d | Level %d | XP %d/100 (%d to next) | Total %d",
		p.CurrentDay, p.Level, p.XP, p.XPToNextLevel, p.TotalXPEarned)
}

// BuffSummary renders buffs as "double_xp (1d), fatigue (2d)" or "none".
func BuffSummary(buffs []types.Buff) string {
	if len(buffs) == 0 {
		return "none"
	}
	parts := make([]string, len(buffs))
	for i, b := range buffs {
		parts[i] = fmt.Sprintf("%s (%dd)", b.Type, b.DurationDays)
	}
	return strings.Join(parts, ", ")
}

// QuestLines renders the quest pool with a status box per quest.
func QuestLines(qs []types.Quest) []string {
	out := []string{fmt.Sprintf("Quests (%d):", len(qs))}
	for _, q := range qs {
		box := "[ ]"
		switch {
		case q.Completed:
			box = "[x]"
		case q.Missed:
			box = "[-]"
		}
		out = append(out, fmt.Sprintf("  %s %-4s %-6s %s (+%d XP)", box, q.ID, q.Difficulty, q.Title, q.XPReward))
	}
	return out
}

func helpLines(r types.HelpResult) []string {
	names := make([]string, 0, len(r.Commands))
	for name := range r.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	out := []string{"Commands:"}
	for _, name := range names {
		out = append(out, fmt.Sprintf("  %-15s %s", name, r.Commands[name]))
	}
	if len(r.ExampleQuestIDs) > 0 {
		out = append(out, "Example quest IDs: "+strings.Join(r.ExampleQuestIDs, ", "))
	}
	return out
}
