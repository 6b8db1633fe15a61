package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/liferpg/engine"
	"github.com/nathoo/liferpg/engine/report"
	"github.com/nathoo/liferpg/types"
)

const xpBarWidth = 10

// xpBar draws progress toward the next level as a fixed-width gauge.
func xpBar(xp, width int) string {
	filled := xp * width / engine.XPPerLevel
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderStatusBar produces a full-width inverted status line showing the
// player, day, level, XP gauge and buffs.
func (m Model) renderStatusBar() string {
	p := m.engine.PlayerStatus()

	left := fmt.Sprintf(" %s %s | Day %d | Lv %d %s", p.Rank.Icon, p.Name, p.CurrentDay, p.Level, p.Rank.Name)
	xp := fmt.Sprintf("%s %d/%d", styleXPFilled.Render(xpBar(p.XP, xpBarWidth)), p.XP, engine.XPPerLevel)
	right := xp + " "

	// Spell out buffs when they fit, otherwise just count them.
	if len(p.ActiveBuffs) > 0 {
		candidate := fmt.Sprintf("Buffs: %s | %s ", report.BuffSummary(p.ActiveBuffs), xp)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Buffs: %d | %s ", len(p.ActiveBuffs), xp)
		}
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// openQuests counts quests still awaiting a resolution.
func openQuests(qs []types.Quest) int {
	n := 0
	for _, q := range qs {
		if !q.Completed && !q.Missed {
			n++
		}
	}
	return n
}
