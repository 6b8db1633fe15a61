package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	stylePenalty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleLevel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleBuff = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	styleQuestDone = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Strikethrough(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleXPFilled = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeading
	kindSuccess
	kindPenalty
	kindLevel
	kindBuff
	kindQuestClosed
	kindSystem
	kindError
	kindTrace
)

// classifyLine picks a style from the leading marker of a rendered line.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "[trace]"):
		return kindTrace
	case strings.HasPrefix(trimmed, "[x]"), strings.HasPrefix(trimmed, "[-]"):
		return kindQuestClosed
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Error:"), strings.HasPrefix(line, "Unknown command"):
		return kindError
	case strings.HasPrefix(line, "✔"):
		return kindSuccess
	case strings.HasPrefix(line, "✘"):
		return kindPenalty
	case strings.HasPrefix(line, "★"):
		return kindLevel
	case strings.HasPrefix(line, "✦"), strings.HasPrefix(line, "☀"):
		return kindBuff
	case strings.HasPrefix(line, "Quests ("), line == "Commands:":
		return kindHeading
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindSuccess:
		return styleSuccess.Render(line)
	case kindPenalty:
		return stylePenalty.Render(line)
	case kindLevel:
		return styleLevel.Render(line)
	case kindBuff:
		return styleBuff.Render(line)
	case kindQuestClosed:
		return styleQuestDone.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
