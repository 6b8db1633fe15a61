package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/liferpg/engine"
	"github.com/nathoo/liferpg/engine/events"
	"github.com/nathoo/liferpg/engine/report"
	"github.com/nathoo/liferpg/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool
	isSystem bool
}

// Model is the Bubble Tea model for the Life RPG TUI.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine

	width      int
	height     int
	ready      bool
	trace      bool
	traceEvent string // when set, trace only events of this type
	quitting   bool
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string
	lines    []string
	isSystem bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the welcome text and
// the first quest listing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		list := m.engine.ActiveQuests()
		lines := []string{
			"🎮 LIFE RPG GAME MASTER",
			fmt.Sprintf("Welcome, %s! %d quest(s) are waiting.", m.engine.PlayerStatus().Name, openQuests(list.Quests)),
			"Type 'help' for game commands or /help for the interface.",
			"",
		}
		lines = append(lines, report.QuestLines(list.Quests)...)
		return gameOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := max(m.height-2, 1) // status bar + input line

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.history.ResetCursor()

	if input == "" {
		return m, nil
	}

	// "again" / "g" replays the newest history entry and is not itself recorded.
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		last, ok := m.history.Last()
		if !ok {
			m = m.appendOutput(gameOutputMsg{
				input: input, lines: []string{"Nothing to repeat."}, isSystem: true,
			})
			return m, nil
		}
		input = last
	} else {
		m.history.Push(input)
	}

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	resp := m.engine.Step(input)
	output := report.Text(resp.Payload)
	if m.trace {
		output = append(output, formatTrace(resp, m.traceEvent)...)
	}
	m = m.appendOutput(gameOutputMsg{input: input, lines: output})
	if resp.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendOutput adds lines to the transcript and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := max(m.width, 10)

	styled := make([]string, 0, len(m.rawLines))
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap breaks text at word boundaries to fit width. Leading
// indentation of the first line is kept so quest rows stay aligned.
func wordWrap(text string, width int) string {
	if width <= 0 || len([]rune(text)) <= width {
		return text
	}

	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]
	var b strings.Builder
	b.WriteString(indent)
	lineLen := len(indent)

	for i, word := range strings.Fields(text) {
		wLen := len([]rune(word))
		switch {
		case i == 0:
			b.WriteString(word)
			lineLen += wLen
		case lineLen+1+wLen > width:
			b.WriteString("\n")
			b.WriteString(word)
			lineLen = wLen
		default:
			b.WriteString(" ")
			b.WriteString(word)
			lineLen += 1 + wLen
		}
	}
	return b.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches slash commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		if arg != "" {
			if !events.Known(arg) {
				return []string{fmt.Sprintf("Unknown event type: %s.", arg)}, false
			}
			m.trace = true
			m.traceEvent = arg
			return []string{fmt.Sprintf("Tracing %s events.", arg)}, false
		}
		m.trace = !m.trace
		m.traceEvent = ""
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func cmdHelp() []string {
	return []string{
		"Interface:",
		"  /quit            Exit",
		"  /help            Show this help",
		"  /state           Debug: dump session state",
		"  /trace [event]   Toggle event trace output, or trace one event type",
		"",
		"Game commands:",
		"  next_day (next, sleep)           Advance to the next day",
		"  quest_complete <ref> (done, c)   Complete a quest",
		"  quest_miss <ref> (miss, skip)    Mark a quest as missed",
		"  status | quests | player | help",
		"  again (g)                        Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	s := m.engine.Session()
	return []string{
		fmt.Sprintf("Session: %s", s.SessionID),
		fmt.Sprintf("Day: %d", s.Day),
		fmt.Sprintf("Open quests: %d of %d", s.OpenQuests, s.PoolSize),
		fmt.Sprintf("Due tomorrow: %d", s.NextDayQuests),
		fmt.Sprintf("Quest counter: %d", s.QuestCounter),
		fmt.Sprintf("RNG: seed %d, position %d", s.RNGSeed, s.RNGPosition),
		fmt.Sprintf("History: %d command(s)", m.history.Len()),
	}
}

// formatTrace renders the response's events, limited to eventType when set.
func formatTrace(resp types.Response, eventType string) []string {
	evts := resp.Events
	if eventType != "" {
		evts = events.Filter(evts, eventType)
	}
	if len(evts) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(evts))}
	for _, e := range evts {
		lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
	return lines
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
