package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/liferpg/engine"
)

func newTestModel() Model {
	return New(engine.New("Tester", engine.WithSeed(7)))
}

func transcript(m Model) string {
	lines := make([]string, len(m.rawLines))
	for i, rl := range m.rawLines {
		lines[i] = rl.text
	}
	return strings.Join(lines, "\n")
}

func submit(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(input)
	next, cmd := m.handleEnter()
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("handleEnter returned %T", next)
	}
	return nm, cmd
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"✔ Completed q0: Drink water (+10 XP)", kindSuccess},
		{"✘ Missed q1: Stretch (-10 XP, streak 1)", kindPenalty},
		{"✘ 3 unfinished quest(s) auto-missed.", kindPenalty},
		{"★ Level up! You are now level 2.", kindLevel},
		{"✦ Power-up: double_xp for 1 day(s)!", kindBuff},
		{"☀ Advanced to Day 2", kindBuff},
		{"Error: Quest 'q9' not found", kindError},
		{"Unknown command: dance.", kindError},
		{"Quests (5):", kindHeading},
		{"Commands:", kindHeading},
		{"  [x] q0   easy   Drink water (+10 XP)", kindQuestClosed},
		{"  [-] q1   medium Stretch (+25 XP)", kindQuestClosed},
		{"  [ ] q2   hard   Deep work (+50 XP)", kindNarrative},
		{"[Goodbye.]", kindSystem},
		{"[trace] Events: 2", kindTrace},
		{"Day 1 | Level 1 | XP 0/100 (100 to next) | Total 0", kindNarrative},
		{"", kindNarrative},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"Finish the quarterly report before the end of the week.", 30,
			"Finish the quarterly report\nbefore the end of the week."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
		{"  [ ] q0 long title", 12, "  [ ] q0\nlong title"},
		{"✔ done ✔ done", 6, "✔ done\n✔ done"},
	}
	for _, tt := range tests {
		if got := wordWrap(tt.text, tt.width); got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestXPBar(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{0, "░░░░░░░░░░"},
		{50, "█████░░░░░"},
		{99, "█████████░"},
		{100, "██████████"},
		{250, "██████████"},
		{-5, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := xpBar(tt.xp, 10); got != tt.want {
			t.Errorf("xpBar(%d) = %q, want %q", tt.xp, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("status")
	h.Push("quest_complete q0")
	h.Push("next_day")

	for _, want := range []string{"next_day", "quest_complete q0", "status", "status"} {
		got, ok := h.Prev()
		if !ok || got != want {
			t.Errorf("Prev() = %q (ok=%v), want %q", got, ok, want)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("status")
	h.Push("quests")

	h.Prev()
	h.Prev()

	if next, ok := h.Next(); !ok || next != "quests" {
		t.Errorf("expected 'quests', got %q (ok=%v)", next, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Last(); ok {
		t.Error("expected no last entry on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c")

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if prev, _ := h.Prev(); prev != "c" {
		t.Errorf("expected 'c', got %q", prev)
	}
	if prev, _ := h.Prev(); prev != "b" {
		t.Errorf("expected 'b', got %q", prev)
	}
	if prev, _ := h.Prev(); prev != "b" {
		t.Errorf("expected 'b' at boundary, got %q", prev)
	}
}

func TestHistory_NoConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("quests")
	h.Push("quests")
	h.Push("status")
	h.Push("quests")

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if last, _ := h.Last(); last != "quests" {
		t.Errorf("Last() = %q", last)
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("status")
	h.Push("quests")

	h.Prev()
	h.Prev()
	h.ResetCursor()

	if prev, ok := h.Prev(); !ok || prev != "quests" {
		t.Errorf("expected 'quests' after reset, got %q", prev)
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel()
	for _, cmd := range []string{"/quit", "/exit"} {
		if _, quit := m.handleMeta(cmd); !quit {
			t.Errorf("expected quit=true for %s", cmd)
		}
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel()
	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}
	joined := strings.Join(output, "\n")
	for _, want := range []string{"/quit", "/trace", "quest_complete", "next_day", "again"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in help output", want)
		}
	}
}

func TestHandleMeta_Trace(t *testing.T) {
	m := newTestModel()

	output, _ := m.handleMeta("/trace")
	if !m.trace || !strings.Contains(output[0], "enabled") {
		t.Errorf("expected trace enabled, got %v", output)
	}
	output, _ = m.handleMeta("/trace")
	if m.trace || !strings.Contains(output[0], "disabled") {
		t.Errorf("expected trace disabled, got %v", output)
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel()
	output, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("unknown command should not quit")
	}
	if !strings.Contains(output[0], "Unknown command: /bogus") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := newTestModel()
	joined := strings.Join(func() []string { o, _ := m.handleMeta("/state"); return o }(), "\n")

	for _, want := range []string{"Day: 1", "Open quests: 5 of 5", "Due tomorrow: 4", "RNG: seed 7"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in state output:\n%s", want, joined)
		}
	}
}

func TestHandleEnter_GameCommand(t *testing.T) {
	m, cmd := submit(t, newTestModel(), "quest_complete q0")
	if cmd != nil {
		t.Error("game command should not return a tea.Cmd")
	}
	out := transcript(m)
	if !strings.Contains(out, "> quest_complete q0") {
		t.Error("expected echoed input")
	}
	if !strings.Contains(out, "✔ Completed q0") {
		t.Errorf("expected completion line, got:\n%s", out)
	}
}

func TestHandleEnter_Again(t *testing.T) {
	m, _ := submit(t, newTestModel(), "quest_complete q0")
	m, _ = submit(t, m, "g")

	if !strings.Contains(transcript(m), "Error: Quest 'q0' is already completed") {
		t.Errorf("expected repeated command to fail, got:\n%s", transcript(m))
	}
	if m.history.Len() != 1 {
		t.Errorf("again should not be recorded, history has %d", m.history.Len())
	}
}

func TestHandleEnter_NothingToRepeat(t *testing.T) {
	m, _ := submit(t, newTestModel(), "again")
	if !strings.Contains(transcript(m), "Nothing to repeat.") {
		t.Error("expected 'Nothing to repeat.'")
	}
}

func TestHandleEnter_Trace(t *testing.T) {
	m, _ := submit(t, newTestModel(), "/trace")
	m, _ = submit(t, m, "quest_miss q1")

	if !strings.Contains(transcript(m), "[trace]   quest_missed") {
		t.Errorf("expected trace lines, got:\n%s", transcript(m))
	}
}

func TestHandleEnter_TraceSingleEventType(t *testing.T) {
	m, _ := submit(t, newTestModel(), "/trace quest_completed")
	m, _ = submit(t, m, "quest_complete q0")

	out := transcript(m)
	if !strings.Contains(out, "[trace]   quest_completed") {
		t.Errorf("expected quest_completed trace, got:\n%s", out)
	}

	m, _ = submit(t, m, "next_day")
	if strings.Contains(transcript(m), "[trace]   day_advanced") {
		t.Error("other event types should be filtered out")
	}
}

func TestHandleMeta_TraceUnknownEventType(t *testing.T) {
	m := newTestModel()
	output, _ := m.handleMeta("/trace nope")
	if m.trace || !strings.Contains(output[0], "Unknown event type") {
		t.Errorf("expected rejection, got %v (trace=%v)", output, m.trace)
	}
}

func TestHandleEnter_ExitQuits(t *testing.T) {
	m, cmd := submit(t, newTestModel(), "exit")
	if !m.quitting || cmd == nil {
		t.Error("exit should quit the program")
	}
	if !strings.Contains(transcript(m), "Exiting game...") {
		t.Error("expected exit message")
	}
}

func TestHandleEnter_Blank(t *testing.T) {
	m, _ := submit(t, newTestModel(), "   ")
	if len(m.rawLines) != 0 {
		t.Errorf("blank input should print nothing, got %d lines", len(m.rawLines))
	}
}

func TestInitialOutput(t *testing.T) {
	m := newTestModel()
	msg, ok := m.initialOutput()().(gameOutputMsg)
	if !ok {
		t.Fatal("expected gameOutputMsg")
	}
	joined := strings.Join(msg.lines, "\n")
	if !strings.Contains(joined, "Welcome, Tester! 5 quest(s) are waiting.") {
		t.Errorf("unexpected intro:\n%s", joined)
	}
	if !strings.Contains(joined, "Quests (5):") {
		t.Error("expected quest listing in intro")
	}
}

func TestStatusBar(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	bar := m.renderStatusBar()
	for _, want := range []string{"Tester", "Day 1", "Lv 1", "0/100"} {
		if !strings.Contains(bar, want) {
			t.Errorf("expected %q in status bar %q", want, bar)
		}
	}
	if !strings.Contains(m.View(), "Tester") {
		t.Error("expected status bar in view")
	}
}
