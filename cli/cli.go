// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Life RPG engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/liferpg/engine"
	"github.com/nathoo/liferpg/engine/events"
	"github.com/nathoo/liferpg/engine/report"
	"github.com/nathoo/liferpg/types"
)

const rule = "======================================================================"

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Format    report.Format
	Trace      bool
	TraceEvent string // when set, trace only events of this type
	EchoInput  bool   // echo each input line after the prompt (for script playback)
	lastCmd    string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine, printing JSON.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Format: report.FormatJSON,
	}
}

// Run starts the game loop: banner, then prompt → input → dispatch →
// output until exit or end of input.
func (c *CLI) Run() {
	c.printLine("")
	c.printLine(rule)
	c.printLine("🎮 LIFE RPG GAME MASTER - Interactive Mode")
	c.printLine(rule)
	c.printLine(fmt.Sprintf("Welcome, %s!", c.Engine.PlayerStatus().Name))
	c.printLine("Type 'help' for available commands.")
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		c.print(">>> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		resp := c.Engine.Step(input)
		c.printResponse(resp)

		if c.Trace {
			c.printTrace(resp)
		}
		if resp.Quit {
			return
		}
	}
}

// DemoCommands is the scripted walkthrough run by RunDemo.
var DemoCommands = []struct {
	Command     string
	Description string
}{
	{"status", "Check initial status"},
	{"quests", "List active quests"},
	{"quest_complete q0", "Complete first quest"},
	{"quest_complete q1", "Complete second quest"},
	{"quest_miss q2", "Miss a quest"},
	{"player", "Check player status"},
	{"next_day", "Advance to next day"},
	{"quests", "List new quests"},
}

// RunDemo plays DemoCommands, printing each command and its result.
func (c *CLI) RunDemo() {
	c.printLine("")
	c.printLine(rule)
	c.printLine("🎮 LIFE RPG GAME MASTER - Demo Session")
	c.printLine(rule)
	for _, dc := range DemoCommands {
		c.printLine("")
		c.printLine("📍 Command: " + dc.Command)
		c.printLine("📝 " + dc.Description)
		c.printLine(strings.Repeat("-", len(rule)))
		c.printResponse(c.Engine.Step(dc.Command))
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/format":
		c.cmdFormat(arg)

	case "/trace":
		c.cmdTrace(arg)

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

// cmdTrace toggles tracing, or with an event type traces only that type.
func (c *CLI) cmdTrace(eventType string) {
	if eventType != "" {
		if !events.Known(eventType) {
			c.printSystem(fmt.Sprintf("Unknown event type: %s.", eventType))
			return
		}
		c.Trace = true
		c.TraceEvent = eventType
		c.printSystem(fmt.Sprintf("Tracing %s events.", eventType))
		return
	}
	c.Trace = !c.Trace
	c.TraceEvent = ""
	if c.Trace {
		c.printSystem("Trace output enabled.")
	} else {
		c.printSystem("Trace output disabled.")
	}
}

func (c *CLI) cmdFormat(name string) {
	if name == "" {
		c.printSystem(fmt.Sprintf("Output format: %s.", c.Format))
		return
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		c.printSystem(err.Error())
		return
	}
	c.Format = f
	c.printSystem(fmt.Sprintf("Output format set to %s.", f))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit            Exit game",
		"  /help            Show this help",
		"  /state           Debug: dump session state",
		"  /trace [event]   Toggle event trace output, or trace one event type",
		"  /format [name]   Show or set output format (json, yaml, text)",
		"",
		"Game commands:",
		"  next_day (next, sleep)           Advance to the next day",
		"  quest_complete <ref> (done, c)   Complete a quest",
		"  quest_miss <ref> (miss, skip)    Mark a quest as missed",
		"  status                           Full game status",
		"  quests (ls)                      List active quests",
		"  player (me, stats)               Player status",
		"  help                             Command summary",
		"  again (g)                        Repeat your last command",
		"",
		"A <ref> is a quest id (q3), a number (3), or a word from the title.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.Session()
	c.printSystem(fmt.Sprintf("Session: %s", s.SessionID))
	c.printSystem(fmt.Sprintf("Day: %d", s.Day))
	c.printSystem(fmt.Sprintf("Quests: %d open of %d, %d due tomorrow", s.OpenQuests, s.PoolSize, s.NextDayQuests))
	c.printSystem(fmt.Sprintf("Quest counter: %d", s.QuestCounter))
	c.printSystem(fmt.Sprintf("RNG: seed %d, position %d", s.RNGSeed, s.RNGPosition))
	c.printSystem(fmt.Sprintf("Buffs: %s", report.BuffSummary(c.Engine.PlayerStatus().ActiveBuffs)))
}

func (c *CLI) printTrace(resp types.Response) {
	evts := resp.Events
	if c.TraceEvent != "" {
		evts = events.Filter(evts, c.TraceEvent)
	}
	if len(evts) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(evts)))
	for _, e := range evts {
		c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
}

func (c *CLI) printResponse(resp types.Response) {
	data, err := report.Encode(resp.Payload, c.Format)
	if err != nil {
		c.printSystem(fmt.Sprintf("Output failed: %v", err))
		return
	}
	c.printLine(string(data))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
