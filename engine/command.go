package engine

import (
	"errors"
	"fmt"

	"github.com/nathoo/liferpg/engine/parser"
	"github.com/nathoo/liferpg/engine/resolve"
	"github.com/nathoo/liferpg/types"
)

// helpEntries describes each command, keyed by its usage.
var helpEntries = []struct{ usage, desc string }{
	{parser.VerbNextDay, "Advance to the next day, auto-miss incomplete quests, generate new quests"},
	{parser.VerbComplete + " <quest_id>", "Complete a quest and gain XP"},
	{parser.VerbMiss + " <quest_id>", "Mark a quest as missed (apply penalties)"},
	{parser.VerbStatus, "Get full game status (player, quests, buffs)"},
	{parser.VerbQuests, "List all active quests"},
	{parser.VerbPlayer, "Get player status only"},
	{parser.VerbHelp, "Show this help message"},
	{parser.VerbExit, "Exit the game"},
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	// 1. Parse input.
	intent := parser.Parse(input, e.aliases)
	resp := types.Response{Verb: intent.Verb}

	// 2. Dispatch on verb.
	switch intent.Verb {
	case "":
		resp.Payload = types.ErrorResult{Error: "No command provided"}
	case parser.VerbNextDay:
		resp.Payload = e.nextDay()
	case parser.VerbComplete:
		id, errRes := e.resolveRef(intent)
		if errRes != nil {
			resp.Payload = *errRes
			break
		}
		resp.Payload = e.completeQuest(id)
	case parser.VerbMiss:
		id, errRes := e.resolveRef(intent)
		if errRes != nil {
			resp.Payload = *errRes
			break
		}
		resp.Payload = e.missQuest(id)
	case parser.VerbStatus:
		resp.Payload = e.snapshot()
	case parser.VerbQuests:
		resp.Payload = e.questList()
	case parser.VerbPlayer:
		resp.Payload = e.playerSnapshot()
	case parser.VerbHelp:
		resp.Payload = e.help()
	case parser.VerbExit:
		resp.Payload = types.MessageResult{Message: "Exiting game..."}
		resp.Quit = true
	default:
		resp.Payload = types.ErrorResult{
			Error: fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", intent.Verb),
		}
	}

	// 3. Collect and dispatch events.
	resp.Events = e.flush()
	return resp
}

// resolveRef maps the intent's quest reference to an ID. An unknown
// reference is passed through so the operation reports it as not found.
func (e *Engine) resolveRef(intent types.Intent) (string, *types.ErrorResult) {
	if intent.Object == "" {
		return "", &types.ErrorResult{Error: fmt.Sprintf("Usage: %s <quest_id>", intent.Verb)}
	}
	id, err := resolve.Resolve(e.State, intent.Object)
	if err != nil {
		var amb *resolve.AmbiguityError
		if errors.As(err, &amb) {
			return "", &types.ErrorResult{Error: amb.Error()}
		}
		return intent.Object, nil
	}
	return id, nil
}

func (e *Engine) help() types.HelpResult {
	cmds := make(map[string]string, len(helpEntries))
	for _, h := range helpEntries {
		cmds[h.usage] = h.desc
	}
	examples := []string{}
	for _, q := range e.State.Quests {
		if len(examples) == 3 {
			break
		}
		examples = append(examples, q.ID)
	}
	return types.HelpResult{Commands: cmds, ExampleQuestIDs: examples}
}
