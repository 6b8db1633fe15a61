// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just alias lookup and filler stripping.
package parser

import (
	"strings"

	"github.com/nathoo/liferpg/types"
)

// Canonical verbs.
const (
	VerbNextDay  = "next_day"
	VerbComplete = "quest_complete"
	VerbMiss     = "quest_miss"
	VerbStatus   = "status"
	VerbQuests   = "quests"
	VerbPlayer   = "player"
	VerbHelp     = "help"
	VerbExit     = "exit"
)

// Verbs lists every canonical verb in help order.
var Verbs = []string{
	VerbNextDay, VerbComplete, VerbMiss, VerbStatus,
	VerbQuests, VerbPlayer, VerbHelp, VerbExit,
}

var verbAliases = map[string]string{
	// Day cycle
	"next":    VerbNextDay,
	"nextday": VerbNextDay,
	"sleep":   VerbNextDay,
	"end":     VerbNextDay,

	// Resolution
	"complete": VerbComplete,
	"done":     VerbComplete,
	"finish":   VerbComplete,
	"c":        VerbComplete,
	"miss":     VerbMiss,
	"skip":     VerbMiss,
	"fail":     VerbMiss,
	"m":        VerbMiss,

	// Views
	"list":  VerbQuests,
	"ls":    VerbQuests,
	"q":     VerbQuests,
	"me":    VerbPlayer,
	"p":     VerbPlayer,
	"stats": VerbPlayer,

	// Misc
	"h":    VerbHelp,
	"?":    VerbHelp,
	"quit": VerbExit,
}

var fillers = map[string]bool{
	"the": true, "a": true, "an": true, "quest": true,
}

// IsVerb reports whether v is a canonical verb.
func IsVerb(v string) bool {
	for _, verb := range Verbs {
		if verb == v {
			return true
		}
	}
	return false
}

// Parse converts a raw command string into an Intent. Extra single-word
// aliases, which may be nil, are consulted before the built-in table and
// must map to canonical verbs.
func Parse(input string, extra map[string]string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Handle multi-word verb phrases before alias lookup.
	words = expandMultiWordVerbs(words)

	if alias, ok := extra[words[0]]; ok {
		words[0] = alias
	} else if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	return types.Intent{
		Verb:   words[0],
		Object: strings.Join(stripFillers(words[1:]), " "),
	}
}

// expandMultiWordVerbs handles "next day", "quest complete", "mark done" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "next", "end":
		if words[1] == "day" {
			return append([]string{VerbNextDay}, words[2:]...)
		}
	case "quest":
		switch words[1] {
		case "complete", "done":
			return append([]string{VerbComplete}, words[2:]...)
		case "miss", "skip":
			return append([]string{VerbMiss}, words[2:]...)
		}
	case "mark":
		switch words[1] {
		case "done", "complete":
			return append([]string{VerbComplete}, words[2:]...)
		case "missed":
			return append([]string{VerbMiss}, words[2:]...)
		}
	case "show", "list":
		if words[1] == "quests" {
			return append([]string{VerbQuests}, words[2:]...)
		}
		if words[1] == "player" || words[1] == "stats" {
			return append([]string{VerbPlayer}, words[2:]...)
		}
	}

	return words
}

// stripFillers removes articles and the word "quest" from the reference.
func stripFillers(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !fillers[w] {
			result = append(result, w)
		}
	}
	return result
}
