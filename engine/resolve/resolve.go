// Package resolve maps quest references from parsed intents to quest IDs.
package resolve

import (
	"fmt"
	"strings"

	"github.com/nathoo/liferpg/engine/state"
	"github.com/nathoo/liferpg/types"
)

// AmbiguityError indicates multiple quests matched a reference.
type AmbiguityError struct {
	Ref        string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("Which quest do you mean by %q? (%s)", e.Ref, strings.Join(e.Candidates, ", "))
}

// NotFoundError indicates no quest matched a reference.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Quest '%s' not found", e.Ref)
}

// Resolve maps a quest reference to a quest ID. A reference is tried, in
// order, as an exact ID, a quest number ("3" or "#3"), then as a title.
// Title matching accepts the whole title, any word of it, a title prefix,
// or several words each starting a title word; when several quests match,
// open quests are preferred.
func Resolve(s *types.State, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", &NotFoundError{Ref: ref}
	}

	// 1. Exact ID match.
	if q := state.FindQuest(s, ref); q != nil {
		return q.ID, nil
	}

	// 2. Quest number.
	if n := strings.TrimPrefix(ref, "#"); isDigits(n) {
		if q := state.FindQuest(s, "q"+n); q != nil {
			return q.ID, nil
		}
		return "", &NotFoundError{Ref: ref}
	}

	// 3. Title match.
	var matches []types.Quest
	for _, q := range s.Quests {
		if matchesTitle(q.Title, ref) {
			matches = append(matches, q)
		}
	}
	if len(matches) > 1 {
		var open []types.Quest
		for _, q := range matches {
			if !state.IsResolved(q) {
				open = append(open, q)
			}
		}
		if len(open) > 0 {
			matches = open
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Ref: ref}
	case 1:
		return matches[0].ID, nil
	default:
		ids := make([]string, len(matches))
		for i, q := range matches {
			ids[i] = q.ID
		}
		return "", &AmbiguityError{Ref: ref, Candidates: ids}
	}
}

// matchesTitle checks a lower-cased reference against a title
// (case-insensitive): exact, any whole word, or prefix. A multi-word
// reference matches when each of its words starts some word of the title,
// so "drink water" finds "Drink 8 glasses of water".
func matchesTitle(title, ref string) bool {
	titleLower := strings.ToLower(title)
	if titleLower == ref || strings.HasPrefix(titleLower, ref) {
		return true
	}
	words := titleWords(titleLower)
	refWords := strings.Fields(ref)
	if len(refWords) == 1 {
		// Word-based partial match: "water" matches "Drink 8 glasses of water".
		for _, word := range words {
			if word == ref {
				return true
			}
		}
		return false
	}
	for _, rw := range refWords {
		if !anyHasPrefix(words, rw) {
			return false
		}
	}
	return true
}

func titleWords(title string) []string {
	fields := strings.Fields(title)
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".,!?:()")
	}
	return fields
}

func anyHasPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
