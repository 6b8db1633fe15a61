package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/liferpg/engine/parser"
	"github.com/nathoo/liferpg/engine/report"
)

// MaxPlayerName bounds the player name length, in runes.
const MaxPlayerName = 64

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known log levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validate checks compiled settings for allowed values. Warnings are
// carried on the returned Settings when there are no errors.
func validate(s *Settings) error {
	ve := &ValidationError{Warnings: s.Warnings}

	if s.Player != "" {
		if strings.TrimSpace(s.Player) == "" {
			ve.Errors = append(ve.Errors, "player name must not be blank")
		}
		if n := len([]rune(s.Player)); n > MaxPlayerName {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"player name is %d characters, max %d", n, MaxPlayerName))
		}
	}

	if s.HasSeed && s.Seed < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("seed %d must not be negative", s.Seed))
	}

	if s.Format != "" {
		if _, err := report.ParseFormat(s.Format); err != nil {
			ve.Errors = append(ve.Errors, err.Error())
		}
	}

	if s.LogLevel != "" && !validLogLevels[strings.ToLower(s.LogLevel)] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"unknown log_level %q (want debug, info, warn or error)", s.LogLevel))
	}

	// Sorted for stable messages.
	words := make([]string, 0, len(s.Aliases))
	for w := range s.Aliases {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, word := range words {
		verb := s.Aliases[word]
		if word == "" || strings.ContainsAny(word, " \t") {
			ve.Errors = append(ve.Errors, fmt.Sprintf("alias %q must be a single word", word))
			continue
		}
		if !parser.IsVerb(verb) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"alias %q targets unknown command %q", word, verb))
			continue
		}
		if parser.IsVerb(word) {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"alias %q shadows the %s command", word, word))
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	s.Warnings = ve.Warnings
	return nil
}
