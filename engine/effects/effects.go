// Package effects implements centralized stat and buff mutation. Every
// mapping from an enum to its effect is a lookup table; the engine decides
// when to apply them.
package effects

import "github.com/nathoo/liferpg/types"

// Stat bounds applied after every mutation.
const (
	StatMin = 0
	StatMax = 100
)

// completionDeltas holds the stat changes granted for completing a quest
// of each difficulty.
var completionDeltas = map[types.Difficulty]types.Stats{
	types.DifficultyEasy: {
		Energy:      5,
		Consistency: 3,
	},
	types.DifficultyMedium: {
		Focus:        5,
		Productivity: 8,
		Energy:       3,
	},
	types.DifficultyHard: {
		Discipline:   10,
		Productivity: 15,
		Focus:        10,
	},
	types.DifficultyBoss: {
		Discipline:   20,
		Productivity: 25,
		Focus:        15,
	},
}

// MissDelta is the stat change applied for every missed quest.
var MissDelta = types.Stats{
	Consistency: -5,
	Energy:      -3,
	Discipline:  -3,
}

// CompletionDelta returns the stat change for completing a quest of the
// given difficulty. ok is false for an unknown difficulty.
func CompletionDelta(d types.Difficulty) (delta types.Stats, ok bool) {
	delta, ok = completionDeltas[d]
	return delta, ok
}

// ApplyStats adds delta to st field by field, then clamps every field to
// [StatMin, StatMax].
func ApplyStats(st *types.Stats, delta types.Stats) {
	st.Health = clamp(st.Health + delta.Health)
	st.Energy = clamp(st.Energy + delta.Energy)
	st.Focus = clamp(st.Focus + delta.Focus)
	st.Discipline = clamp(st.Discipline + delta.Discipline)
	st.Productivity = clamp(st.Productivity + delta.Productivity)
	st.Consistency = clamp(st.Consistency + delta.Consistency)
}

// InBounds reports whether every field of st lies in [StatMin, StatMax].
func InBounds(st types.Stats) bool {
	for _, v := range []int{st.Health, st.Energy, st.Focus, st.Discipline, st.Productivity, st.Consistency} {
		if v < StatMin || v > StatMax {
			return false
		}
	}
	return true
}

func clamp(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
