// Package state manages the mutable game state: construction, quest pool
// lookups, and the copy helpers used to hand snapshots to callers.
package state

import "github.com/nathoo/liferpg/types"

// Starting attribute values for a fresh player.
var StartingStats = types.Stats{
	Health:       100,
	Energy:       100,
	Focus:        50,
	Discipline:   50,
	Productivity: 50,
	Consistency:  50,
}

// NewState creates a fresh game state for the named player on day 1.
// The quest pool starts empty; generation is the engine's job.
func NewState(playerName string) *types.State {
	return &types.State{
		Player: types.Player{
			Name:       playerName,
			Level:      1,
			Stats:      StartingStats,
			Buffs:      []types.Buff{},
			CurrentDay: 1,
		},
		Quests: []types.Quest{},
	}
}

// FindQuest returns a pointer into the pool for the given ID, or nil.
func FindQuest(s *types.State, questID string) *types.Quest {
	for i := range s.Quests {
		if s.Quests[i].ID == questID {
			return &s.Quests[i]
		}
	}
	return nil
}

// IsResolved reports whether a quest has been completed or missed.
func IsResolved(q types.Quest) bool {
	return q.Completed || q.Missed
}

// Unresolved returns the IDs of open quests in pool order. Weekly boss
// quests are skipped when includeBoss is false.
func Unresolved(s *types.State, includeBoss bool) []string {
	var ids []string
	for _, q := range s.Quests {
		if IsResolved(q) {
			continue
		}
		if !includeBoss && q.Type == types.QuestWeeklyBoss {
			continue
		}
		ids = append(ids, q.ID)
	}
	return ids
}

// PruneForNewDay drops every quest except open weekly bosses. Resolved
// quests go too, so their IDs stop resolving once the day advances.
// Returns the number of quests removed.
func PruneForNewDay(s *types.State) int {
	kept := s.Quests[:0]
	removed := 0
	for _, q := range s.Quests {
		if q.Type == types.QuestWeeklyBoss && !IsResolved(q) {
			kept = append(kept, q)
			continue
		}
		removed++
	}
	s.Quests = kept
	return removed
}

// CopyQuests returns a copy of the quest pool safe to hand out.
func CopyQuests(s *types.State) []types.Quest {
	out := make([]types.Quest, len(s.Quests))
	copy(out, s.Quests)
	return out
}

// CopyBuffs returns a copy of the player's buffs safe to hand out.
func CopyBuffs(s *types.State) []types.Buff {
	out := make([]types.Buff, len(s.Player.Buffs))
	copy(out, s.Player.Buffs)
	return out
}
