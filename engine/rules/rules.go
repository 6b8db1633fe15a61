// Package rules defines which quests a day produces: the generation
// schedule, the per-difficulty rewards, and the static flavor pools.
package rules

import "github.com/nathoo/liferpg/types"

// XP rewards by difficulty, fixed at quest creation.
var xpRewards = map[types.Difficulty]int{
	types.DifficultyEasy:   10,
	types.DifficultyMedium: 25,
	types.DifficultyHard:   50,
	types.DifficultyBoss:   150,
}

// DailyDifficulties are the tiers a daily quest may roll.
var DailyDifficulties = []types.Difficulty{
	types.DifficultyEasy,
	types.DifficultyMedium,
	types.DifficultyHard,
}

// Rule produces Count quests of one type on days where When holds.
type Rule struct {
	Type  types.QuestType
	Count int
	When  Condition
}

// Schedule is the generation rule set, evaluated in order every day.
var Schedule = []Rule{
	{Type: types.QuestDaily, Count: 3, When: Always},
	{Type: types.QuestRandom, Count: 1, When: Always},
	{Type: types.QuestWeeklyBoss, Count: 1, When: WeekStart},
}

// XPReward returns the reward for a difficulty. Unknown tiers give 0.
func XPReward(d types.Difficulty) int {
	return xpRewards[d]
}

// ForDay returns the rules that fire on the given day, in schedule order.
func ForDay(day int) []Rule {
	var out []Rule
	for _, r := range Schedule {
		if r.When(day) {
			out = append(out, r)
		}
	}
	return out
}

// QuestsForDay returns the total number of quests generated on a day.
func QuestsForDay(day int) int {
	n := 0
	for _, r := range ForDay(day) {
		n += r.Count
	}
	return n
}
