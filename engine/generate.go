package engine

import (
	"fmt"

	"github.com/nathoo/liferpg/engine/events"
	"github.com/nathoo/liferpg/engine/rules"
	"github.com/nathoo/liferpg/types"
)

// generateForDay appends the quests scheduled for the player's current day
// to the pool and returns them.
func (e *Engine) generateForDay() []types.Quest {
	day := e.State.Player.CurrentDay
	var created []types.Quest
	for _, r := range rules.ForDay(day) {
		for i := 0; i < r.Count; i++ {
			q := e.newQuest(r.Type, day)
			e.State.Quests = append(e.State.Quests, q)
			created = append(created, q)
			e.emit(events.QuestGenerated, map[string]any{
				"quest":      q.ID,
				"type":       string(q.Type),
				"difficulty": string(q.Difficulty),
			})
		}
	}
	e.trackRNG()
	e.log.Debug("quests generated", "day", day, "count", len(created))
	return created
}

// newQuest draws flavor for one quest of the given type and assigns the
// next identifier.
func (e *Engine) newQuest(qt types.QuestType, day int) types.Quest {
	var (
		title, desc string
		difficulty  types.Difficulty
	)

	switch qt {
	case types.QuestDaily:
		difficulty = rules.DailyDifficulties[e.src.Intn(len(rules.DailyDifficulties))]
		titles := rules.DailyTitles[difficulty]
		title = titles[e.src.Intn(len(titles))]
		desc = rules.DailyDescription(difficulty)
	case types.QuestRandom:
		f := rules.RandomChallenges[e.src.Intn(len(rules.RandomChallenges))]
		title, desc = f.Title, f.Description
		difficulty = types.DifficultyMedium
	case types.QuestWeeklyBoss:
		f := rules.BossQuests[e.src.Intn(len(rules.BossQuests))]
		title, desc = f.Title, f.Description
		difficulty = types.DifficultyBoss
	}

	q := types.Quest{
		ID:          fmt.Sprintf("q%d", e.State.QuestCounter),
		Title:       title,
		Description: desc,
		Difficulty:  difficulty,
		Type:        qt,
		XPReward:    rules.XPReward(difficulty),
		CreatedDay:  day,
	}
	e.State.QuestCounter++
	return q
}

// trackRNG records the RNG position for the /state view.
func (e *Engine) trackRNG() {
	if rng, ok := e.src.(*RNG); ok {
		e.State.RNGPosition = rng.Position()
	}
}
