package rules

import "github.com/nathoo/liferpg/types"

// Flavor is a title/description pair.
type Flavor struct {
	Title       string
	Description string
}

// DailyTitles holds five titles per daily difficulty.
var DailyTitles = map[types.Difficulty][]string{
	types.DifficultyEasy: {
		"Drink 8 glasses of water",
		"Do 10-minute meditation",
		"Take a 20-minute walk",
		"Write 3 journal entries",
		"Read 10 pages",
	},
	types.DifficultyMedium: {
		"Complete 1 hour focused work",
		"Workout for 30 minutes",
		"Learn something new for 45 minutes",
		"Organize your workspace",
		"Prepare healthy meals for tomorrow",
	},
	types.DifficultyHard: {
		"Complete a major project milestone",
		"Write 1000+ words of content",
		"Master a new skill (2+ hours)",
		"Deep clean your environment",
		"Have 3 meaningful conversations",
	},
}

// RandomChallenges is the pool for the daily random challenge.
var RandomChallenges = []Flavor{
	{"Unexpected Opportunity", "Seize an unexpected opportunity"},
	{"Challenge Accepted", "Face a personal challenge head-on"},
	{"Help Someone", "Do an act of kindness"},
	{"Quick Win", "Complete something you've been procrastinating on"},
	{"Stretch Goal", "Do something outside your comfort zone"},
}

// BossQuests is the pool for the weekly boss.
var BossQuests = []Flavor{
	{"Weekly Boss: Major Goal", "Complete your main weekly objective"},
	{"Boss Challenge: Leadership", "Lead a team or group towards a goal"},
	{"Boss Challenge: Innovation", "Create something new and meaningful"},
	{"Boss Challenge: Mastery", "Achieve expertise in a skill"},
	{"Boss Challenge: Impact", "Make a significant positive impact"},
}

// DailyDescription synthesizes the description of a daily quest.
func DailyDescription(d types.Difficulty) string {
	return "Daily " + string(d) + " quest"
}
