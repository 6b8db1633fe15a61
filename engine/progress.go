package engine

import "github.com/nathoo/liferpg/types"

// Progression constants.
const (
	XPPerLevel    = 100
	MissPenalty   = -10
	FatigueStreak = 2 // consecutive misses that trigger fatigue
	PowerUpChance = 0.10
)

// ranks is the title ladder, ordered by MinXP.
var ranks = []types.Rank{
	{Level: 1, Name: "Curious Beginner", Icon: "🌱", MinXP: 0},
	{Level: 2, Name: "Thoughtful Learner", Icon: "📚", MinXP: 250},
	{Level: 3, Name: "Insightful Mind", Icon: "💭", MinXP: 750},
	{Level: 4, Name: "Philosopher", Icon: "🧠", MinXP: 1500},
	{Level: 5, Name: "Master of Discourse", Icon: "👑", MinXP: 3000},
	{Level: 6, Name: "Legendary Scholar", Icon: "⭐", MinXP: 7500},
}

// applyLevelUps converts whole hundreds of current XP into levels and
// keeps the remainder. Returns the number of levels gained.
func applyLevelUps(p *types.Player) int {
	gained := p.XP / XPPerLevel
	if gained > 0 {
		p.Level += gained
		p.XP %= XPPerLevel
	}
	return gained
}

// XPToNextLevel returns the XP still needed to reach the next level.
func XPToNextLevel(xp int) int {
	return max(0, XPPerLevel-xp%XPPerLevel)
}

// RankFor returns the highest rank whose threshold totalXP meets.
// Totals below zero map to the first rank.
func RankFor(totalXP int) types.Rank {
	r := ranks[0]
	for _, candidate := range ranks[1:] {
		if totalXP < candidate.MinXP {
			break
		}
		r = candidate
	}
	return r
}
