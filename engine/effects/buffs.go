package effects

import "github.com/nathoo/liferpg/types"

// Buff durations in days.
const (
	FatigueDuration = 3
	PowerUpDuration = 1
)

// xpMultipliers maps each buff type to the factor it applies to awarded XP.
// focus_mode is recognized but has no XP effect.
var xpMultipliers = map[types.BuffType]float64{
	types.BuffFocusMode:   1.0,
	types.BuffDoubleXP:    2.0,
	types.BuffFatigue:     0.8,
	types.BuffStreakBonus: 1.5,
}

// PowerUps is the pool the random day-end power-up is drawn from.
var PowerUps = []types.BuffType{types.BuffFocusMode, types.BuffDoubleXP}

// Multiplier returns the XP factor for a buff type. Unknown types are neutral.
func Multiplier(bt types.BuffType) float64 {
	if m, ok := xpMultipliers[bt]; ok {
		return m
	}
	return 1.0
}

// HasBuff reports whether buffs contains one of type bt.
func HasBuff(buffs []types.Buff, bt types.BuffType) bool {
	for _, b := range buffs {
		if b.Type == bt {
			return true
		}
	}
	return false
}

// ApplyXPModifiers passes base through every buff's multiplier in order and
// truncates the result. Multipliers compose by successive application.
func ApplyXPModifiers(base int, buffs []types.Buff) int {
	xp := float64(base)
	for _, b := range buffs {
		xp *= Multiplier(b.Type)
	}
	return int(xp)
}

// Decay decrements every buff's duration by one day and drops the ones that
// reach zero. Returns the surviving buffs and the expired ones, both in the
// original order. The input slice is not modified.
func Decay(buffs []types.Buff) (active, expired []types.Buff) {
	active = make([]types.Buff, 0, len(buffs))
	for _, b := range buffs {
		b.DurationDays--
		if b.DurationDays > 0 {
			active = append(active, b)
		} else {
			expired = append(expired, b)
		}
	}
	return active, expired
}

// AddFatigue attaches a fatigue debuff unless one is already active.
// Returns true if a buff was added.
func AddFatigue(p *types.Player) bool {
	if HasBuff(p.Buffs, types.BuffFatigue) {
		return false
	}
	p.Buffs = append(p.Buffs, types.Buff{
		Type:         types.BuffFatigue,
		DurationDays: FatigueDuration,
		AppliedDay:   p.CurrentDay,
	})
	return true
}

// AddPowerUp attaches a one-day power-up of the given type and returns it.
func AddPowerUp(p *types.Player, bt types.BuffType) types.Buff {
	b := types.Buff{
		Type:         bt,
		DurationDays: PowerUpDuration,
		AppliedDay:   p.CurrentDay,
	}
	p.Buffs = append(p.Buffs, b)
	return b
}
