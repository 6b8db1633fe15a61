package effects

import (
	"testing"

	"github.com/nathoo/liferpg/types"
)

var allDifficulties = []types.Difficulty{
	types.DifficultyEasy,
	types.DifficultyMedium,
	types.DifficultyHard,
	types.DifficultyBoss,
}

var allBuffs = []types.BuffType{
	types.BuffFocusMode,
	types.BuffDoubleXP,
	types.BuffFatigue,
	types.BuffStreakBonus,
}

func TestCompletionDelta_Exhaustive(t *testing.T) {
	for _, d := range allDifficulties {
		if _, ok := CompletionDelta(d); !ok {
			t.Errorf("no completion delta for %q", d)
		}
	}
	if len(completionDeltas) != len(allDifficulties) {
		t.Errorf("table has %d entries, want %d", len(completionDeltas), len(allDifficulties))
	}
	if _, ok := CompletionDelta("legendary"); ok {
		t.Error("unknown difficulty should not resolve")
	}
}

func TestCompletionDelta_Values(t *testing.T) {
	tests := []struct {
		d    types.Difficulty
		want types.Stats
	}{
		{types.DifficultyEasy, types.Stats{Energy: 5, Consistency: 3}},
		{types.DifficultyMedium, types.Stats{Focus: 5, Productivity: 8, Energy: 3}},
		{types.DifficultyHard, types.Stats{Discipline: 10, Productivity: 15, Focus: 10}},
		{types.DifficultyBoss, types.Stats{Discipline: 20, Productivity: 25, Focus: 15}},
	}
	for _, tt := range tests {
		got, _ := CompletionDelta(tt.d)
		if got != tt.want {
			t.Errorf("CompletionDelta(%q) = %+v, want %+v", tt.d, got, tt.want)
		}
	}
}

func TestApplyStats_ClampsHigh(t *testing.T) {
	st := types.Stats{Health: 100, Energy: 98, Focus: 95, Discipline: 50, Productivity: 90, Consistency: 99}
	ApplyStats(&st, types.Stats{Energy: 5, Focus: 15, Productivity: 25, Consistency: 3})

	want := types.Stats{Health: 100, Energy: 100, Focus: 100, Discipline: 50, Productivity: 100, Consistency: 100}
	if st != want {
		t.Errorf("got %+v, want %+v", st, want)
	}
}

func TestApplyStats_ClampsLow(t *testing.T) {
	st := types.Stats{Health: 10, Energy: 2, Focus: 0, Discipline: 1, Productivity: 0, Consistency: 4}
	ApplyStats(&st, MissDelta)

	want := types.Stats{Health: 10, Energy: 0, Focus: 0, Discipline: 0, Productivity: 0, Consistency: 0}
	if st != want {
		t.Errorf("got %+v, want %+v", st, want)
	}
}

func TestApplyStats_RepeatedMissesStayInBounds(t *testing.T) {
	st := types.Stats{Health: 100, Energy: 100, Focus: 50, Discipline: 50, Productivity: 50, Consistency: 50}
	for i := 0; i < 50; i++ {
		ApplyStats(&st, MissDelta)
		if !InBounds(st) {
			t.Fatalf("out of bounds after %d misses: %+v", i+1, st)
		}
	}
	if st.Consistency != 0 || st.Energy != 0 || st.Discipline != 0 {
		t.Errorf("expected floored stats, got %+v", st)
	}
}

func TestInBounds(t *testing.T) {
	if !InBounds(types.Stats{}) {
		t.Error("all zero should be in bounds")
	}
	if InBounds(types.Stats{Focus: 101}) {
		t.Error("101 should be out of bounds")
	}
	if InBounds(types.Stats{Energy: -1}) {
		t.Error("-1 should be out of bounds")
	}
}
