// Package types defines the shared data structures for the Life RPG engine.
// It holds type definitions only; behavior lives in the engine packages.
package types

import "time"

// Difficulty controls a quest's XP reward and the stats it trains.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyBoss   Difficulty = "boss"
)

// QuestType is the generation rule a quest came from.
type QuestType string

const (
	QuestDaily      QuestType = "daily"
	QuestRandom     QuestType = "random"
	QuestWeeklyBoss QuestType = "weekly_boss"
)

// BuffType identifies a timed modifier on the player.
type BuffType string

const (
	BuffFocusMode   BuffType = "focus_mode"
	BuffDoubleXP    BuffType = "double_xp"
	BuffFatigue     BuffType = "fatigue"
	BuffStreakBonus BuffType = "streak_bonus"
)

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional quest reference
}

// Event is emitted by the engine after a state change.
type Event struct {
	Type string
	Data map[string]any
}

// EventHandler receives events of one type, or all events when EventType is empty.
type EventHandler struct {
	EventType string
	Handle    func(Event)
}

// Quest is a single trackable task instance.
type Quest struct {
	ID          string     `json:"quest_id" yaml:"quest_id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Type        QuestType  `json:"type" yaml:"type"`
	XPReward    int        `json:"xp_reward" yaml:"xp_reward"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Missed      bool       `json:"missed" yaml:"missed"`
	CreatedDay  int        `json:"created_day" yaml:"created_day"`
}

// Buff is a timed XP modifier attached to the player.
type Buff struct {
	Type         BuffType `json:"type" yaml:"type"`
	DurationDays int      `json:"duration_days" yaml:"duration_days"`
	AppliedDay   int      `json:"applied_date" yaml:"applied_date"`
}

// Stats holds the six bounded player attributes. It doubles as a delta
// (positive or negative per field) in the effect tables.
type Stats struct {
	Health       int `json:"health" yaml:"health"`
	Energy       int `json:"energy" yaml:"energy"`
	Focus        int `json:"focus" yaml:"focus"`
	Discipline   int `json:"discipline" yaml:"discipline"`
	Productivity int `json:"productivity" yaml:"productivity"`
	Consistency  int `json:"consistency" yaml:"consistency"`
}

// Player holds the player's runtime state.
type Player struct {
	Name            string
	Level           int
	XP              int
	TotalXPEarned   int
	Stats           Stats
	Buffs           []Buff
	CompletedQuests int
	MissedStreak    int
	CurrentDay      int
	LastQuestMissed bool
}

// State is the complete mutable game state.
type State struct {
	SessionID    string
	Player       Player
	Quests       []Quest // creation order
	QuestCounter int
	RNGSeed      int64
	RNGPosition  int64
}

// Rank is a display title earned through lifetime XP.
type Rank struct {
	Level int    `json:"level" yaml:"level"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	MinXP int    `json:"min_xp" yaml:"min_xp"`
}

// PlayerSnapshot is the caller-facing view of the player.
type PlayerSnapshot struct {
	Name            string `json:"name" yaml:"name"`
	Level           int    `json:"level" yaml:"level"`
	XP              int    `json:"xp" yaml:"xp"`
	XPToNextLevel   int    `json:"xp_to_next_level" yaml:"xp_to_next_level"`
	TotalXPEarned   int    `json:"total_xp_earned" yaml:"total_xp_earned"`
	Stats           Stats  `json:"stats" yaml:"stats"`
	ActiveBuffs     []Buff `json:"active_buffs" yaml:"active_buffs"`
	CompletedQuests int    `json:"completed_quests_count" yaml:"completed_quests_count"`
	MissedStreak    int    `json:"missed_quests_streak" yaml:"missed_quests_streak"`
	CurrentDay      int    `json:"current_day" yaml:"current_day"`
	Rank            Rank   `json:"rank" yaml:"rank"`
}

// Snapshot is the full caller-facing game state.
type Snapshot struct {
	SessionID    string         `json:"session_id" yaml:"session_id"`
	Player       PlayerSnapshot `json:"player" yaml:"player"`
	ActiveQuests []Quest        `json:"active_quests" yaml:"active_quests"`
	Timestamp    time.Time      `json:"timestamp" yaml:"timestamp"`
}

// QuestList is the result of listing the quest pool.
type QuestList struct {
	TotalQuests int     `json:"total_quests" yaml:"total_quests"`
	Quests      []Quest `json:"quests" yaml:"quests"`
}

// SessionInfo is the engine's bookkeeping view used by debug commands.
type SessionInfo struct {
	SessionID     string
	Day           int
	QuestCounter  int
	RNGSeed       int64
	RNGPosition   int64
	PoolSize      int
	OpenQuests    int
	NextDayQuests int // quests the next day advance will generate
}

// CompleteResult is the outcome of completing a quest.
type CompleteResult struct {
	Success        bool            `json:"success" yaml:"success"`
	Error          string          `json:"error,omitempty" yaml:"error,omitempty"`
	QuestCompleted *Quest          `json:"quest_completed,omitempty" yaml:"quest_completed,omitempty"`
	XPAwarded      int             `json:"xp_awarded,omitempty" yaml:"xp_awarded,omitempty"`
	LevelsGained   int             `json:"levels_gained,omitempty" yaml:"levels_gained,omitempty"`
	PlayerStats    *PlayerSnapshot `json:"player_stats,omitempty" yaml:"player_stats,omitempty"`
}

// MissResult is the outcome of missing a quest.
type MissResult struct {
	Success      bool            `json:"success" yaml:"success"`
	Error        string          `json:"error,omitempty" yaml:"error,omitempty"`
	QuestMissed  *Quest          `json:"quest_missed,omitempty" yaml:"quest_missed,omitempty"`
	XPPenalty    int             `json:"xp_penalty,omitempty" yaml:"xp_penalty,omitempty"`
	MissedStreak int             `json:"missed_streak,omitempty" yaml:"missed_streak,omitempty"`
	PlayerStats  *PlayerSnapshot `json:"player_stats,omitempty" yaml:"player_stats,omitempty"`
}

// DayResult is the outcome of a day advance.
type DayResult struct {
	Success    bool     `json:"success" yaml:"success"`
	Message    string   `json:"message" yaml:"message"`
	AutoMissed int      `json:"incomplete_quests_auto_missed" yaml:"incomplete_quests_auto_missed"`
	GameState  Snapshot `json:"game_state" yaml:"game_state"`
	PowerUp    *Buff    `json:"powerup,omitempty" yaml:"powerup,omitempty"`
}

// HelpResult lists the available commands.
type HelpResult struct {
	Commands        map[string]string `json:"commands" yaml:"commands"`
	ExampleQuestIDs []string          `json:"example_quest_ids" yaml:"example_quest_ids"`
}

// MessageResult carries a plain informational message.
type MessageResult struct {
	Message string `json:"message" yaml:"message"`
}

// ErrorResult reports a command the engine could not run.
type ErrorResult struct {
	Error string `json:"error" yaml:"error"`
}

// Response is the output of a single command step.
type Response struct {
	Verb    string
	Payload any
	Events  []Event
	Quit    bool
}
