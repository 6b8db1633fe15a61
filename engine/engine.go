// Package engine runs the Life RPG game master: quest generation, quest
// completion and misses, day advancement, and the Step() command entry point
// that wires parsing and resolution into those operations.
package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/liferpg/engine/effects"
	"github.com/nathoo/liferpg/engine/events"
	"github.com/nathoo/liferpg/engine/rules"
	"github.com/nathoo/liferpg/engine/state"
	"github.com/nathoo/liferpg/types"
)

// Engine holds one player's game state and the randomness it draws from.
// All public operations are serialized; event handlers run while the engine
// lock is held and must not call back into the engine.
type Engine struct {
	State *types.State

	mu       sync.Mutex
	src      Source
	seed     int64
	seeded   bool
	log      *slog.Logger
	handlers []types.EventHandler
	clock    func() time.Time
	aliases  map[string]string
	pending  []types.Event
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSeed makes quest generation reproducible. A zero seed means the seed
// is derived from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.seed = seed
			e.seeded = true
		}
	}
}

// WithSource replaces the default seeded RNG. Takes precedence over WithSeed.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithHandlers registers event observers.
func WithHandlers(hs ...types.EventHandler) Option {
	return func(e *Engine) { e.handlers = append(e.handlers, hs...) }
}

// WithClock sets the time source used for snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.clock = now }
}

// WithAliases adds user-defined command words, mapped to canonical verbs.
func WithAliases(aliases map[string]string) Option {
	return func(e *Engine) {
		for k, v := range aliases {
			e.aliases[k] = v
		}
	}
}

// New creates an engine for the named player on day 1 and generates the
// first day's quests.
func New(playerName string, opts ...Option) *Engine {
	e := &Engine{
		State:   state.NewState(playerName),
		log:     slog.New(slog.DiscardHandler),
		clock:   time.Now,
		aliases: map[string]string{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.seeded {
		e.seed = e.clock().UnixNano()
	}
	if e.src == nil {
		e.src = NewRNG(e.seed)
	}
	e.State.SessionID = uuid.NewString()
	e.State.RNGSeed = e.seed
	e.log = e.log.With("session", e.State.SessionID)

	e.generateForDay()
	e.flush()
	e.log.Info("session started", "player", playerName, "seed", e.seed)
	return e
}

// CompleteQuest marks an open quest completed, awards buff-modified XP,
// applies level-ups and stat gains, and resets the miss streak.
func (e *Engine) CompleteQuest(questID string) types.CompleteResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	res := e.completeQuest(questID)
	e.flush()
	return res
}

// MissQuest marks an open quest missed and applies the XP penalty, stat
// losses, and fatigue when the miss streak reaches FatigueStreak.
func (e *Engine) MissQuest(questID string) types.MissResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	res := e.missQuest(questID)
	e.flush()
	return res
}

// NextDay closes out the current day and starts the next one.
func (e *Engine) NextDay() types.DayResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	res := e.nextDay()
	e.flush()
	return res
}

// Status returns the full game snapshot.
func (e *Engine) Status() types.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// PlayerStatus returns the player view alone.
func (e *Engine) PlayerStatus() types.PlayerSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playerSnapshot()
}

// ActiveQuests lists every quest in the pool, resolved or not.
func (e *Engine) ActiveQuests() types.QuestList {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.questList()
}

// Session reports the session's bookkeeping counters.
func (e *Engine) Session() types.SessionInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.State
	return types.SessionInfo{
		SessionID:     s.SessionID,
		Day:           s.Player.CurrentDay,
		QuestCounter:  s.QuestCounter,
		RNGSeed:       s.RNGSeed,
		RNGPosition:   s.RNGPosition,
		PoolSize:      len(s.Quests),
		OpenQuests:    len(state.Unresolved(s, true)),
		NextDayQuests: rules.QuestsForDay(s.Player.CurrentDay + 1),
	}
}

// lookup finds an open quest or explains why it can't be resolved.
func (e *Engine) lookup(questID string) (*types.Quest, error) {
	q := state.FindQuest(e.State, questID)
	if q == nil {
		return nil, &QuestError{QuestID: questID, Err: ErrNotFound}
	}
	switch {
	case q.Completed:
		return nil, &QuestError{QuestID: questID, Err: ErrAlreadyResolved, Resolution: "completed"}
	case q.Missed:
		return nil, &QuestError{QuestID: questID, Err: ErrAlreadyResolved, Resolution: "missed"}
	}
	return q, nil
}

func (e *Engine) completeQuest(questID string) types.CompleteResult {
	q, err := e.lookup(questID)
	if err != nil {
		e.log.Debug("complete rejected", "quest", questID, "err", err)
		return types.CompleteResult{Error: err.Error()}
	}

	p := &e.State.Player
	q.Completed = true
	award := effects.ApplyXPModifiers(q.XPReward, p.Buffs)
	p.XP += award
	p.TotalXPEarned += award
	p.CompletedQuests++
	p.MissedStreak = 0
	p.LastQuestMissed = false

	gained := applyLevelUps(p)
	if delta, ok := effects.CompletionDelta(q.Difficulty); ok {
		effects.ApplyStats(&p.Stats, delta)
	}

	e.emit(events.QuestCompleted, map[string]any{"quest": q.ID, "xp": award})
	if gained > 0 {
		e.emit(events.LevelUp, map[string]any{"level": p.Level, "gained": gained})
		e.log.Info("level up", "level", p.Level, "gained", gained)
	}
	e.log.Info("quest completed", "quest", q.ID, "difficulty", q.Difficulty, "xp", award)

	done := *q
	ps := e.playerSnapshot()
	return types.CompleteResult{
		Success:        true,
		QuestCompleted: &done,
		XPAwarded:      award,
		LevelsGained:   gained,
		PlayerStats:    &ps,
	}
}

func (e *Engine) missQuest(questID string) types.MissResult {
	q, err := e.lookup(questID)
	if err != nil {
		e.log.Debug("miss rejected", "quest", questID, "err", err)
		return types.MissResult{Error: err.Error()}
	}

	p := &e.State.Player
	q.Missed = true
	// Current XP floors at zero; the lifetime total takes the full penalty.
	p.XP = max(0, p.XP+MissPenalty)
	p.TotalXPEarned += MissPenalty
	p.MissedStreak++
	p.LastQuestMissed = true
	effects.ApplyStats(&p.Stats, effects.MissDelta)

	e.emit(events.QuestMissed, map[string]any{"quest": q.ID, "streak": p.MissedStreak})
	if p.MissedStreak >= FatigueStreak && effects.AddFatigue(p) {
		e.emit(events.BuffApplied, map[string]any{"buff": string(types.BuffFatigue)})
		e.log.Info("fatigue applied", "streak", p.MissedStreak)
	}
	e.log.Info("quest missed", "quest", q.ID, "streak", p.MissedStreak)

	missed := *q
	ps := e.playerSnapshot()
	return types.MissResult{
		Success:      true,
		QuestMissed:  &missed,
		XPPenalty:    MissPenalty,
		MissedStreak: p.MissedStreak,
		PlayerStats:  &ps,
	}
}

func (e *Engine) nextDay() types.DayResult {
	// 1. Auto-miss every open non-boss quest, in pool order.
	open := state.Unresolved(e.State, false)
	for _, id := range open {
		e.missQuest(id)
	}

	// 2. Age buffs.
	p := &e.State.Player
	active, expired := effects.Decay(p.Buffs)
	p.Buffs = active
	for _, b := range expired {
		e.emit(events.BuffExpired, map[string]any{"buff": string(b.Type)})
	}

	// 3. Roll over and refill the pool.
	p.CurrentDay++
	removed := state.PruneForNewDay(e.State)
	e.generateForDay()

	// 4. Power-up roll.
	var powerUp *types.Buff
	if e.src.Float64() < PowerUpChance {
		bt := effects.PowerUps[e.src.Intn(len(effects.PowerUps))]
		b := effects.AddPowerUp(p, bt)
		powerUp = &b
		e.emit(events.BuffApplied, map[string]any{"buff": string(bt)})
		e.log.Info("power-up granted", "buff", bt)
	}
	e.trackRNG()

	e.emit(events.DayAdvanced, map[string]any{"day": p.CurrentDay, "auto_missed": len(open)})
	e.log.Info("day advanced", "day", p.CurrentDay, "auto_missed", len(open), "pruned", removed)

	return types.DayResult{
		Success:    true,
		Message:    fmt.Sprintf("Advanced to Day %d", p.CurrentDay),
		AutoMissed: len(open),
		GameState:  e.snapshot(),
		PowerUp:    powerUp,
	}
}

func (e *Engine) playerSnapshot() types.PlayerSnapshot {
	p := e.State.Player
	return types.PlayerSnapshot{
		Name:            p.Name,
		Level:           p.Level,
		XP:              p.XP,
		XPToNextLevel:   XPToNextLevel(p.XP),
		TotalXPEarned:   p.TotalXPEarned,
		Stats:           p.Stats,
		ActiveBuffs:     state.CopyBuffs(e.State),
		CompletedQuests: p.CompletedQuests,
		MissedStreak:    p.MissedStreak,
		CurrentDay:      p.CurrentDay,
		Rank:            RankFor(p.TotalXPEarned),
	}
}

func (e *Engine) snapshot() types.Snapshot {
	return types.Snapshot{
		SessionID:    e.State.SessionID,
		Player:       e.playerSnapshot(),
		ActiveQuests: state.CopyQuests(e.State),
		Timestamp:    e.clock(),
	}
}

func (e *Engine) questList() types.QuestList {
	qs := state.CopyQuests(e.State)
	return types.QuestList{TotalQuests: len(qs), Quests: qs}
}

// emit queues an event for the next flush.
func (e *Engine) emit(eventType string, data map[string]any) {
	e.pending = append(e.pending, types.Event{Type: eventType, Data: data})
}

// flush dispatches queued events to handlers and returns them.
func (e *Engine) flush() []types.Event {
	evts := e.pending
	e.pending = nil
	if len(evts) > 0 {
		events.Dispatch(evts, e.handlers)
	}
	return evts
}
