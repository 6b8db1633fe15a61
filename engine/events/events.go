// Package events implements single-pass event handler dispatch.
// Handlers observe engine events; they cannot emit new ones.
package events

import "github.com/nathoo/liferpg/types"

// Event types emitted by the engine.
const (
	QuestGenerated = "quest_generated"
	QuestCompleted = "quest_completed"
	QuestMissed    = "quest_missed"
	LevelUp        = "level_up"
	BuffApplied    = "buff_applied"
	BuffExpired    = "buff_expired"
	DayAdvanced    = "day_advanced"
)

// Types lists every event type in the order above.
var Types = []string{
	QuestGenerated, QuestCompleted, QuestMissed, LevelUp,
	BuffApplied, BuffExpired, DayAdvanced,
}

// Known reports whether eventType is one the engine emits.
func Known(eventType string) bool {
	for _, t := range Types {
		if t == eventType {
			return true
		}
	}
	return false
}

// Dispatch runs every matching handler for each event, in event order then
// handler order. A handler with an empty EventType receives all events.
// Returns the number of handler invocations.
func Dispatch(evts []types.Event, handlers []types.EventHandler) int {
	calls := 0
	for _, event := range evts {
		for _, handler := range handlers {
			if handler.Handle == nil {
				continue
			}
			if handler.EventType != "" && handler.EventType != event.Type {
				continue
			}
			handler.Handle(event)
			calls++
		}
	}
	return calls
}

// Filter returns the events of the given type, in order.
func Filter(evts []types.Event, eventType string) []types.Event {
	var out []types.Event
	for _, e := range evts {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
