package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for quest resolution failures. Match with errors.Is.
var (
	ErrNotFound        = errors.New("quest not found")
	ErrAlreadyResolved = errors.New("quest already resolved")
)

// QuestError reports why a quest could not be completed or missed.
// Resolution is "completed" or "missed" when Err is ErrAlreadyResolved.
type QuestError struct {
	QuestID    string
	Err        error
	Resolution string
}

func (e *QuestError) Error() string {
	if errors.Is(e.Err, ErrAlreadyResolved) {
		return fmt.Sprintf("Quest '%s' is already %s", e.QuestID, e.Resolution)
	}
	return fmt.Sprintf("Quest '%s' not found", e.QuestID)
}

func (e *QuestError) Unwrap() error {
	return e.Err
}
