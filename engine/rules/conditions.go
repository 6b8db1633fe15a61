package rules

// Condition decides whether a rule fires on a given day.
type Condition func(day int) bool

// WeekLength is the number of days in a boss cycle.
const WeekLength = 7

// Always fires every day.
func Always(int) bool { return true }

// WeekStart fires on the first day of each week: 1, 8, 15, ...
func WeekStart(day int) bool {
	return day%WeekLength == 1
}
