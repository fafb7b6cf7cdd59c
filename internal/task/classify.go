package task

import "time"

// Status classifies a task's due date against a reference day.
type Status string

const (
	StatusNone     Status = "none"
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due-today"
	StatusUpcoming Status = "upcoming"
)

// DueInfo is the classification result for one task.
type DueInfo struct {
	Status    Status
	Formatted string
}

// Midnight normalizes an instant to the start of its calendar day. Every task
// in one render pass is classified against the same normalized day.
func Midnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// dayOrdinal flattens a calendar day to a comparable int, ignoring the
// location so a UTC-parsed due date compares cleanly against local time.
func dayOrdinal(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Classify derives the temporal status and display string for a due date.
// Pure: same inputs always yield the same result.
func Classify(due *Date, today time.Time) DueInfo {
	if due == nil {
		return DueInfo{Status: StatusNone}
	}
	info := DueInfo{Formatted: due.Display()}
	d, ref := dayOrdinal(due.Time), dayOrdinal(today)
	switch {
	case d < ref:
		info.Status = StatusOverdue
	case d == ref:
		info.Status = StatusDueToday
	default:
		info.Status = StatusUpcoming
	}
	return info
}
