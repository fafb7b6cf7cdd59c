package task

import (
	"sort"
	"time"
)

// Projected pairs a task with its due-date classification for display.
type Projected struct {
	Task
	Due DueInfo
}

// Project derives the ordered view for a filter mode at a given moment.
// Completed tasks sink to the bottom, tasks without a due date sort after
// tasks with one, and dated tasks order ascending by calendar date. Ties
// keep their original relative order. The result is a fresh slice built on
// every call; the projection holds no state of its own.
func Project(tasks []Task, filter Filter, now time.Time) []Projected {
	today := Midnight(now)

	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		visible = append(visible, t)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if (a.Due == nil) != (b.Due == nil) {
			return a.Due != nil
		}
		if a.Due != nil && b.Due != nil {
			return dayOrdinal(a.Due.Time) < dayOrdinal(b.Due.Time)
		}
		return false
	})

	out := make([]Projected, len(visible))
	for i, t := range visible {
		out[i] = Projected{Task: t, Due: Classify(t.Due, today)}
	}
	return out
}
