package task

import (
	"testing"
	"time"
)

func TestProjectOrdering(t *testing.T) {
	now := time.Date(2024, time.January, 8, 12, 0, 0, 0, time.UTC)

	// Deliberately scrambled insertion order.
	tasks := []Task{
		{ID: 1, Text: "later", Due: mustDate(t, "2024-01-10")},
		{ID: 2, Text: "finished", Completed: true, Due: mustDate(t, "2024-01-01")},
		{ID: 3, Text: "no date"},
		{ID: 4, Text: "sooner", Due: mustDate(t, "2024-01-05")},
	}

	got := Project(tasks, FilterAll, now)
	wantIDs := []int{4, 1, 3, 2}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d tasks, got %d", len(wantIDs), len(got))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
		}
	}
}

func TestProjectStability(t *testing.T) {
	now := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{ID: 1, Text: "first no-date"},
		{ID: 2, Text: "tied a", Due: mustDate(t, "2024-01-05")},
		{ID: 3, Text: "second no-date"},
		{ID: 4, Text: "tied b", Due: mustDate(t, "2024-01-05")},
	}

	got := Project(tasks, FilterAll, now)
	wantIDs := []int{2, 4, 1, 3}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
		}
	}
}

func TestProjectFilters(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		{ID: 1, Text: "open"},
		{ID: 2, Text: "done", Completed: true},
	}

	active := Project(tasks, FilterActive, now)
	if len(active) != 1 || active[0].ID != 1 {
		t.Fatalf("active filter: expected only task 1, got %+v", active)
	}

	completed := Project(tasks, FilterCompleted, now)
	if len(completed) != 1 || completed[0].ID != 2 {
		t.Fatalf("completed filter: expected only task 2, got %+v", completed)
	}

	all := Project(tasks, FilterAll, now)
	if len(all) != 2 {
		t.Fatalf("all filter: expected 2 tasks, got %d", len(all))
	}
}

func TestProjectDoesNotAliasInput(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		{ID: 1, Text: "a", Completed: true},
		{ID: 2, Text: "b"},
	}

	_ = Project(tasks, FilterAll, now)
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Fatalf("projection reordered the input slice: %+v", tasks)
	}
}

func TestProjectClassifiesAgainstOneDay(t *testing.T) {
	now := time.Date(2024, time.June, 15, 8, 30, 0, 0, time.UTC)
	tasks := []Task{
		{ID: 1, Text: "past", Due: mustDate(t, "2024-06-14")},
		{ID: 2, Text: "today", Due: mustDate(t, "2024-06-15")},
	}

	got := Project(tasks, FilterAll, now)
	if got[0].Due.Status != StatusOverdue {
		t.Fatalf("expected overdue, got %q", got[0].Due.Status)
	}
	if got[1].Due.Status != StatusDueToday {
		t.Fatalf("expected due-today, got %q", got[1].Due.Status)
	}
}

func TestFilterNextCycles(t *testing.T) {
	f := FilterAll
	seen := []Filter{f.Next(), f.Next().Next(), f.Next().Next().Next()}
	want := []Filter{FilterActive, FilterCompleted, FilterAll}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle step %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}
