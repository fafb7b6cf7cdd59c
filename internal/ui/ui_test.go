package ui

import (
	"io"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/config"
	"taskpad/internal/task"
	"taskpad/internal/theme"
)

type memKV struct {
	data map[string][]byte
}

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Close() error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	kv := &memKV{data: make(map[string][]byte)}
	logger := log.New(io.Discard, "", 0)
	store := task.NewStore(kv, logger)
	store.Load()
	pref := theme.NewPreference(kv, logger)
	pref.Load()

	cfg, err := config.LoadOrCreate(t.TempDir() + "/config.toml")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return New(store, pref, cfg)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func addTask(m Model, text, due string) Model {
	m = press(m, runes("a"))
	for _, r := range text {
		m = press(m, runes(string(r)))
	}
	m = press(m, enter)
	for _, r := range due {
		m = press(m, runes(string(r)))
	}
	return press(m, enter)
}

func TestAddFlow(t *testing.T) {
	m := addTask(newTestModel(t), "buy milk", "")

	view := m.View()
	if !strings.Contains(view, "buy milk") {
		t.Fatalf("added task not rendered:\n%s", view)
	}
	if !strings.Contains(view, "1 total") {
		t.Fatalf("counts not rendered:\n%s", view)
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	m := press(newTestModel(t), runes("a"), enter)

	if m.mode != modeAddText {
		t.Fatalf("empty text should stay in add mode")
	}
	if !strings.Contains(m.status, "empty") {
		t.Fatalf("expected empty-text status, got %q", m.status)
	}
}

func TestViewEscapesUserText(t *testing.T) {
	m := addTask(newTestModel(t), "<script>alert(1)</script>", "")

	if strings.Contains(m.View(), "<script>") {
		t.Fatalf("raw markup reached the view:\n%s", m.View())
	}
}

func TestFilterCycling(t *testing.T) {
	m := addTask(newTestModel(t), "open", "")
	m = addTask(m, "done", "")
	// Complete the task under the cursor, then show active only.
	m = press(m, runes(" "))

	m = press(m, runes("f"))
	if m.filter != task.FilterActive {
		t.Fatalf("expected active filter, got %q", m.filter)
	}
	if len(m.projection) != 1 {
		t.Fatalf("active projection should hide the completed task, got %d", len(m.projection))
	}

	m = press(m, runes("f"))
	if m.filter != task.FilterCompleted {
		t.Fatalf("expected completed filter, got %q", m.filter)
	}

	m = press(m, runes("f"))
	if m.filter != task.FilterAll {
		t.Fatalf("expected cycle back to all, got %q", m.filter)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m := addTask(newTestModel(t), "keep me", "")

	m = press(m, runes("d"), runes("n"))
	if len(m.projection) != 1 {
		t.Fatalf("declined delete removed the task")
	}

	m = press(m, runes("d"), runes("y"))
	if len(m.projection) != 0 {
		t.Fatalf("confirmed delete kept the task")
	}
}

func TestInvalidDueDateKeepsAddMode(t *testing.T) {
	m := press(newTestModel(t), runes("a"))
	for _, r := range "task" {
		m = press(m, runes(string(r)))
	}
	m = press(m, enter)
	for _, r := range "garbage" {
		m = press(m, runes(string(r)))
	}
	m = press(m, enter)

	if m.mode != modeAddDue {
		t.Fatalf("invalid due date should stay in due entry mode")
	}
	if !strings.Contains(m.status, "invalid") {
		t.Fatalf("expected invalid-date status, got %q", m.status)
	}
}
