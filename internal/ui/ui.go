package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/config"
	"taskpad/internal/export"
	"taskpad/internal/sanitize"
	"taskpad/internal/task"
	"taskpad/internal/theme"
)

type mode int

const (
	modeList mode = iota
	modeAddText
	modeAddDue
)

type Model struct {
	store      *task.Store
	pref       *theme.Preference
	styles     theme.Styles
	cfg        config.Config
	projection []task.Projected
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	filter     task.Filter
	confirmDel bool
	pendingDel *task.Task
	addText    string
	now        func() time.Time
}

func Run(store *task.Store, pref *theme.Preference, cfg config.Config) error {
	m := New(store, pref, cfg)
	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func New(store *task.Store, pref *theme.Preference, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 256
	ti.Width = 40

	filter, err := task.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		filter = task.FilterAll
	}

	m := Model{
		store:  store,
		pref:   pref,
		styles: theme.StylesFor(pref.Mode()),
		cfg:    cfg,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
		input:  ti,
		mode:   modeList,
		filter: filter,
		now:    time.Now,
	}
	m.refresh()
	return m
}

// refresh recomputes the visible projection after a mutation or filter
// change. The projection is derived state, never stored back.
func (m *Model) refresh() {
	m.projection = task.Project(m.store.Tasks(), m.filter, m.now())
	m.cursor = clampCursor(m.cursor, len(m.projection))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.mode == modeAddText || m.mode == modeAddDue {
		return m.updateAddMode(key, msg)
	}
	return m.updateListMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.leaveAddMode("Cancelled")
		return m, nil
	case m.cfg.Keys.Confirm:
		if m.mode == modeAddText {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.status = "Task text cannot be empty"
				return m, nil
			}
			m.addText = text
			m.mode = modeAddDue
			m.input.SetValue("")
			m.input.Placeholder = "Due date (YYYY-MM-DD, empty for none)"
			m.status = "Optional due date, Enter to skip"
			return m, nil
		}
		var due *task.Date
		if raw := strings.TrimSpace(m.input.Value()); raw != "" {
			parsed, err := task.ParseDate(raw)
			if err != nil {
				m.status = fmt.Sprintf("due date invalid: %v", err)
				return m, nil
			}
			due = &parsed
		}
		added, err := m.store.Add(m.addText, due)
		if err != nil {
			m.leaveAddMode(fmt.Sprintf("add failed: %v", err))
			return m, nil
		}
		m.leaveAddMode("Added task")
		m.refresh()
		m.moveCursorTo(added.ID)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) leaveAddMode(status string) {
	m.mode = modeList
	m.addText = ""
	m.input.SetValue("")
	m.input.Placeholder = "Task text"
	m.input.Blur()
	m.status = status
}

func (m *Model) moveCursorTo(id int) {
	for i, t := range m.projection {
		if t.ID == id {
			m.cursor = clampCursor(i, len(m.projection))
			return
		}
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.projection) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(m.projection))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.projection))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAddText
		m.input.Focus()
		m.status = "Add mode: type the task text and press Enter"
	case m.cfg.Keys.Toggle:
		if len(m.projection) == 0 {
			return m, nil
		}
		m.store.Toggle(m.projection[m.cursor].ID)
		m.refresh()
		m.status = "Toggled task"
	case m.cfg.Keys.Delete:
		if len(m.projection) == 0 {
			return m, nil
		}
		t := m.projection[m.cursor].Task
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", sanitize.Escape(t.Text))
	case m.cfg.Keys.Filter:
		m.filter = m.filter.Next()
		m.cursor = 0
		m.refresh()
		m.status = "Filter: " + string(m.filter)
	case m.cfg.Keys.Clear:
		_, _, completed := m.store.Counts()
		if completed == 0 {
			m.status = "No completed tasks to clear"
			return m, nil
		}
		m.store.ClearCompleted()
		m.refresh()
		m.status = fmt.Sprintf("Cleared %d completed", completed)
	case m.cfg.Keys.Export:
		path, err := export.WriteFile(m.cfg.ExportDir, m.store.Tasks(), m.now())
		switch {
		case errors.Is(err, export.ErrNothingToExport):
			m.status = "Nothing to export: the list is empty"
		case err != nil:
			m.status = fmt.Sprintf("export failed: %v", err)
		default:
			m.status = "Exported to " + path
		}
	case m.cfg.Keys.Theme:
		m.styles = theme.StylesFor(m.pref.Toggle())
		m.status = "Theme: " + string(m.pref.Mode())
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		m.store.Remove(m.pendingDel.ID)
		m.refresh()
		m.status = "Deleted task"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	total, active, completed := m.store.Counts()
	title := fmt.Sprintf("Taskpad — %s (%d total, %d active, %d done)",
		m.filter, total, active, completed)
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	if len(m.projection) == 0 {
		b.WriteString("No tasks here. Press 'a' to add one.")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAddText:
		b.WriteString("New task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeAddDue:
		b.WriteString("Due date: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, t := range m.projection {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = m.styles.Cursor.Render(">")
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		text := sanitize.Escape(t.Text)
		if t.Completed {
			text = m.styles.Done.Render(text)
		}

		body := fmt.Sprintf("%s %s %s", cursor, checkbox, text)
		if t.Due.Status != task.StatusNone {
			body += " " + m.renderDue(t.Due)
		}

		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDue(info task.DueInfo) string {
	label := "due " + info.Formatted
	switch info.Status {
	case task.StatusOverdue:
		return m.styles.Overdue.Render(label + " (overdue)")
	case task.StatusDueToday:
		return m.styles.DueToday.Render(label + " (today)")
	default:
		return m.styles.Upcoming.Render(label)
	}
}

func renderHelp(k config.Keymap) string {
	toggle := k.Toggle
	if toggle == " " {
		toggle = "space"
	}
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s filter • %s clear done • %s export • %s theme • %s quit",
		k.Up, k.Down, k.Add, toggle, k.Delete, k.Filter, k.Clear, k.Export, k.Theme, k.Quit)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
