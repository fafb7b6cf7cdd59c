// Package theme holds the light/dark preference and the Lip Gloss styles
// each mode maps to.
package theme

import (
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"taskpad/internal/storage"
)

// ThemeKey is the slot the preference is persisted under.
const ThemeKey = "theme"

// Mode is the active color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Preference is the persisted light/dark choice. It follows the same
// best-effort durability rules as the task store: failed writes are logged
// and the in-memory value stays authoritative.
type Preference struct {
	kv     storage.KV
	logger *log.Logger
	mode   Mode
}

func NewPreference(kv storage.KV, logger *log.Logger) *Preference {
	if logger == nil {
		logger = log.New(os.Stderr, "taskpad: ", log.LstdFlags)
	}
	return &Preference{kv: kv, logger: logger, mode: Light}
}

// Load reads the persisted mode, defaulting to light when the slot is
// absent or holds anything unrecognized.
func (p *Preference) Load() {
	p.mode = Light
	data, ok, err := p.kv.Get(ThemeKey)
	if err != nil {
		p.logger.Printf("load theme: %v", err)
		return
	}
	if ok && Mode(data) == Dark {
		p.mode = Dark
	}
}

func (p *Preference) Mode() Mode {
	return p.mode
}

// Toggle flips the mode and persists it, returning the new mode.
func (p *Preference) Toggle() Mode {
	if p.mode == Light {
		p.mode = Dark
	} else {
		p.mode = Light
	}
	if err := p.kv.Set(ThemeKey, []byte(p.mode)); err != nil {
		p.logger.Printf("persist theme: %v", err)
	}
	return p.mode
}

// Styles groups the Lip Gloss styles the TUI renders with.
type Styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	Overdue  lipgloss.Style
	DueToday lipgloss.Style
	Upcoming lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// StylesFor returns the style set for a mode.
func StylesFor(m Mode) Styles {
	if m == Dark {
		return Styles{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			DueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			Upcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("115")),
			Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		}
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("57")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("57")),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		DueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Upcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
