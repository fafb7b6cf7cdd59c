// Package printer renders projections and export results for the
// non-interactive commands.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"taskpad/internal/sanitize"
	"taskpad/internal/task"
)

type Printer struct {
	Out io.Writer
}

func New() *Printer {
	return &Printer{Out: color.Output}
}

// List prints a projection as a table.
func (p *Printer) List(items []task.Projected, filter task.Filter, total, active, completed int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprintf(p.Out, "Tasks — %s", filter)
	_, _ = c.Fprintf(p.Out, "  %d total, %d active, %d completed\n\n", total, active, completed)

	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(p.Out, " none\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("", "ID", "TASK", "DUE")
	for _, item := range items {
		checkbox := "[ ]"
		if item.Completed {
			checkbox = "[x]"
		}
		tbl.AddRow(checkbox, item.ID, sanitize.Escape(item.Text), p.dueCell(item.Due))
	}
	_, _ = fmt.Fprintln(p.Out, tbl)
}

func (p *Printer) dueCell(info task.DueInfo) string {
	switch info.Status {
	case task.StatusNone:
		return ""
	case task.StatusOverdue:
		return color.New(color.FgRed).Sprintf("%s (overdue)", info.Formatted)
	case task.StatusDueToday:
		return color.New(color.FgYellow).Sprintf("%s (today)", info.Formatted)
	default:
		return info.Formatted
	}
}

// Exported confirms where the report landed.
func (p *Printer) Exported(path string, total int) {
	_, _ = color.New(color.FgGreen).Fprintf(p.Out, "Exported %d tasks to %s\n", total, path)
}

// NothingToExport tells the user why no file was produced.
func (p *Printer) NothingToExport() {
	_, _ = color.New(color.Faint, color.Italic).Fprintln(p.Out, "Nothing to export: the list is empty.")
}
