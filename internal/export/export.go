// Package export turns the task collection into a Markdown report.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskpad/internal/task"
)

// ErrNothingToExport is returned for an empty collection. The caller shows
// the user why no file was produced instead of writing an empty report.
var ErrNothingToExport = errors.New("no tasks to export")

const (
	separator       = "---"
	timestampLayout = "Monday, January 2, 2006 3:04 PM"
	filenameLayout  = "2006-01-02"
)

// Report renders the full collection, independent of the current filter.
// The layout is fixed; downstream tooling parses it.
func Report(tasks []task.Task, now time.Time) (string, error) {
	if len(tasks) == 0 {
		return "", ErrNothingToExport
	}

	var active, completed []task.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}

	var b strings.Builder
	b.WriteString("# Todo List Export\n\n")
	b.WriteString("Exported: " + now.Format(timestampLayout) + "\n\n")
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "Total tasks: %d\n", len(tasks))
	fmt.Fprintf(&b, "Active: %d\n", len(active))
	fmt.Fprintf(&b, "Completed: %d\n", len(completed))

	if len(active) > 0 {
		b.WriteString("\n## Active Tasks\n\n")
		for _, t := range active {
			b.WriteString(line("[ ]", t))
		}
	}
	if len(completed) > 0 {
		b.WriteString("\n## Completed Tasks\n\n")
		for _, t := range completed {
			b.WriteString(line("[x]", t))
		}
	}

	b.WriteString("\n" + separator + "\n\n")
	b.WriteString("Generated by taskpad\n")
	return b.String(), nil
}

func line(checkbox string, t task.Task) string {
	s := "- " + checkbox + " " + t.Text
	if t.Due != nil {
		s += " (Due: " + t.Due.Display() + ")"
	}
	return s + "\n"
}

// Filename names the artifact after the export date.
func Filename(now time.Time) string {
	return "todos-" + now.Format(filenameLayout) + ".txt"
}

// WriteFile writes the report into dir and returns the full path. An empty
// collection produces no file.
func WriteFile(dir string, tasks []task.Task, now time.Time) (string, error) {
	report, err := Report(tasks, now)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return "", err
		}
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
