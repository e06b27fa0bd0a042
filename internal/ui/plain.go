package ui

import (
	"fmt"
	"io"

	"github.com/nibzard/priotasks/internal/session"
	"github.com/nibzard/priotasks/internal/task"
)

// WritePlain renders the session without styling, for pipes and logs.
// Collapsed sections print their header only.
func WritePlain(w io.Writer, sess *session.Session, layout string) error {
	pw := &plainWriter{w: w}
	sections := sess.Sections()
	sort := sess.Sort()

	pw.printf("New Task [%s]\n", openLabel(sections.Form))
	if sections.Form {
		pw.printf("  default priority: %s\n", sess.DefaultPriority())
	}

	active := sess.ActiveTasks()
	pw.printf("Tasks (%d) [%s] sort: %s %s\n", len(active), openLabel(sections.Active), sort.By, sort.Indicator(sort.By))
	if sections.Active {
		writePlainRows(pw, active, layout)
	}

	completed := sess.CompletedTasks()
	pw.printf("Completed Tasks (%d) [%s]\n", len(completed), openLabel(sections.Completed))
	if sections.Completed {
		writePlainRows(pw, completed, layout)
	}
	return pw.err
}

func writePlainRows(pw *plainWriter, tasks []task.Task, layout string) {
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		pw.printf("  %s #%d %s [%s] %s\n", mark, t.ID, t.Title, t.Priority, formatDue(&t, layout))
	}
}

func openLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

// plainWriter keeps the first write error so callers check once.
type plainWriter struct {
	w   io.Writer
	err error
}

func (p *plainWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
