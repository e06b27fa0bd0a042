package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/priotasks/internal/task"
)

func newTestSession() *Session {
	return New(DefaultOptions(), nil)
}

func TestSubmitAddsActiveTask(t *testing.T) {
	s := newTestSession()

	ok := s.Submit(Form{Title: "Buy milk", Priority: task.PriorityHigh, Deadline: "2025-01-01T10:00"})
	if !ok {
		t.Fatal("Submit returned false for a valid form")
	}

	active := s.ActiveTasks()
	if len(active) != 1 {
		t.Fatalf("active count: got %d, want 1", len(active))
	}
	got := active[0]
	if got.Completed {
		t.Error("new task should not be completed")
	}
	if got.Title != "Buy milk" || got.Priority != task.PriorityHigh {
		t.Errorf("task: got %+v", got)
	}
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	if !got.Deadline.Equal(want) {
		t.Errorf("deadline: got %v, want %v", got.Deadline, want)
	}
	if len(s.CompletedTasks()) != 0 {
		t.Errorf("completed count: got %d, want 0", len(s.CompletedTasks()))
	}
}

func TestSubmitRejects(t *testing.T) {
	tests := []struct {
		name string
		form Form
	}{
		{"empty title", Form{Title: "", Priority: task.PriorityLow, Deadline: "2025-01-01T10:00"}},
		{"whitespace title", Form{Title: "   \t", Priority: task.PriorityLow, Deadline: "2025-01-01T10:00"}},
		{"missing deadline", Form{Title: "x", Priority: task.PriorityLow}},
		{"blank deadline", Form{Title: "x", Priority: task.PriorityLow, Deadline: "  "}},
		{"unreadable deadline", Form{Title: "x", Priority: task.PriorityLow, Deadline: "tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			if s.Submit(tt.form) {
				t.Error("Submit returned true")
			}
			if s.Len() != 0 {
				t.Errorf("Len: got %d, want 0", s.Len())
			}
		})
	}
}

func TestSubmitDefaultsPriority(t *testing.T) {
	opts := DefaultOptions()
	opts.DefaultPriority = task.PriorityMedium
	s := New(opts, nil)

	s.Submit(Form{Title: "x", Deadline: "2025-01-01 10:00"})
	if got := s.ActiveTasks()[0].Priority; got != task.PriorityMedium {
		t.Errorf("priority: got %s, want Medium", got)
	}
	if s.DefaultPriority() != task.PriorityMedium {
		t.Errorf("DefaultPriority: got %s", s.DefaultPriority())
	}
}

func TestCompleteMovesTask(t *testing.T) {
	s := newTestSession()
	s.Submit(Form{Title: "Buy milk", Priority: task.PriorityHigh, Deadline: "2025-01-01T10:00"})
	id := s.ActiveTasks()[0].ID

	s.Complete(id)

	if len(s.ActiveTasks()) != 0 {
		t.Errorf("active count: got %d, want 0", len(s.ActiveTasks()))
	}
	completed := s.CompletedTasks()
	if len(completed) != 1 || completed[0].ID != id || !completed[0].Completed {
		t.Errorf("completed: got %+v", completed)
	}
}

func TestDelete(t *testing.T) {
	s := newTestSession()
	s.Submit(Form{Title: "a", Priority: task.PriorityHigh, Deadline: "2025-01-01T10:00"})
	s.Submit(Form{Title: "b", Priority: task.PriorityLow, Deadline: "2025-01-02T10:00"})
	active := s.ActiveTasks()
	s.Complete(active[1].ID)

	s.Delete(12345)
	if len(s.ActiveTasks()) != 1 || len(s.CompletedTasks()) != 1 {
		t.Fatalf("delete of unknown id changed lists: active %d, completed %d",
			len(s.ActiveTasks()), len(s.CompletedTasks()))
	}

	s.Delete(active[1].ID)
	if len(s.CompletedTasks()) != 0 {
		t.Errorf("completed after delete: got %d, want 0", len(s.CompletedTasks()))
	}
	s.Delete(active[0].ID)
	if len(s.ActiveTasks()) != 0 {
		t.Errorf("active after delete: got %d, want 0", len(s.ActiveTasks()))
	}
}

func TestToggleSortOrdersActiveTasks(t *testing.T) {
	s := newTestSession()
	for _, f := range []Form{
		{Title: "low", Priority: task.PriorityLow, Deadline: "2025-01-01T10:00"},
		{Title: "high", Priority: task.PriorityHigh, Deadline: "2025-01-03T10:00"},
		{Title: "medium", Priority: task.PriorityMedium, Deadline: "2025-01-02T10:00"},
	} {
		if !s.Submit(f) {
			t.Fatalf("Submit(%+v) rejected", f)
		}
	}

	order := func() string {
		var names []string
		for _, t := range s.ActiveTasks() {
			names = append(names, t.Title)
		}
		return strings.Join(names, ",")
	}

	if got := order(); got != "low,medium,high" {
		t.Errorf("default date asc: got %s", got)
	}
	s.ToggleSort(task.SortByPriority)
	if got := order(); got != "high,medium,low" {
		t.Errorf("priority asc: got %s", got)
	}
	s.ToggleSort(task.SortByPriority)
	if got := order(); got != "low,medium,high" {
		t.Errorf("priority desc: got %s", got)
	}
	s.ToggleSort(task.SortByDate)
	if got := s.Sort(); got != (task.SortState{By: task.SortByDate, Order: task.SortAsc}) {
		t.Errorf("switching dimension: got %+v", got)
	}
}

func TestSections(t *testing.T) {
	s := newTestSession()
	if got := s.Sections(); got != DefaultSections() {
		t.Fatalf("initial sections: got %+v", got)
	}
	if s.Sections().Form || !s.Sections().Active || !s.Sections().Completed {
		t.Errorf("defaults: got %+v, want form closed, lists open", s.Sections())
	}

	s.Submit(Form{Title: "a", Priority: task.PriorityLow, Deadline: "2025-01-01T10:00"})
	s.ToggleSection(SectionActive)
	if s.Sections().IsOpen(SectionActive) {
		t.Error("active section should be closed")
	}
	if !s.Sections().IsOpen(SectionCompleted) || s.Sections().IsOpen(SectionForm) {
		t.Errorf("other sections changed: %+v", s.Sections())
	}
	if len(s.ActiveTasks()) != 1 {
		t.Error("collapsing must not discard tasks")
	}
	s.ToggleSection(SectionActive)
	s.ToggleSection(SectionForm)
	if !s.Sections().Active || !s.Sections().Form {
		t.Errorf("after reopening: got %+v", s.Sections())
	}
	s.ToggleSection(Section("sidebar"))
	if s.Sections() != (Sections{Form: true, Active: true, Completed: true}) {
		t.Errorf("unknown section changed state: %+v", s.Sections())
	}
}

func TestNewNormalisesOptions(t *testing.T) {
	s := New(Options{DefaultPriority: "bogus", Sort: task.SortState{By: task.SortByPriority}}, nil)
	if s.DefaultPriority() != task.PriorityLow {
		t.Errorf("DefaultPriority: got %s, want Low", s.DefaultPriority())
	}
	if s.Sort() != (task.SortState{By: task.SortByPriority, Order: task.SortAsc}) {
		t.Errorf("Sort: got %+v", s.Sort())
	}
}

func TestSessionLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})
	s := New(DefaultOptions(), logger)

	s.Submit(Form{Title: "a", Priority: task.PriorityLow, Deadline: "2025-01-01T10:00"})
	s.Submit(Form{Title: ""})
	s.Complete(1)
	s.Delete(1)
	s.Delete(99)

	out := buf.String()
	for _, want := range []string{
		"task added", "form rejected", "task completed", "id=1",
		"task deleted", "title=a", "completed=true", "delete ignored", "id=99",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestParseSection(t *testing.T) {
	for _, name := range []string{"form", "Active", " completed "} {
		if _, err := ParseSection(name); err != nil {
			t.Errorf("ParseSection(%q): %v", name, err)
		}
	}
	if _, err := ParseSection("footer"); err == nil {
		t.Error("ParseSection(footer): expected error")
	}
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2025-01-01T10:00", true},
		{"2025-01-01 10:00", true},
		{"2025-01-01T10:00:30", true},
		{"2025-01-01T10:00:00Z", true},
		{"2025-01-01T10:00:00+02:00", true},
		{"", false},
		{"2025-13-01T10:00", false},
		{"next week", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDeadline(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDeadline(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got.IsZero() {
				t.Errorf("ParseDeadline(%q) returned zero time", tt.input)
			}
		})
	}
}
