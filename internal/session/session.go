// Package session owns the mutable state of one run: the task store, the
// active sort, the open/closed sections and the form submission rule.
package session

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/priotasks/internal/task"
)

// Section identifies one of the collapsible panels.
type Section string

const (
	SectionForm      Section = "form"
	SectionActive    Section = "active"
	SectionCompleted Section = "completed"
)

// ParseSection parses a section name.
func ParseSection(s string) (Section, error) {
	switch Section(strings.ToLower(strings.TrimSpace(s))) {
	case SectionForm:
		return SectionForm, nil
	case SectionActive:
		return SectionActive, nil
	case SectionCompleted:
		return SectionCompleted, nil
	default:
		return "", fmt.Errorf("invalid section %q, must be one of: form, active, completed", s)
	}
}

// Sections holds the open flag of each panel.
type Sections struct {
	Form      bool
	Active    bool
	Completed bool
}

// DefaultSections has the form closed and both lists open.
func DefaultSections() Sections {
	return Sections{Form: false, Active: true, Completed: true}
}

// IsOpen reports whether the section is expanded.
func (s Sections) IsOpen(section Section) bool {
	switch section {
	case SectionForm:
		return s.Form
	case SectionActive:
		return s.Active
	case SectionCompleted:
		return s.Completed
	default:
		return false
	}
}

// Options configures a new session.
type Options struct {
	DefaultPriority task.Priority
	Sort            task.SortState
	Sections        Sections
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		DefaultPriority: task.DefaultPriority,
		Sort:            task.DefaultSortState(),
		Sections:        DefaultSections(),
	}
}

// Session is the state behind every front end. It is not safe for
// concurrent use.
type Session struct {
	store           *task.Store
	sort            task.SortState
	sections        Sections
	defaultPriority task.Priority
	logger          *log.Logger
}

// New creates a session. A nil logger discards log output.
func New(opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !opts.DefaultPriority.Valid() {
		opts.DefaultPriority = task.DefaultPriority
	}
	if opts.Sort.By == "" {
		opts.Sort = task.DefaultSortState()
	}
	if opts.Sort.Order == "" {
		opts.Sort.Order = task.SortAsc
	}
	return &Session{
		store:           task.NewStore(),
		sort:            opts.Sort,
		sections:        opts.Sections,
		defaultPriority: opts.DefaultPriority,
		logger:          logger,
	}
}

// DefaultPriority is the priority a fresh form starts with.
func (s *Session) DefaultPriority() task.Priority {
	return s.defaultPriority
}

// Submit adds the task described by f. It returns false, and changes
// nothing, when the title is blank or the deadline is missing or unreadable.
func (s *Session) Submit(f Form) bool {
	if strings.TrimSpace(f.Title) == "" {
		s.logger.Debug("form rejected", "reason", "empty title")
		return false
	}
	deadline, ok := ParseDeadline(f.Deadline)
	if !ok {
		s.logger.Debug("form rejected", "reason", "missing deadline", "deadline", f.Deadline)
		return false
	}
	priority := f.Priority
	if priority == "" {
		priority = s.defaultPriority
	}
	t := s.store.Add(f.Title, priority, deadline)
	s.logger.Info("task added", "id", t.ID, "priority", t.Priority, "deadline", t.Deadline.Format(time.RFC3339))
	return true
}

// Complete marks a task done. Unknown ids are ignored.
func (s *Session) Complete(id int64) {
	if s.store.Complete(id) {
		s.logger.Info("task completed", "id", id)
		return
	}
	s.logger.Debug("complete ignored", "id", id)
}

// Delete removes a task from whichever list holds it. Unknown ids are ignored.
func (s *Session) Delete(id int64) {
	t, ok := s.store.Get(id)
	if !ok {
		s.logger.Debug("delete ignored", "id", id)
		return
	}
	s.store.Delete(id)
	s.logger.Info("task deleted", "id", id, "title", t.Title, "completed", t.Completed)
}

// ToggleSort applies a click on a sort control.
func (s *Session) ToggleSort(by task.SortBy) {
	s.sort = s.sort.Toggle(by)
	s.logger.Debug("sort changed", "by", s.sort.By, "order", s.sort.Order)
}

// Sort returns the current sort state.
func (s *Session) Sort() task.SortState {
	return s.sort
}

// ToggleSection opens or closes one panel. Tasks are unaffected.
func (s *Session) ToggleSection(section Section) {
	switch section {
	case SectionForm:
		s.sections.Form = !s.sections.Form
	case SectionActive:
		s.sections.Active = !s.sections.Active
	case SectionCompleted:
		s.sections.Completed = !s.sections.Completed
	default:
		return
	}
	s.logger.Debug("section toggled", "section", section, "open", s.sections.IsOpen(section))
}

// Sections returns the open flags.
func (s *Session) Sections() Sections {
	return s.sections
}

// ActiveTasks returns incomplete tasks in the current sort order.
func (s *Session) ActiveTasks() []task.Task {
	return task.Sort(s.store.Active(), s.sort)
}

// CompletedTasks returns completed tasks in insertion order.
func (s *Session) CompletedTasks() []task.Task {
	return s.store.Completed()
}

// Len returns the total number of tasks.
func (s *Session) Len() int {
	return s.store.Len()
}
