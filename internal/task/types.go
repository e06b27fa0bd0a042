package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority represents a task priority.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// DefaultPriority is preselected in the creation form.
const DefaultPriority = PriorityLow

// Priorities lists the known priorities from highest to lowest.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// unknownRank sorts unrecognised priorities after Low.
const unknownRank = 4

// Rank returns 1 for High, 2 for Medium, 3 for Low and 4 otherwise.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return unknownRank
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() != unknownRank
}

// Next returns the following priority in High, Medium, Low order, wrapping around.
func (p Priority) Next() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

// Prev returns the preceding priority, wrapping around.
func (p Priority) Prev() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority %q, must be one of: High, Medium, Low", s)
	}
}

// Task represents a single entry in the task list.
type Task struct {
	ID        int64
	Title     string
	Priority  Priority
	Deadline  time.Time
	Completed bool
}

// HasDeadline reports whether the task carries a usable deadline.
func (t *Task) HasDeadline() bool {
	return !t.Deadline.IsZero()
}
