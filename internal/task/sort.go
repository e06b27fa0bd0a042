package task

import (
	"fmt"
	"sort"
	"strings"
)

// SortBy is the field used to order active tasks.
type SortBy string

const (
	SortByDate     SortBy = "date"
	SortByPriority SortBy = "priority"
)

// SortOrder is the direction of the ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortBy parses "date" or "priority".
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDate:
		return SortByDate, nil
	case SortByPriority:
		return SortByPriority, nil
	default:
		return "", fmt.Errorf("invalid sort field %q, must be one of: date, priority", s)
	}
}

// ParseSortOrder parses "asc" or "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("invalid sort order %q, must be one of: asc, desc", s)
	}
}

// SortState is the current sort dimension and direction.
type SortState struct {
	By    SortBy
	Order SortOrder
}

// DefaultSortState orders by date, earliest first.
func DefaultSortState() SortState {
	return SortState{By: SortByDate, Order: SortAsc}
}

// Toggle applies a click on the control for by: the same dimension flips the
// order, a different dimension switches to it in ascending order.
func (s SortState) Toggle(by SortBy) SortState {
	if s.By == by {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
		return s
	}
	return SortState{By: by, Order: SortAsc}
}

// Indicator returns the arrow shown next to the control for by, or "" when
// by is not the active dimension.
func (s SortState) Indicator(by SortBy) string {
	if s.By != by {
		return ""
	}
	if s.Order == SortDesc {
		return "↓"
	}
	return "↑"
}

// Sort returns a new slice holding tasks ordered by state. The input slice
// is not modified and equal elements keep their relative order.
func Sort(tasks []Task, state SortState) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	less := Less(state)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

// Less returns the strict ordering used by Sort.
func Less(state SortState) func(a, b *Task) bool {
	desc := state.Order == SortDesc
	if state.By == SortByPriority {
		return func(a, b *Task) bool {
			if desc {
				return a.Priority.Rank() > b.Priority.Rank()
			}
			return a.Priority.Rank() < b.Priority.Rank()
		}
	}
	return func(a, b *Task) bool {
		// Tasks without a deadline go last in either direction.
		aOK, bOK := a.HasDeadline(), b.HasDeadline()
		if !aOK || !bOK {
			return aOK && !bOK
		}
		if desc {
			return a.Deadline.After(b.Deadline)
		}
		return a.Deadline.Before(b.Deadline)
	}
}
