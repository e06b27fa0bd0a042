package session

import (
	"strings"
	"time"

	"github.com/nibzard/priotasks/internal/task"
)

// Form carries the raw creation inputs.
type Form struct {
	Title    string
	Priority task.Priority
	Deadline string
}

// deadlineLayouts are tried in order; the first matches the HTML
// datetime-local value.
var deadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDeadline reads a deadline in local time. RFC 3339 values keep their
// own offset. It returns false for blank or unreadable input.
func ParseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
