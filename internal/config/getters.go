package config

import (
	"strconv"

	"github.com/nibzard/priotasks/internal/task"
)

// Priority returns the default form priority. LoadWithSources has already validated it.
func (c *Config) Priority() task.Priority {
	p, err := task.ParsePriority(c.DefaultPriority)
	if err != nil {
		return task.DefaultPriority
	}
	return p
}

// Sort returns the initial sort state, falling back to date ascending.
func (c *Config) Sort() task.SortState {
	state := task.DefaultSortState()
	if by, err := task.ParseSortBy(c.SortBy); err == nil {
		state.By = by
	}
	if order, err := task.ParseSortOrder(c.SortOrder); err == nil {
		state.Order = order
	}
	return state
}

// PriorityColor returns the configured colour for p, or "" for unknown priorities.
func (c *Config) PriorityColor(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return c.Colors.High
	case task.PriorityMedium:
		return c.Colors.Medium
	case task.PriorityLow:
		return c.Colors.Low
	default:
		return ""
	}
}

// Value returns the effective value of a field named as in configFields,
// formatted as it would appear in TOML.
func (c *Config) Value(field string) string {
	switch v := c.fieldValue(field).(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// fieldValue returns the typed value of a field named as in configFields,
// or nil for unknown names.
func (c *Config) fieldValue(field string) interface{} {
	switch field {
	case "default_priority":
		return c.DefaultPriority
	case "sort_by":
		return c.SortBy
	case "sort_order":
		return c.SortOrder
	case "deadline_layout":
		return c.DeadlineLayout
	case "sections.form":
		return c.Sections.Form
	case "sections.active":
		return c.Sections.Active
	case "sections.completed":
		return c.Sections.Completed
	case "colors.high":
		return c.Colors.High
	case "colors.medium":
		return c.Colors.Medium
	case "colors.low":
		return c.Colors.Low
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return c.LogTimestamps
	case "log_caller":
		return c.LogCaller
	default:
		return nil
	}
}

// Fields lists every configurable key in display order.
func Fields() []string {
	return configFields()
}
