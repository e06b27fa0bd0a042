package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFile holds PRIOTASKS_* defaults for a project. Real environment
// variables take precedence over it.
const dotEnvFile = ".env"

// loadFromEnv overrides config from environment variables and the project
// .env file, recording the source of each value it sets.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	dotEnv, err := readDotEnv(dotEnvFile)
	if err != nil {
		return err
	}

	var source ConfigSource
	getenv := func(key string) string {
		if v := os.Getenv(key); v != "" {
			source = SourceEnv
			return v
		}
		source = SourceDotEnv
		return dotEnv[key]
	}
	set := func(field string) {
		sources[field] = source
	}

	if v := getenv("PRIOTASKS_DEFAULT_PRIORITY"); v != "" {
		cfg.DefaultPriority = v
		set("default_priority")
	}
	if v := getenv("PRIOTASKS_SORT_BY"); v != "" {
		cfg.SortBy = v
		set("sort_by")
	}
	if v := getenv("PRIOTASKS_SORT_ORDER"); v != "" {
		cfg.SortOrder = v
		set("sort_order")
	}
	if v := getenv("PRIOTASKS_DEADLINE_LAYOUT"); v != "" {
		cfg.DeadlineLayout = v
		set("deadline_layout")
	}
	if v := getenv("PRIOTASKS_FORM_OPEN"); v != "" {
		cfg.Sections.Form = boolFromString(v)
		set("sections.form")
	}
	if v := getenv("PRIOTASKS_ACTIVE_OPEN"); v != "" {
		cfg.Sections.Active = boolFromString(v)
		set("sections.active")
	}
	if v := getenv("PRIOTASKS_COMPLETED_OPEN"); v != "" {
		cfg.Sections.Completed = boolFromString(v)
		set("sections.completed")
	}

	// Priority colours
	if v := getenv("PRIOTASKS_COLOR_HIGH"); v != "" {
		cfg.Colors.High = v
		set("colors.high")
	}
	if v := getenv("PRIOTASKS_COLOR_MEDIUM"); v != "" {
		cfg.Colors.Medium = v
		set("colors.medium")
	}
	if v := getenv("PRIOTASKS_COLOR_LOW"); v != "" {
		cfg.Colors.Low = v
		set("colors.low")
	}

	// Logging configuration
	if v := getenv("PRIOTASKS_LOG_DIR"); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := getenv("PRIOTASKS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := getenv("PRIOTASKS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := getenv("PRIOTASKS_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := getenv("PRIOTASKS_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
	return nil
}

// readDotEnv parses path, returning an empty map when it does not exist.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}
