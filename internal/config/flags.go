package config

import "flag"

// flagToField maps flag names to config field names for source tracking.
var flagToField = map[string]string{
	"priority":       "default_priority",
	"sort":           "sort_by",
	"order":          "sort_order",
	"deadline-fmt":   "deadline_layout",
	"form":           "sections.form",
	"log-dir":        "log_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the global flags on fs, parses args into cfg and
// records which fields were set by flags in sources.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("priotasks", flag.ContinueOnError)
	}

	// Form and list defaults
	fs.StringVar(&cfg.DefaultPriority, "priority", cfg.DefaultPriority, "Default priority for new tasks (High, Medium, Low)")
	fs.StringVar(&cfg.SortBy, "sort", cfg.SortBy, "Initial sort field (date, priority)")
	fs.StringVar(&cfg.SortOrder, "order", cfg.SortOrder, "Initial sort order (asc, desc)")
	fs.StringVar(&cfg.DeadlineLayout, "deadline-fmt", cfg.DeadlineLayout, "Go time layout used to display deadlines")
	fs.BoolVar(&cfg.Sections.Form, "form", cfg.Sections.Form, "Start with the creation form open")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for session log files (empty disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagToField[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})

	return nil
}
