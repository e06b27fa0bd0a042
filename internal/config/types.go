package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceDotEnv   ConfigSource = ".env file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultPriority       = "Low"
	DefaultSortBy         = "date"
	DefaultSortOrder      = "asc"
	DefaultDeadlineLayout = "2006-01-02 15:04"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for priotasks.
type Config struct {
	// Form
	DefaultPriority string `toml:"default_priority"`

	// Initial sort of the active list
	SortBy    string `toml:"sort_by"`
	SortOrder string `toml:"sort_order"`

	// Go time layout used to render deadlines
	DeadlineLayout string `toml:"deadline_layout"`

	Sections SectionsConfig `toml:"sections"`
	Colors   ColorsConfig   `toml:"colors"`

	// Logging configuration. An empty LogDir disables the session log file.
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// SectionsConfig sets which panels start expanded.
type SectionsConfig struct {
	Form      bool `toml:"form"`
	Active    bool `toml:"active"`
	Completed bool `toml:"completed"`
}

// ColorsConfig holds lipgloss colour strings per priority.
type ColorsConfig struct {
	High   string `toml:"high"`
	Medium string `toml:"medium"`
	Low    string `toml:"low"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DefaultPriority = DefaultPriority
	cfg.SortBy = DefaultSortBy
	cfg.SortOrder = DefaultSortOrder
	cfg.DeadlineLayout = DefaultDeadlineLayout
	cfg.Sections = SectionsConfig{Form: false, Active: true, Completed: true}
	cfg.Colors = ColorsConfig{High: "#ff5f87", Medium: "#ffaf00", Low: "#5fd787"}
	cfg.LogDir = ""
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
	cfg.LogCaller = false
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"default_priority",
		"sort_by",
		"sort_order",
		"deadline_layout",
		"sections.form",
		"sections.active",
		"sections.completed",
		"colors.high",
		"colors.medium",
		"colors.low",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// ActiveFile returns the highest-priority config file that was read, or "".
func (cws *ConfigWithSources) ActiveFile() string {
	if len(cws.Files) == 0 {
		return ""
	}
	return cws.Files[len(cws.Files)-1]
}
