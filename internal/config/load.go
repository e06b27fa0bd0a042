package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/priotasks/internal/task"
)

// LoadWithSources loads configuration from multiple sources in priority order
// and records where each value came from:
// 1. Defaults
// 2. User config file (~/.priotasks/priotasks.toml or OS-specific config dir)
// 3. Project config file (priotasks.toml or .priotasks.toml in current directory)
// 4. Environment variables, then the project .env file
// 5. CLI flags
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	cfg := &Config{}
	cws := &ConfigWithSources{Config: cfg, Sources: sources}

	// 1. Set defaults
	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cws.Files = append(cws.Files, userConfigFile)
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cws.Files = append(cws.Files, projectConfigFile)
	}

	// 4. Override from environment
	if err := loadFromEnv(cfg, sources); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Normalise and validate
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// loadConfigFile decodes TOML on top of cfg. Keys absent from the file keep
// their current values.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := validateDefined(cfg, md); err != nil {
		return err
	}
	for _, field := range configFields() {
		if md.IsDefined(strings.Split(field, ".")...) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig computes derived values and validates enum fields.
func finalizeConfig(cfg *Config) error {
	cfg.LogDir = expandPath(cfg.LogDir)

	priority, err := task.ParsePriority(cfg.DefaultPriority)
	if err != nil {
		return fmt.Errorf("default_priority: %w", err)
	}
	cfg.DefaultPriority = string(priority)

	sortBy, err := task.ParseSortBy(cfg.SortBy)
	if err != nil {
		return fmt.Errorf("sort_by: %w", err)
	}
	cfg.SortBy = string(sortBy)

	sortOrder, err := task.ParseSortOrder(cfg.SortOrder)
	if err != nil {
		return fmt.Errorf("sort_order: %w", err)
	}
	cfg.SortOrder = string(sortOrder)

	if strings.TrimSpace(cfg.DeadlineLayout) == "" {
		cfg.DeadlineLayout = DefaultDeadlineLayout
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("log_level: invalid value %q, must be one of: debug, info, warn, error, fatal", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format: invalid value %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}

	return nil
}

// boolFromString parses the truthy spellings accepted in environment variables.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
