// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.priotasks/priotasks.toml or OS-specific config directory)
// 3. Project config file (priotasks.toml or .priotasks.toml in the working directory)
// 4. Environment variables (PRIOTASKS_*), falling back to a project .env file
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.priotasks/priotasks.toml (preferred)
// - Windows: %APPDATA%\priotasks\priotasks.toml
// - macOS: ~/Library/Application Support/priotasks/priotasks.toml
// - Linux/BSD: $XDG_CONFIG_HOME/priotasks/priotasks.toml or ~/.config/priotasks/priotasks.toml
package config
