package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	configName    = "priotasks.toml"
	configDirName = "priotasks"
)

// projectConfigCandidates are looked up relative to the working directory.
var projectConfigCandidates = []string{configName, "." + configName}

// userConfigCandidates returns the user-level config locations in lookup
// order: ~/.priotasks first, then the OS config directory.
func userConfigCandidates() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+configDirName, configName))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configDirName, configName))
	}
	return paths
}

func findProjectConfigFile() string {
	return firstRegularFile(projectConfigCandidates)
}

func findUserConfigFile() string {
	return firstRegularFile(userConfigCandidates())
}

// firstRegularFile returns the first path that exists and is not a directory.
func firstRegularFile(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// expandPath expands environment variables and a leading ~ in p.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
