package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the configuration files found for one run. A layer
// with no file is "".
type ConfigPaths struct {
	// System is /etc/retrolog/config.yaml or its platform equivalent.
	System string

	// User is $XDG_CONFIG_HOME/retrolog/config.yaml.
	User string

	// Project is the nearest .retrolog.yml above the working directory.
	Project string

	// Explicit is the --config path.
	Explicit string
}

const appName = "retrolog"

// Project file names, most preferred first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{".retrolog.yml", ".retrolog.yaml", "retrolog.yml", "retrolog.yaml"}

// Global file names inside a system or user config directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var globalConfigFiles = []string{"config.yaml", "config.yml"}

// DiscoverPaths looks up the system, user and project layers for workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	paths := &ConfigPaths{Project: project}
	if dir := systemConfigDir(); dir != "" {
		paths.System = firstFile(dir, globalConfigFiles)
	}
	if dir := userConfigDir(); dir != "" {
		paths.User = firstFile(dir, globalConfigFiles)
	}
	return paths, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, appName)
	}
	return filepath.Join("/etc", appName)
}

func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig returns the nearest project config file at or above
// startDir, or "" if there is none. The search ends at a repository root
// or the home directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()
	for candidate := range searchDirs(dir, home) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(candidate, projectConfigFiles); path != "" {
			return path, nil
		}
	}
	return "", nil
}

// searchDirs yields dir and its parents, ending after a repository root,
// after home, or at the filesystem root.
func searchDirs(dir, home string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) {
				return
			}
			if isRepoRoot(dir) || (home != "" && dir == home) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

func isRepoRoot(dir string) bool {
	for _, marker := range []string{".git", ".hg", ".svn"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}
