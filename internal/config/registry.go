package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "fuzzyplus"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// ErrNoHome is returned when no per-user directory can be found for the
// default registry path.
var ErrNoHome = errors.New("cannot determine user config directory")

// ResolvePath returns path, or the per-user default when path is empty:
//
//	linux, bsd  $XDG_CONFIG_HOME/fuzzyplus/config.yaml, else ~/.config/...
//	darwin      ~/.config/fuzzyplus/config.yaml
//	windows     %LOCALAPPDATA%\fuzzyplus\config.yaml
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return defaultPath(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

// defaultPath picks the registry location for goos.
func defaultPath(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	var base string

	switch {
	case goos == "windows":
		base = getenv("LOCALAPPDATA")
		if base == "" {
			profile := getenv("USERPROFILE")
			if profile == "" {
				return "", fmt.Errorf("%w: LOCALAPPDATA and USERPROFILE not set", ErrNoHome)
			}
			base = filepath.Join(profile, "AppData", "Local")
		}

	case goos != "darwin" && getenv("XDG_CONFIG_HOME") != "":
		base = getenv("XDG_CONFIG_HOME")

	default:
		dir, err := home()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoHome, err)
		}
		if dir == "" {
			return "", ErrNoHome
		}
		base = filepath.Join(dir, ".config")
	}

	return filepath.Join(base, appName, configFile), nil
}

// Load reads the registry at path. A missing file yields a default
// registry; an unreadable or unparseable file is an error.
func Load(path string) (*Registry, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if registry.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, CurrentVersion)
	}

	registry.applyDefaults()
	return &registry, nil
}

// Save writes the registry to path.
// Performs an atomic write to prevent corruption on crash.
func (r *Registry) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# FuzzyPlus Configuration File
# Options set from the companion app and companion endpoint preferences.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
