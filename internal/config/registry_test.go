package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefaultPath(t *testing.T) {
	home := func() (string, error) { return "/home/ada", nil }

	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{"linux xdg", "linux", map[string]string{"XDG_CONFIG_HOME": "/xdg"}, filepath.Join("/xdg", "fuzzyplus", "config.yaml")},
		{"linux home", "linux", nil, filepath.Join("/home/ada", ".config", "fuzzyplus", "config.yaml")},
		{"darwin ignores xdg", "darwin", map[string]string{"XDG_CONFIG_HOME": "/xdg"}, filepath.Join("/home/ada", ".config", "fuzzyplus", "config.yaml")},
		{"windows local app data", "windows", map[string]string{"LOCALAPPDATA": "/appdata"}, filepath.Join("/appdata", "fuzzyplus", "config.yaml")},
		{"windows profile fallback", "windows", map[string]string{"USERPROFILE": "/users/ada"}, filepath.Join("/users/ada", "AppData", "Local", "fuzzyplus", "config.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			got, err := defaultPath(tt.goos, getenv, home)
			if err != nil {
				t.Fatalf("defaultPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("defaultPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultPath_NoHome(t *testing.T) {
	getenv := func(string) string { return "" }
	noHome := func() (string, error) { return "", errors.New("$HOME is not defined") }

	for _, goos := range []string{"linux", "darwin", "windows"} {
		if _, err := defaultPath(goos, getenv, noHome); !errors.Is(err, ErrNoHome) {
			t.Errorf("defaultPath(%s) error = %v, want %v", goos, err, ErrNoHome)
		}
	}
}

func TestResolvePath(t *testing.T) {
	if got, _ := ResolvePath("/tmp/custom.yaml"); got != "/tmp/custom.yaml" {
		t.Errorf("ResolvePath(custom) = %v, want /tmp/custom.yaml", got)
	}

	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		got, err := ResolvePath("")
		if err != nil {
			t.Fatalf("ResolvePath(\"\") error = %v", err)
		}
		if want := filepath.Join(xdg, "fuzzyplus", "config.yaml"); got != want {
			t.Errorf("ResolvePath(\"\") = %v, want %v", got, want)
		}
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Face == nil {
		t.Fatal("NewRegistry().Face should not be nil")
	}
	if reg.BeforeText() != "" {
		t.Errorf("NewRegistry().BeforeText() = %q, want empty", reg.BeforeText())
	}
	if reg.Companion == nil {
		t.Fatal("NewRegistry().Companion should not be nil")
	}
	if reg.Companion.Port != DefaultCompanionPort {
		t.Errorf("Companion.Port = %v, want %v", reg.Companion.Port, DefaultCompanionPort)
	}
	if !reg.Companion.Advertise {
		t.Error("Companion.Advertise should be true by default")
	}
}

func TestRegistryApply(t *testing.T) {
	reg := NewRegistry()
	now := time.Date(2025, time.January, 5, 14, 30, 0, 0, time.UTC)

	if !reg.Apply(BeforeTextUpdate("It's"), now) {
		t.Error("Apply() = false for a new value, want true")
	}
	if reg.BeforeText() != "It's" {
		t.Errorf("BeforeText() = %q, want It's", reg.BeforeText())
	}
	if !reg.Face.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", reg.Face.UpdatedAt, now)
	}

	if reg.Apply(BeforeTextUpdate("It's"), now.Add(time.Hour)) {
		t.Error("Apply() = true for an unchanged value, want false")
	}
	if !reg.Face.UpdatedAt.Equal(now) {
		t.Error("UpdatedAt should not move when nothing changed")
	}

	if reg.Apply(Update{}, now) {
		t.Error("Apply(empty) = true, want false")
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Apply(BeforeTextUpdate("Roughly"), time.Date(2025, time.January, 5, 14, 30, 0, 0, time.UTC))
	reg.Companion.Enabled = true
	reg.Companion.Port = 9000
	reg.Companion.Instance = "kitchen-watch"

	if err := reg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away after Save()")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# FuzzyPlus Configuration File") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.BeforeText() != "Roughly" {
		t.Errorf("loaded BeforeText() = %q, want Roughly", loaded.BeforeText())
	}
	if !loaded.Companion.Enabled || loaded.Companion.Port != 9000 || loaded.Companion.Instance != "kitchen-watch" {
		t.Errorf("loaded Companion = %+v", loaded.Companion)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Version != CurrentVersion || reg.Face == nil || reg.Companion == nil {
		t.Errorf("Load(missing) = %+v, want defaults", reg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: [1\n"},
		{"unsupported version", "version: 2\n"},
		{"missing version", "face:\n  before_text: hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoad_FillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\ncompanion:\n  enabled: true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Face == nil {
		t.Error("Face should be filled in")
	}
	if reg.Companion.Port != DefaultCompanionPort {
		t.Errorf("Companion.Port = %d, want default %d", reg.Companion.Port, DefaultCompanionPort)
	}
}
