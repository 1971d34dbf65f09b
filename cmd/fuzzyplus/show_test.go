package main

import (
	"testing"
	"time"
)

func TestParseAt(t *testing.T) {
	now := time.Date(2025, time.January, 5, 8, 30, 45, 0, time.UTC)

	tests := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{"", now, false},
		{"14:52", time.Date(2025, time.January, 5, 14, 52, 0, 0, time.UTC), false},
		{"00:00", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), false},
		{"23:59", time.Date(2025, time.January, 5, 23, 59, 0, 0, time.UTC), false},
		{"24:00", time.Time{}, true},
		{"2:52pm", time.Time{}, true},
		{"noon", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseAt(tt.value, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAt(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("parseAt(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("FUZZYPLUS_LOG_LEVEL", "debug")
	t.Setenv("FUZZYPLUS_BEFORE_TEXT", "about")

	v := newSettings()
	if got := v.GetString("log-level"); got != "debug" {
		t.Errorf("log-level = %q, want debug", got)
	}
	if got := v.GetString("before-text"); got != "about" {
		t.Errorf("before-text = %q, want about", got)
	}
}
