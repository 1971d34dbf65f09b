package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name        string
		msg         map[string]any
		wantBefore  *string
		wantIgnored []string
		wantErr     bool
	}{
		{
			name:       "before text",
			msg:        map[string]any{"BeforeText": "It's"},
			wantBefore: strPtr("It's"),
		},
		{
			name:       "empty before text clears the option",
			msg:        map[string]any{"BeforeText": ""},
			wantBefore: strPtr(""),
		},
		{
			name:        "unknown keys are ignored",
			msg:         map[string]any{"Theme": "dark", "BeforeText": "about", "Accent": 3},
			wantBefore:  strPtr("about"),
			wantIgnored: []string{"Accent", "Theme"},
		},
		{
			name:        "no recognised keys",
			msg:         map[string]any{"Theme": "dark"},
			wantIgnored: []string{"Theme"},
		},
		{
			name:    "before text must be a string",
			msg:     map[string]any{"BeforeText": 42.0},
			wantErr: true,
		},
		{
			name:    "before text too long",
			msg:     map[string]any{"BeforeText": strings.Repeat("x", MaxBeforeTextLen+1)},
			wantErr: true,
		},
		{
			name:    "invalid utf-8",
			msg:     map[string]any{"BeforeText": string([]byte{0xff, 0xfe})},
			wantErr: true,
		},
		{
			name:    "nil message",
			msg:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMessage(tt.msg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrMalformedMessage) {
					t.Errorf("error %v should wrap ErrMalformedMessage", err)
				}
				if !got.Empty() {
					t.Errorf("malformed message should yield an empty update, got %+v", got)
				}
				return
			}

			if !reflect.DeepEqual(got.BeforeText, tt.wantBefore) {
				t.Errorf("BeforeText = %v, want %v", deref(got.BeforeText), deref(tt.wantBefore))
			}
			if !reflect.DeepEqual(got.Ignored, tt.wantIgnored) {
				t.Errorf("Ignored = %v, want %v", got.Ignored, tt.wantIgnored)
			}
		})
	}
}

func TestUpdate_Message(t *testing.T) {
	u := BeforeTextUpdate("Nearly")

	if got := u.Keys(); !reflect.DeepEqual(got, []string{KeyBeforeText}) {
		t.Errorf("Keys() = %v", got)
	}

	parsed, err := ParseMessage(u.Message())
	if err != nil {
		t.Fatalf("ParseMessage(Message()) error = %v", err)
	}
	if deref(parsed.BeforeText) != "Nearly" {
		t.Errorf("BeforeText = %q, want Nearly", deref(parsed.BeforeText))
	}

	if len((Update{}).Message()) != 0 {
		t.Error("empty update should produce an empty message")
	}
}

func strPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
