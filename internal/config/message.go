package config

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// KeyBeforeText is the configuration key for the BeforeText option.
const KeyBeforeText = "BeforeText"

// MaxBeforeTextLen bounds BeforeText in bytes; the companion app limits it
// to a short phrase.
const MaxBeforeTextLen = 64

// ErrMalformedMessage is wrapped by every ParseMessage error.
var ErrMalformedMessage = errors.New("malformed configuration message")

// Update is a parsed configuration message. Nil fields were absent.
type Update struct {
	BeforeText *string

	// Ignored lists keys that were present but not recognised.
	Ignored []string
}

// Keys returns the recognised keys carried by the update.
func (u Update) Keys() []string {
	var keys []string
	if u.BeforeText != nil {
		keys = append(keys, KeyBeforeText)
	}
	return keys
}

// Empty reports whether the update carries no recognised option.
func (u Update) Empty() bool {
	return u.BeforeText == nil
}

// ParseMessage validates a key/value dictionary from the companion app.
// Unknown keys are skipped. A recognised key with the wrong type is an
// error and nothing from the message is applied.
func ParseMessage(msg map[string]any) (Update, error) {
	var u Update
	if msg == nil {
		return u, fmt.Errorf("%w: empty message", ErrMalformedMessage)
	}

	for key, value := range msg {
		switch key {
		case KeyBeforeText:
			s, ok := value.(string)
			if !ok {
				return Update{}, fmt.Errorf("%w: %s must be a string, got %T", ErrMalformedMessage, key, value)
			}
			if !utf8.ValidString(s) {
				return Update{}, fmt.Errorf("%w: %s is not valid UTF-8", ErrMalformedMessage, key)
			}
			if len(s) > MaxBeforeTextLen {
				return Update{}, fmt.Errorf("%w: %s longer than %d bytes", ErrMalformedMessage, key, MaxBeforeTextLen)
			}
			u.BeforeText = &s
		default:
			u.Ignored = append(u.Ignored, key)
		}
	}

	sort.Strings(u.Ignored)
	return u, nil
}

// BeforeTextUpdate builds an update that sets BeforeText.
func BeforeTextUpdate(text string) Update {
	return Update{BeforeText: &text}
}

// Message converts the update back to the wire dictionary.
func (u Update) Message() map[string]any {
	m := make(map[string]any)
	if u.BeforeText != nil {
		m[KeyBeforeText] = *u.BeforeText
	}
	return m
}
