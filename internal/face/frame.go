package face

import "github.com/muurk/fuzzyplus/internal/fuzzy"

// Frame is a complete snapshot of every slot on the face. A new Frame is
// built for each event and every slot is written to the display, so text
// from an earlier frame never survives.
type Frame struct {
	text [fuzzy.BoxCount]string
}

// NewFrame builds a frame from a phrase layout and an optional detail
// overlay. A nil detail leaves the detail slots blank.
func NewFrame(phrase fuzzy.PhraseLayout, detail *fuzzy.Detail) Frame {
	var f Frame
	for _, id := range fuzzy.AllBoxes {
		f.text[id] = phrase.Text(id)
	}
	if detail != nil {
		f.text[fuzzy.BottomDetail] = detail.Date
		f.text[fuzzy.Time] = detail.Time
		f.text[fuzzy.AmPm] = detail.AmPm
	}
	return f
}

// Text returns the text of one slot.
func (f Frame) Text(id fuzzy.TextBoxID) string {
	if !id.Valid() {
		return ""
	}
	return f.text[id]
}

// HasDetail reports whether any detail slot carries text.
func (f Frame) HasDetail() bool {
	return f.text[fuzzy.BottomDetail] != "" || f.text[fuzzy.Time] != "" || f.text[fuzzy.AmPm] != ""
}

// PhraseEqual reports whether two frames show the same phrase, ignoring
// the detail overlay.
func (f Frame) PhraseEqual(other Frame) bool {
	for _, id := range []fuzzy.TextBoxID{fuzzy.TopDetail, fuzzy.Line1, fuzzy.Line2, fuzzy.Line3, fuzzy.BigHour} {
		if f.text[id] != other.text[id] {
			return false
		}
	}
	return true
}

// Map returns the non-empty slots keyed by slot name. Used for logging
// and JSON output.
func (f Frame) Map() map[string]string {
	m := make(map[string]string)
	for _, id := range fuzzy.AllBoxes {
		if f.text[id] != "" {
			m[id.String()] = f.text[id]
		}
	}
	return m
}

// pushTo writes every slot, blank ones included, to the display.
func (f Frame) pushTo(d Display) {
	for _, id := range fuzzy.AllBoxes {
		d.SetText(id, f.text[id])
	}
}
