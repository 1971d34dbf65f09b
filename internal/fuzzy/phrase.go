package fuzzy

import "strings"

// Tolerance is the number of minutes either side of a quarter that is
// shown without a qualifier.
const Tolerance = 3

// BigHourMaxLen is the longest hour word that still fits the BigHour slot.
const BigHourMaxLen = 6

// Phrase fragments. The leading spaces in QuarterHalf and PhraseTo nudge
// the short words towards the centre of their left/centre aligned slots.
const (
	QualifierBefore = "getting on for"
	QualifierAfter  = "gone"
	QuarterWord     = "quarter"
	QuarterHalf     = " half"
	PhrasePast      = "past"
	PhraseTo        = "  to"
)

var hourWords = [12]string{
	"twelve",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
}

// HourWord returns the spoken word for an hour, reduced modulo 12.
// Negative hours wrap the same way.
func HourWord(hour int) string {
	h := hour % 12
	if h < 0 {
		h += 12
	}
	return hourWords[h]
}

// PhraseLayout is the text the phrase builder places in each slot.
// Only TopDetail, Line1, Line2, Line3 and BigHour are ever non-empty.
type PhraseLayout struct {
	text [BoxCount]string
}

// Text returns the text of a slot, or "" for an unknown slot.
func (l PhraseLayout) Text(id TextBoxID) string {
	if !id.Valid() {
		return ""
	}
	return l.text[id]
}

// Filled returns the non-empty slots in drawing order.
func (l PhraseLayout) Filled() []TextBoxID {
	var ids []TextBoxID
	for _, id := range AllBoxes {
		if l.text[id] != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Phrase joins the filled slots into a single line, e.g.
// "gone quarter past three".
func (l PhraseLayout) Phrase() string {
	words := make([]string, 0, 4)
	for _, id := range l.Filled() {
		words = append(words, strings.TrimSpace(l.text[id]))
	}
	return strings.Join(words, " ")
}

func (l *PhraseLayout) set(id TextBoxID, s string) {
	l.text[id] = s
}

// Quarter is the nearest quarter hour after reduction modulo 4.
type Quarter int

const (
	OClock Quarter = iota
	QuarterPast
	HalfPast
	QuarterTo
)

// Rounding is the intermediate result of rounding a minute to a quarter.
type Rounding struct {
	// Quarter is in [0,4] before reduction; 4 means the next o'clock.
	Quarter int
	// Offset is minute - Quarter*15, in [-7,7].
	Offset int
}

// RoundMinute rounds minute to the nearest quarter, ties upward.
func RoundMinute(minute int) Rounding {
	q := (minute + 7) / 15
	return Rounding{Quarter: q, Offset: minute - q*15}
}

// UsesTo reports whether the phrase refers to the following hour.
func (r Rounding) UsesTo() bool {
	return r.Quarter > 2
}

// Reduced returns the quarter modulo 4.
func (r Rounding) Reduced() Quarter {
	return Quarter(r.Quarter % 4)
}

// Qualifier returns "getting on for", "gone" or "" for the offset.
func (r Rounding) Qualifier() string {
	switch {
	case r.Offset < -Tolerance:
		return QualifierBefore
	case r.Offset > Tolerance:
		return QualifierAfter
	default:
		return ""
	}
}

// FitsBigHour reports whether an hour word is short enough for BigHour.
func FitsBigHour(word string) bool {
	return len(word) <= BigHourMaxLen
}

// BuildPhrase maps an hour in [0,23] and a minute in [0,59] to the
// phrase layout. It never fails.
func BuildPhrase(hour, minute int) PhraseLayout {
	var l PhraseLayout

	r := RoundMinute(minute)
	phrased := hour
	if r.UsesTo() {
		phrased++
	}
	word := HourWord(phrased)

	l.set(TopDetail, r.Qualifier())

	switch q := r.Reduced(); q {
	case OClock:
		placeHourWord(&l, word)
	default:
		first := QuarterWord
		if q == HalfPast {
			first = QuarterHalf
		}
		second := PhrasePast
		if q == QuarterTo {
			second = PhraseTo
		}
		l.set(Line1, first)
		l.set(Line2, second)
		l.set(Line3, word)
	}

	return l
}

// placeHourWord writes an o'clock hour into BigHour, or Line2 when the
// word is too long for the huge font.
func placeHourWord(l *PhraseLayout, word string) {
	if FitsBigHour(word) {
		l.set(BigHour, word)
		return
	}
	l.set(Line2, word)
}
