package face

import (
	"errors"
	"testing"
	"time"

	"github.com/muurk/fuzzyplus/internal/clock"
	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/fuzzy"
)

// recordingDisplay keeps the current text of every slot and counts writes.
type recordingDisplay struct {
	text   map[fuzzy.TextBoxID]string
	writes int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{text: make(map[fuzzy.TextBoxID]string)}
}

func (d *recordingDisplay) SetText(id fuzzy.TextBoxID, text string) {
	d.text[id] = text
	d.writes++
}

func newTestController(t *testing.T, at time.Time, opts ...Option) (*Controller, *recordingDisplay, *clock.Fixed) {
	t.Helper()
	display := newRecordingDisplay()
	clk := clock.NewFixed(at)
	c, err := NewController(display, clk, opts...)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c, display, clk
}

func TestNewController_RequiresCollaborators(t *testing.T) {
	if _, err := NewController(nil, clock.Real{}); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("NewController(nil display) error = %v, want %v", err, ErrNoDisplay)
	}
	if _, err := NewController(newRecordingDisplay(), nil); !errors.Is(err, ErrNoClock) {
		t.Errorf("NewController(nil clock) error = %v, want %v", err, ErrNoClock)
	}
}

func TestController_Start(t *testing.T) {
	c, display, _ := newTestController(t, time.Date(2025, time.January, 5, 3, 0, 0, 0, time.UTC))

	frame := c.Start()

	if c.DetailVisible() {
		t.Error("DetailVisible() = true after Start, want false")
	}
	if got := frame.Text(fuzzy.BigHour); got != "three" {
		t.Errorf("BigHour = %q, want three", got)
	}
	if frame.HasDetail() {
		t.Error("start frame should not carry detail")
	}
	if display.writes != fuzzy.BoxCount {
		t.Errorf("display writes = %d, want %d", display.writes, fuzzy.BoxCount)
	}
	for _, id := range fuzzy.AllBoxes {
		if display.text[id] != frame.Text(id) {
			t.Errorf("display %v = %q, frame has %q", id, display.text[id], frame.Text(id))
		}
	}
}

func TestController_Transitions(t *testing.T) {
	at := time.Date(2025, time.January, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		events      []string
		wantVisible bool
		wantDetail  bool
	}{
		{"tap shows detail", []string{"tap"}, true, true},
		{"second tap hides detail", []string{"tap", "tap"}, false, false},
		{"tick hides detail", []string{"tap", "tick"}, false, false},
		{"tick while hidden stays hidden", []string{"tick"}, false, false},
		{"tap after tick shows detail", []string{"tap", "tick", "tap"}, true, true},
		{"three taps", []string{"tap", "tap", "tap"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(t, at)
			c.Start()

			var frame Frame
			for _, ev := range tt.events {
				switch ev {
				case "tap":
					frame = c.Tap()
				case "tick":
					frame = c.MinuteTick(at)
				}
			}

			if c.DetailVisible() != tt.wantVisible {
				t.Errorf("DetailVisible() = %v, want %v", c.DetailVisible(), tt.wantVisible)
			}
			if frame.HasDetail() != tt.wantDetail {
				t.Errorf("HasDetail() = %v, want %v", frame.HasDetail(), tt.wantDetail)
			}
		})
	}
}

func TestController_TapDetailScenario(t *testing.T) {
	c, display, _ := newTestController(t, time.Date(2025, time.January, 5, 14, 30, 0, 0, time.UTC))
	c.Start()

	frame := c.Tap()

	want := map[fuzzy.TextBoxID]string{
		fuzzy.Line1:        " half",
		fuzzy.Line2:        "past",
		fuzzy.Line3:        "two",
		fuzzy.BottomDetail: "Sun 05",
		fuzzy.Time:         " 2:30",
		fuzzy.AmPm:         "pm",
	}
	for _, id := range fuzzy.AllBoxes {
		if got := frame.Text(id); got != want[id] {
			t.Errorf("frame %v = %q, want %q", id, got, want[id])
		}
		if got := display.text[id]; got != want[id] {
			t.Errorf("display %v = %q, want %q", id, got, want[id])
		}
	}
}

func TestController_DoubleTapRestoresPhrase(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 7 {
			at := time.Date(2025, time.June, 1, hour, minute, 0, 0, time.UTC)
			c, _, _ := newTestController(t, at)

			before := c.Start()
			visible := c.DetailVisible()

			c.Tap()
			after := c.Tap()

			if c.DetailVisible() != visible {
				t.Errorf("%02d:%02d DetailVisible() = %v after two taps, want %v", hour, minute, c.DetailVisible(), visible)
			}
			if !after.PhraseEqual(before) {
				t.Errorf("%02d:%02d phrase after two taps = %v, want %v", hour, minute, after.Map(), before.Map())
			}
			if after != before {
				t.Errorf("%02d:%02d frame after two taps = %v, want %v", hour, minute, after.Map(), before.Map())
			}
		}
	}
}

func TestController_NoStaleText(t *testing.T) {
	c, display, clk := newTestController(t, time.Date(2025, time.January, 5, 3, 11, 0, 0, time.UTC))

	c.Start()
	if display.text[fuzzy.Line1] != "quarter" {
		t.Fatalf("Line1 = %q, want quarter", display.text[fuzzy.Line1])
	}

	c.Tap()
	clk.Set(time.Date(2025, time.January, 5, 4, 0, 0, 0, time.UTC))
	c.MinuteTick(clk.Now())

	for _, id := range fuzzy.AllBoxes {
		want := ""
		if id == fuzzy.BigHour {
			want = "four"
		}
		if display.text[id] != want {
			t.Errorf("display %v = %q, want %q", id, display.text[id], want)
		}
	}
}

func TestController_TapReadsClockAtDispatch(t *testing.T) {
	c, _, clk := newTestController(t, time.Date(2025, time.January, 5, 9, 59, 0, 0, time.UTC))
	c.Start()

	clk.Set(time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC))
	frame := c.Tap()

	if got := frame.Text(fuzzy.Time); got != "10:00" {
		t.Errorf("Time = %q, want 10:00", got)
	}
	if got := frame.Text(fuzzy.BigHour); got != "ten" {
		t.Errorf("BigHour = %q, want ten", got)
	}
}

func TestController_Schedule(t *testing.T) {
	sched := DefaultSchedule()
	c, _, _ := newTestController(t, time.Date(2025, time.January, 5, 17, 42, 0, 0, time.UTC), WithSchedule(sched))
	c.Start()

	if !c.Testing() {
		t.Fatal("Testing() = false with a schedule")
	}

	want := []string{
		"twelve",
		"twelve",
		"gone twelve",
		"getting on for quarter past twelve",
		"quarter past twelve",
		"gone quarter past twelve",
		"getting on for half past twelve",
		"half past twelve",
		"gone half past twelve",
		"getting on for quarter to one",
		"quarter to one",
		"gone quarter to one",
		"getting on for one",
	}

	for i, w := range want {
		frame := c.Tap()
		if got := fuzzy.BuildPhrase(0, sched.Minutes[i]).Phrase(); got != w {
			t.Errorf("entry %d (minute %d) phrase = %q, want %q", i, sched.Minutes[i], got, w)
		}
		if !frame.PhraseEqual(NewFrame(fuzzy.BuildPhrase(0, sched.Minutes[i]), nil)) {
			t.Errorf("entry %d frame = %v, want phrase for 00:%02d", i, frame.Map(), sched.Minutes[i])
		}
		wantDetail := i%2 == 0
		if frame.HasDetail() != wantDetail {
			t.Errorf("entry %d HasDetail() = %v, want %v", i, frame.HasDetail(), wantDetail)
		}
	}

	if sched.Position() != 0 {
		t.Errorf("schedule position = %d after a full cycle, want 0", sched.Position())
	}
}

func TestController_BeforeText(t *testing.T) {
	c, _, _ := newTestController(t, time.Date(2025, time.January, 5, 3, 0, 0, 0, time.UTC), WithBeforeText("It's"))
	before := c.Start()

	if got := c.BeforeText(); got != "It's" {
		t.Errorf("BeforeText() = %q, want It's", got)
	}

	c.SetBeforeText("Around")
	if got := c.BeforeText(); got != "Around" {
		t.Errorf("BeforeText() = %q, want Around", got)
	}

	if after := c.MinuteTick(time.Date(2025, time.January, 5, 3, 0, 0, 0, time.UTC)); after != before {
		t.Errorf("frame changed after SetBeforeText: %v vs %v", after.Map(), before.Map())
	}
}

func TestController_Configure(t *testing.T) {
	at := time.Date(2025, time.January, 5, 14, 52, 0, 0, time.UTC)
	c, display, _ := newTestController(t, at)
	before := c.Start()
	writes := display.writes

	c.Configure(config.BeforeTextUpdate("nearly"))
	if got := c.BeforeText(); got != "nearly" {
		t.Errorf("BeforeText() = %q, want nearly", got)
	}

	// Unknown keys only: nothing stored, nothing drawn
	c.Configure(config.Update{Ignored: []string{"Colour"}})
	if got := c.BeforeText(); got != "nearly" {
		t.Errorf("BeforeText() = %q after empty update, want nearly", got)
	}

	if display.writes != writes {
		t.Errorf("display writes = %d after Configure, want %d", display.writes, writes)
	}
	if c.Frame() != before {
		t.Error("Configure changed the frame")
	}
}

func TestController_Close(t *testing.T) {
	c, display, _ := newTestController(t, time.Date(2025, time.January, 5, 3, 0, 0, 0, time.UTC))
	c.Start()
	writes := display.writes

	c.Close()
	frame := c.Tap()

	if display.writes != writes {
		t.Errorf("display writes = %d after Close, want %d", display.writes, writes)
	}
	if !frame.HasDetail() {
		t.Error("Tap after Close should still compute the frame")
	}
}
