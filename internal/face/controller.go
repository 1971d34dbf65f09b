package face

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/clock"
	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/fuzzy"
	"github.com/muurk/fuzzyplus/internal/logging"
)

var (
	// ErrNoDisplay is returned when a controller is built without a display.
	ErrNoDisplay = errors.New("face: display surface is required")
	// ErrNoClock is returned when a controller is built without a clock.
	ErrNoClock = errors.New("face: clock is required")
)

// Display is the text surface the controller draws on. SetText must be
// cheap and idempotent; an empty string clears the slot.
type Display interface {
	SetText(id fuzzy.TextBoxID, text string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSchedule enables the layout test hook: taps step through s instead
// of reading the clock's hour and minute.
func WithSchedule(s *Schedule) Option {
	return func(c *Controller) {
		c.schedule = s
	}
}

// WithBeforeText seeds the stored BeforeText option, usually from the
// persisted configuration.
func WithBeforeText(text string) Option {
	return func(c *Controller) {
		c.beforeText = text
	}
}

// Controller owns the face state: whether the detail overlay is showing,
// and the last frame pushed to the display. It is not safe for concurrent
// use; all events must be delivered from one event loop.
type Controller struct {
	display  Display
	clock    clock.Clock
	schedule *Schedule

	detailVisible bool
	beforeText    string
	frame         Frame
}

// NewController creates a controller drawing on display and reading time
// from clk.
func NewController(display Display, clk clock.Clock, opts ...Option) (*Controller, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}
	if clk == nil {
		return nil, ErrNoClock
	}

	c := &Controller{
		display: display,
		clock:   clk,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start shows the current time with the overlay hidden.
func (c *Controller) Start() Frame {
	c.detailVisible = false
	return c.show(c.clock.Now(), "start")
}

// MinuteTick hides the overlay and shows t.
func (c *Controller) MinuteTick(t time.Time) Frame {
	c.detailVisible = false
	return c.show(t, "minute_tick")
}

// Tap toggles the overlay and redraws with the clock's current time, or
// with the next schedule entry when the test hook is on.
func (c *Controller) Tap() Frame {
	c.detailVisible = !c.detailVisible

	now := c.clock.Now()
	if c.schedule != nil {
		hour, minute := c.schedule.Next()
		now = time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	}
	return c.show(now, "tap")
}

// SetBeforeText stores the BeforeText option. It does not change the face.
func (c *Controller) SetBeforeText(text string) {
	c.beforeText = text
	logging.Debug("Configuration updated", zap.String("before_text", text))
}

// Configure applies an update from the companion app. Options the face
// does not know are ignored; none of them change the frame.
func (c *Controller) Configure(u config.Update) {
	if u.BeforeText != nil {
		c.SetBeforeText(*u.BeforeText)
	}
}

// BeforeText returns the stored BeforeText option.
// TODO: render it once its placement relative to TopDetail is settled.
func (c *Controller) BeforeText() string {
	return c.beforeText
}

// DetailVisible reports whether the overlay is showing.
func (c *Controller) DetailVisible() bool {
	return c.detailVisible
}

// Testing reports whether the schedule test hook is enabled.
func (c *Controller) Testing() bool {
	return c.schedule != nil
}

// Frame returns the last frame shown.
func (c *Controller) Frame() Frame {
	return c.frame
}

// Close releases the display. Later events still update state but draw
// nothing.
func (c *Controller) Close() {
	c.display = nil
}

func (c *Controller) show(t time.Time, event string) Frame {
	var detail *fuzzy.Detail
	if c.detailVisible {
		d := fuzzy.FormatDetail(t)
		detail = &d
	}

	c.frame = NewFrame(fuzzy.BuildPhrase(t.Hour(), t.Minute()), detail)
	if c.display != nil {
		c.frame.pushTo(c.display)
	}

	logging.Debug("Frame shown",
		zap.String("event", event),
		zap.String("time", t.Format("15:04")),
		zap.Bool("detail_visible", c.detailVisible),
		zap.Any("slots", c.frame.Map()),
	)
	return c.frame
}
