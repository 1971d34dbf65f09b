// Package face implements the watchface controller: the small event-driven
// state machine that decides what the display shows.
//
// The controller holds a single flag, whether the detail overlay is
// visible, and reacts to two events:
//
//	State          Event        Next state     Output
//	any            MinuteTick   hidden         phrase-only frame
//	hidden         Tap          visible        phrase + detail frame
//	visible        Tap          hidden         phrase-only frame
//
// Every event produces a complete Frame which is written slot by slot to
// the Display, blank slots included.
//
// The controller is not safe for concurrent use. The host must deliver all
// events from one event loop (see package watch).
package face
