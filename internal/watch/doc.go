// Package watch runs the face as a Bubble Tea program.
//
// The program is the single event loop of the watch. Minute ticks arrive
// from tea.Every aligned to the wall clock, key presses stand in for wrist
// taps, and companion updates are posted with Program.Send through
// ConfigSink. Nothing outside Update touches the face controller.
package watch
