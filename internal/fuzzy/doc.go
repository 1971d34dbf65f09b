// Package fuzzy turns a wall-clock time into the text of the FuzzyPlus
// watchface.
//
// The package is pure: it performs no I/O and holds no mutable state. It
// provides three things:
//
//   - The text box table: eight fixed slots on a 144×168 display, each with
//     a rectangle, a font size and an alignment (see Boxes).
//   - The phrase builder: BuildPhrase maps an hour and minute to the words
//     shown on the face, rounded to the nearest quarter hour.
//   - The detail formatter: FormatDetail produces the small digital overlay
//     (weekday and day, 12-hour time, am/pm).
//
// # Phrasing
//
// Minutes are rounded to the nearest quarter with ties broken upwards, so
// 08 rounds to quarter past and 53 rounds to the next o'clock. When the
// rounded quarter is more than Tolerance minutes away from the real minute
// the phrase is qualified with "gone" or "getting on for":
//
//	03:04  →  gone / three
//	03:11  →  getting on for / quarter past three
//	03:48  →  quarter to four
//	03:49  →  gone / quarter to four
//
// Example:
//
//	layout := fuzzy.BuildPhrase(15, 30)
//	fmt.Println(layout.Text(fuzzy.Line1), layout.Text(fuzzy.Line2), layout.Text(fuzzy.Line3))
//	// " half past three"
package fuzzy
