// Package display draws the watchface in a terminal.
//
// Canvas implements the face controller's display surface. The watch's
// 144×168 pixel screen is scaled to a 36×21 cell grid (4 pixels per
// column, 8 per row); each slot's text is word-wrapped to its box width,
// aligned as the box table says and centred vertically in the box.
// Terminals have one glyph size, so the font size of a slot is expressed
// through weight: huge and large text is bold (huge is also upper-cased),
// small text is italic and tiny text is faint.
//
// PlainString gives an unstyled rendition for tests and pipes; Render and
// RenderFace add lipgloss styling and the bezel.
package display
