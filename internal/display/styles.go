package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/fuzzyplus/internal/fuzzy"
)

// Color palette
var (
	BackgroundColor = lipgloss.Color("#000000") // Black - watch background
	TextColor       = lipgloss.Color("#FFFFFF") // White - all face text
	PrimaryColor    = lipgloss.Color("#7D56F4") // Purple - bezel
	MutedColor      = lipgloss.Color("#626262") // Gray - status and help
	WarningColor    = lipgloss.Color("#FFA500") // Orange - testing banner
)

// Layout constants
const (
	MinTerminalWidth  = Columns + 4 // canvas plus bezel and padding
	MinTerminalHeight = Rows + 2
)

// Styles
var (
	faceBase = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(BackgroundColor)

	// BezelStyle draws the watch case around the canvas
	BezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Background(BackgroundColor).
			Padding(0, 1)

	// StatusStyle is for the line under the face
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// TestingStyle marks the schedule test hook
	TestingStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// FontStyle returns the style used for text in a font size. Terminals have
// a single glyph size, so weight stands in for point size.
func FontStyle(size fuzzy.FontSize) lipgloss.Style {
	switch size {
	case fuzzy.FontHuge, fuzzy.FontLarge:
		return faceBase.Bold(true)
	case fuzzy.FontSmall:
		return faceBase.Italic(true)
	case fuzzy.FontTiny:
		return faceBase.Faint(true)
	default:
		return faceBase
	}
}

// Render returns the canvas styled with lipgloss, without the bezel.
func Render(c *Canvas) string {
	grid := c.Cells()

	var out []byte
	for y := range grid {
		if y > 0 {
			out = append(out, '\n')
		}

		// Emit runs of cells sharing a font as one styled segment
		start := 0
		for x := 1; x <= Columns; x++ {
			if x < Columns && grid[y][x].Font == grid[y][start].Font {
				continue
			}
			var seg []rune
			for _, cell := range grid[y][start:x] {
				if cell.Rune == 0 {
					seg = append(seg, ' ')
				} else {
					seg = append(seg, cell.Rune)
				}
			}
			out = append(out, FontStyle(grid[y][start].Font).Render(string(seg))...)
			start = x
		}
	}
	return string(out)
}

// RenderFace returns the styled canvas inside the bezel.
func RenderFace(c *Canvas) string {
	return BezelStyle.Render(Render(c))
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, MinTerminalHeight // Default fallback
	}
	return width, height
}

// Center places a rendered block in the middle of a width x height area.
func Center(width, height int, block string) string {
	if width < lipgloss.Width(block) || height < lipgloss.Height(block) {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
