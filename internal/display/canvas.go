package display

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/fuzzyplus/internal/fuzzy"
)

// Scale from display pixels to terminal cells.
const (
	PixelsPerColumn = 4
	PixelsPerRow    = 8

	Columns = fuzzy.DisplayWidth / PixelsPerColumn
	Rows    = fuzzy.DisplayHeight / PixelsPerRow
)

// Cell is one character position on the canvas.
type Cell struct {
	Rune rune
	Font fuzzy.FontSize // zero for background
}

// Canvas is a terminal rendition of the watch display. It implements the
// face controller's display surface: it stores the text of each slot and
// lays the slots out on demand.
type Canvas struct {
	text [fuzzy.BoxCount]string
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// SetText replaces the text of a slot. Unknown slots are ignored.
func (c *Canvas) SetText(id fuzzy.TextBoxID, text string) {
	if !id.Valid() {
		return
	}
	c.text[id] = text
}

// Text returns the current text of a slot.
func (c *Canvas) Text(id fuzzy.TextBoxID) string {
	if !id.Valid() {
		return ""
	}
	return c.text[id]
}

// Clear blanks every slot.
func (c *Canvas) Clear() {
	c.text = [fuzzy.BoxCount]string{}
}

// Cells lays out every slot in drawing order. Later slots overwrite
// earlier ones only where they draw a glyph.
func (c *Canvas) Cells() [Rows][Columns]Cell {
	var grid [Rows][Columns]Cell
	for _, id := range fuzzy.AllBoxes {
		if c.text[id] == "" {
			continue
		}
		drawBox(&grid, fuzzy.LayoutOf(id), c.text[id])
	}
	return grid
}

// PlainString renders the canvas without styling, one line per row.
func (c *Canvas) PlainString() string {
	grid := c.Cells()

	lines := make([]string, Rows)
	for y := range grid {
		var b strings.Builder
		for _, cell := range grid[y] {
			if cell.Rune == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteRune(cell.Rune)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// BoxCells converts a pixel rectangle to cell coordinates.
func BoxCells(r fuzzy.Rect) (col, row, width, height int) {
	col = r.X / PixelsPerColumn
	row = r.Y / PixelsPerRow
	width = max(1, r.W/PixelsPerColumn)
	height = max(1, r.H/PixelsPerRow)
	return col, row, width, height
}

func drawBox(grid *[Rows][Columns]Cell, box fuzzy.BoxLayout, text string) {
	col, row, width, height := BoxCells(box.Rect)

	if box.Font == fuzzy.FontHuge {
		text = strings.ToUpper(text)
	}
	lines := wrapText(text, width)

	// Centre the block vertically, clipping what does not fit.
	top := row + max(0, (height-len(lines))/2)
	for i, line := range lines {
		y := top + i
		if y >= row+height || y >= Rows {
			break
		}

		runes := []rune(line)
		if len(runes) > width {
			runes = runes[:width]
		}

		var x int
		switch box.Align {
		case fuzzy.AlignCenter:
			x = col + (width-len(runes))/2
		case fuzzy.AlignRight:
			x = col + width - len(runes)
		default:
			x = col
		}

		for j, r := range runes {
			if r == ' ' || x+j >= Columns {
				continue
			}
			grid[y][x+j] = Cell{Rune: r, Font: box.Font}
		}
	}
}

// wrapText word-wraps text to width cells. Text that already fits is
// returned untouched so leading spaces survive.
func wrapText(text string, width int) []string {
	if ansi.StringWidth(text) <= width {
		return []string{text}
	}
	return strings.Split(ansi.Wordwrap(text, width, ""), "\n")
}
