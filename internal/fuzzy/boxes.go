package fuzzy

import "fmt"

// Display dimensions in pixels.
const (
	DisplayWidth  = 144
	DisplayHeight = 168
)

// TextBoxID identifies one of the fixed text slots on the face.
type TextBoxID int

const (
	TopDetail TextBoxID = iota
	Line1
	Line2
	Line3
	BigHour
	BottomDetail
	Time
	AmPm

	// BoxCount is the number of text slots.
	BoxCount = int(AmPm) + 1
)

// String returns the slot name
func (id TextBoxID) String() string {
	switch id {
	case TopDetail:
		return "TopDetail"
	case Line1:
		return "Line1"
	case Line2:
		return "Line2"
	case Line3:
		return "Line3"
	case BigHour:
		return "BigHour"
	case BottomDetail:
		return "BottomDetail"
	case Time:
		return "Time"
	case AmPm:
		return "AmPm"
	default:
		return fmt.Sprintf("TextBoxID(%d)", int(id))
	}
}

// Valid reports whether id names one of the eight slots.
func (id TextBoxID) Valid() bool {
	return id >= TopDetail && id <= AmPm
}

// AllBoxes lists every slot in drawing order.
var AllBoxes = [BoxCount]TextBoxID{
	TopDetail, Line1, Line2, Line3, BigHour, BottomDetail, Time, AmPm,
}

// FontSize is the point size of a slot's font.
type FontSize int

const (
	FontHuge   FontSize = 48
	FontLarge  FontSize = 38
	FontMedium FontSize = 28
	FontSmall  FontSize = 20
	FontDetail FontSize = 16
	FontTiny   FontSize = 10
)

// Alignment is the horizontal alignment of text inside a slot.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns a lowercase alignment name
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Rect is a pixel rectangle on the display.
type Rect struct {
	X, Y, W, H int
}

// BoxLayout is the static geometry of one slot.
type BoxLayout struct {
	Rect  Rect
	Font  FontSize
	Align Alignment
}

// Boxes is the geometry table, indexed by TextBoxID. It is never modified.
var Boxes = [BoxCount]BoxLayout{
	TopDetail:    {Rect{0, 0, 144, 28}, FontSmall, AlignRight},
	Line1:        {Rect{0, 20, 144, 48}, FontLarge, AlignLeft},
	Line2:        {Rect{0, 54, 144, 48}, FontLarge, AlignCenter},
	Line3:        {Rect{0, 92, 144, 48}, FontLarge, AlignRight},
	BigHour:      {Rect{0, 40, 144, 60}, FontHuge, AlignCenter},
	BottomDetail: {Rect{0, 148, 90, 20}, FontDetail, AlignLeft},
	Time:         {Rect{72, 148, 54, 20}, FontDetail, AlignRight},
	AmPm:         {Rect{128, 154, 16, 14}, FontTiny, AlignLeft},
}

// LayoutOf returns the geometry of a slot.
func LayoutOf(id TextBoxID) BoxLayout {
	return Boxes[id]
}
