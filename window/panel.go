package window

import (
	"fmt"

	"github.com/ushitora-anqou/aqpin/display"
)

// Panel rasterizes the two rows of sixteen-segment digits into an intensity
// buffer the frontends colorize and present.
const (
	CellWidth   = 24
	CellHeight  = 40
	PanelWidth  = display.RowLength * CellWidth
	PanelHeight = 2 * CellHeight
)

// Segment endpoints inside one cell, indexed by output pin. Pins 0-13 are
// the fourteen segments, 14 the period, 15 the comma tail.
var segmentLines = [16][4]int{
	{4, 4, 18, 4},    // a: top
	{18, 4, 18, 19},  // b: top right
	{18, 19, 18, 34}, // c: bottom right
	{4, 34, 18, 34},  // d: bottom
	{4, 19, 4, 34},   // e: bottom left
	{4, 4, 4, 19},    // f: top left
	{4, 19, 11, 19},  // g1: middle left
	{11, 19, 18, 19}, // g2: middle right
	{4, 4, 11, 19},   // h: upper-left diagonal
	{11, 4, 11, 19},  // j: upper vertical
	{18, 4, 11, 19},  // k: upper-right diagonal
	{11, 19, 4, 34},  // l: lower-left diagonal
	{11, 19, 11, 34}, // m: lower vertical
	{11, 19, 18, 34}, // n: lower-right diagonal
	{21, 34, 21, 34}, // period
	{21, 35, 20, 38}, // comma
}

type Panel struct {
	digits [display.NumDigits]uint16
}

func (p *Panel) DrawDigits(digits []uint16) error {
	if len(digits) != display.NumDigits {
		return fmt.Errorf(
			"invalid length of digit data: expected %d, got %d",
			display.NumDigits,
			len(digits),
		)
	}
	copy(p.digits[:], digits)
	return nil
}

func (p *Panel) Digits() []uint16 {
	return p.digits[:]
}

// Render rasterizes the current snapshot into a PanelWidth*PanelHeight
// intensity buffer, one byte per pixel.
func (p *Panel) Render() []uint8 {
	buf := make([]uint8, PanelWidth*PanelHeight)
	for i, segs := range p.digits {
		col := i % display.RowLength
		row := i / display.RowLength
		orgX := col * CellWidth
		orgY := row * CellHeight
		for pin := 0; pin < 16; pin++ {
			if segs&(1<<(15-pin)) == 0 {
				continue
			}
			l := segmentLines[pin]
			drawLine(buf, orgX+l[0], orgY+l[1], orgX+l[2], orgY+l[3])
		}
	}
	return buf
}

func drawLine(buf []uint8, x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		buf[y0*PanelWidth+x0] = 0xff
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		buf[y*PanelWidth+x] = 0xff
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
