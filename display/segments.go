// Package display holds the alphanumeric panel layout shared by the frame
// tick and the frontends: two rows of sixteen digits, sixteen segment
// outputs per digit.
package display

const (
	NumDigits = 32
	RowLength = 16

	// The controller's segment accumulator is laid out in two rows of
	// twenty columns; only the first sixteen of each row drive digits.
	RowStride = 20
)

// segmentSwap gives, most significant output pin first, the accumulator bit
// wired to each display output pin.
var segmentSwap = [16]uint{15, 7, 12, 10, 8, 14, 13, 9, 11, 6, 5, 4, 3, 2, 1, 0}

// PinOrder reorders a raw 16-bit segment word from accumulator bit order
// into output pin order.
func PinOrder(raw uint16) uint16 {
	var out uint16
	for i, src := range segmentSwap {
		out |= ((raw >> src) & 1) << (15 - i)
	}
	return out
}
