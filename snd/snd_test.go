package snd

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// recordBoard is a primary-protocol coprocessor that records every
// operation.
type recordBoard struct {
	ops  []string
	ctrl uint8
	data uint8
}

func (b *recordBoard) CtrlRead() uint8 {
	b.ops = append(b.ops, "ctrl_r")
	return b.ctrl
}

func (b *recordBoard) CtrlWrite(val uint8) {
	b.ops = append(b.ops, fmt.Sprintf("ctrl_w:%02x", val))
}

func (b *recordBoard) DataRead() uint8 {
	b.ops = append(b.ops, "data_r")
	return b.data
}

func (b *recordBoard) DataWrite(val uint8) {
	b.ops = append(b.ops, fmt.Sprintf("data_w:%02x", val))
}

// recordLegacy is a latch-and-trigger background board that records the
// exact event order.
type recordLegacy struct {
	events []string
}

func (b *recordLegacy) DataWrite(val uint8) {
	b.events = append(b.events, fmt.Sprintf("latch:%02x", val))
}

func (b *recordLegacy) TriggerPulse(level bool) {
	b.events = append(b.events, fmt.Sprintf("trigger:%v", level))
}

func TestPrimaryForwarding(t *testing.T) {
	board := &recordBoard{ctrl: 0x80, data: 0x42}
	bridge := NewBridge(board)

	assert.Equal(t, uint8(0x80), bridge.CtrlRead())
	bridge.CtrlWrite(0x12)
	assert.Equal(t, uint8(0x42), bridge.DataRead())
	bridge.DataWrite(0x34)

	assert.Equal(t, []string{"ctrl_r", "ctrl_w:12", "data_r", "data_w:34"}, board.ops)
}

func TestPrimaryIgnoresStrobe(t *testing.T) {
	board := &recordBoard{}
	bridge := NewBridge(board)

	bridge.StrobeWrite(0x7f)
	assert.Equal(t, 0, len(board.ops))
}

func TestLegacyCtrlWriteLatchesThenPulses(t *testing.T) {
	board := &recordLegacy{}
	bridge := NewLegacyBridge(board)

	bridge.CtrlWrite(0x2a)
	assert.Equal(t, []string{"latch:2a", "trigger:true"}, board.events)
}

func TestLegacyDataWriteLeavesTriggerLow(t *testing.T) {
	board := &recordLegacy{}
	bridge := NewLegacyBridge(board)

	bridge.DataWrite(0x2a)
	assert.Equal(t, []string{"latch:2a", "trigger:false"}, board.events)
}

func TestLegacyDataThenCtrlOrder(t *testing.T) {
	board := &recordLegacy{}
	bridge := NewLegacyBridge(board)

	bridge.DataWrite(0x10)
	bridge.CtrlWrite(0x20)
	assert.Equal(t, []string{
		"latch:10", "trigger:false",
		"latch:20", "trigger:true",
	}, board.events)
}

func TestLegacyStrobeIsDataWritePlusTriggerCycle(t *testing.T) {
	strobed := &recordLegacy{}
	bridge := NewLegacyBridge(strobed)
	bridge.StrobeWrite(0x55)

	// The one-call strobe matches a data write followed by completing
	// the trigger cycle.
	manual := &recordLegacy{}
	other := NewLegacyBridge(manual)
	other.DataWrite(0x55)
	manual.events = append(manual.events, "trigger:true")

	assert.Equal(t, manual.events, strobed.events)
}

func TestLegacyReadsReturnZero(t *testing.T) {
	bridge := NewLegacyBridge(&recordLegacy{})

	assert.Equal(t, uint8(0), bridge.CtrlRead())
	assert.Equal(t, uint8(0), bridge.DataRead())
}

func TestMissingBoards(t *testing.T) {
	// An unpopulated connector absorbs everything.
	for _, bridge := range []*Bridge{NewBridge(nil), NewLegacyBridge(nil)} {
		assert.Equal(t, uint8(0), bridge.CtrlRead())
		assert.Equal(t, uint8(0), bridge.DataRead())
		bridge.CtrlWrite(0x01)
		bridge.DataWrite(0x02)
		bridge.StrobeWrite(0x03)
	}
}
