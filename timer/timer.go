package timer

import (
	"github.com/ushitora-anqou/aqpin/bus"
	"github.com/ushitora-anqou/aqpin/constant"
	"github.com/ushitora-anqou/aqpin/display"
	"github.com/ushitora-anqou/aqpin/util"
)

// Timer drives the board's two fixed-period events from the shared tick
// timeline: the 60 Hz display refresh and the 976 Hz periodic interrupt.
// Both run for the life of the process; a machine reset clears only the
// counters, never the schedule.
type Timer struct {
	bus        *bus.Bus
	frame      *util.TickCounter
	irq        *util.TickCounter
	frameCount uint16
	irqCount   uint32
	digits     [display.NumDigits]uint16
}

func NewTimer(b *bus.Bus) *Timer {
	return &Timer{
		bus:   b,
		frame: util.NewTickCounter(constant.CPU_HZ / constant.FRAME_HZ),
		irq:   util.NewTickCounter(constant.CPU_HZ / constant.IRQ_HZ),
	}
}

func (t *Timer) Update(tick uint) error {
	if t.frame.Tick(tick) {
		if err := t.refreshDisplay(); err != nil {
			return err
		}
	}
	if t.irq.Tick(tick) {
		// Level-held: firing while already asserted changes nothing.
		t.bus.CPU.SetIRQ(true)
		t.irqCount++
	}
	return nil
}

// refreshDisplay latches one snapshot of the controller's segment
// accumulator, reordered into output pin order, then clears the accumulator.
// Output is only ever this once-per-frame snapshot, not a live view.
func (t *Timer) refreshDisplay() error {
	asic := t.bus.ASIC
	for x := 0; x < display.RowLength; x++ {
		t.digits[x] = display.PinOrder(asic.SegmentState(x))
		t.digits[x+display.RowLength] = display.PinOrder(asic.SegmentState(display.RowStride + x))
	}
	asic.ClearSegmentState()
	t.frameCount++
	return t.bus.Display.DrawDigits(t.digits[:])
}

func (t *Timer) FrameCount() uint16 {
	return t.frameCount
}

func (t *Timer) IRQCount() uint32 {
	return t.irqCount
}

// ResetCounters is the machine-reset hook. The periods stay armed.
func (t *Timer) ResetCounters() {
	t.frameCount = 0
	t.irqCount = 0
}
