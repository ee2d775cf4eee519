// Package cpu holds the bus-facing surface of the 68B09E main processor:
// the standard and fast interrupt input lines. The processor core itself is
// an external component; whatever core is plugged in observes these lines.
package cpu

// Lines is the pair of level-held interrupt inputs. The timers and the
// sound board assert them; the I/O controller's acknowledge callbacks clear
// them. Rising edges are counted for diagnostics.
type Lines struct {
	irq, firq           bool
	irqEdges, firqEdges uint32
}

func NewLines() *Lines {
	return &Lines{}
}

func (l *Lines) SetIRQ(asserted bool) {
	if asserted && !l.irq {
		l.irqEdges++
	}
	l.irq = asserted
}

func (l *Lines) SetFIRQ(asserted bool) {
	if asserted && !l.firq {
		l.firqEdges++
	}
	l.firq = asserted
}

func (l *Lines) IRQ() bool {
	return l.irq
}

func (l *Lines) FIRQ() bool {
	return l.firq
}

func (l *Lines) IRQEdges() uint32 {
	return l.irqEdges
}

func (l *Lines) FIRQEdges() uint32 {
	return l.firqEdges
}
