// Package snd bridges the CPU's single logical sound interface onto one of
// two mutually incompatible daughterboard protocols. The protocol is fixed
// by the hardware variant at construction and never switches afterwards.
package snd

type Protocol int

const (
	// ProtocolPrimary is the dedicated sound board with its own control,
	// status and data registers and a reply line back to the CPU.
	ProtocolPrimary Protocol = iota
	// ProtocolLegacy is the System-11 background board adapter: a data
	// latch and a strobe trigger, nothing readable.
	ProtocolLegacy
)

// Board is the primary protocol's coprocessor surface.
type Board interface {
	CtrlRead() uint8
	CtrlWrite(val uint8)
	DataRead() uint8
	DataWrite(val uint8)
}

// LegacyBoard is the adapter-connected background board: byte latch plus
// trigger line.
type LegacyBoard interface {
	DataWrite(val uint8)
	TriggerPulse(level bool)
}

// ReplySource is implemented by primary boards that raise a reply line when
// a response byte is ready; the machine turns that into a fast interrupt.
type ReplySource interface {
	SetReplyHandler(handler func(asserted bool))
}

type Bridge struct {
	protocol Protocol
	board    Board
	legacy   LegacyBoard
}

// NewBridge wires the primary protocol. A nil board is allowed: reads come
// back zero and writes vanish, matching an unpopulated connector.
func NewBridge(board Board) *Bridge {
	return &Bridge{protocol: ProtocolPrimary, board: board}
}

// NewLegacyBridge wires the background-board adapter protocol.
func NewLegacyBridge(board LegacyBoard) *Bridge {
	return &Bridge{protocol: ProtocolLegacy, legacy: board}
}

func (b *Bridge) Protocol() Protocol {
	return b.protocol
}

func (b *Bridge) CtrlRead() uint8 {
	if b.protocol == ProtocolPrimary && b.board != nil {
		return b.board.CtrlRead()
	}
	// The legacy board has no control register to read.
	return 0
}

func (b *Bridge) CtrlWrite(val uint8) {
	switch {
	case b.protocol == ProtocolLegacy:
		if b.legacy == nil {
			return
		}
		// Data is latched before the trigger fires.
		b.legacy.DataWrite(val)
		b.legacy.TriggerPulse(true)
	case b.board != nil:
		b.board.CtrlWrite(val)
	}
}

func (b *Bridge) DataRead() uint8 {
	if b.protocol == ProtocolPrimary && b.board != nil {
		return b.board.DataRead()
	}
	return 0
}

func (b *Bridge) DataWrite(val uint8) {
	switch {
	case b.protocol == ProtocolLegacy:
		if b.legacy == nil {
			return
		}
		b.legacy.DataWrite(val)
		b.legacy.TriggerPulse(false)
	case b.board != nil:
		b.board.DataWrite(val)
	}
}

// StrobeWrite performs the adapter's complete strobe cycle in one call:
// latch the byte, drop the trigger, raise it. Only the legacy protocol
// responds; the primary board has no equivalent register.
func (b *Bridge) StrobeWrite(val uint8) {
	if b.protocol != ProtocolLegacy || b.legacy == nil {
		return
	}
	b.legacy.DataWrite(val)
	b.legacy.TriggerPulse(false)
	b.legacy.TriggerPulse(true)
}
