package bus

// CPU is the main processor as seen from the board: two level-held interrupt
// input lines. The glue only ever asserts them; the I/O controller's
// acknowledge callbacks clear them.
type CPU interface {
	SetIRQ(asserted bool)
	SetFIRQ(asserted bool)
}

type MMU interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

// ASIC is the I/O controller's bus-facing surface: its register window plus
// the state the glue observes (accumulated display segments and the working
// RAM protection flags).
type ASIC interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)

	SegmentState(index int) uint16
	ClearSegmentState()
	WriteProtectActive() bool
	ProtectMask() uint16
}

// Sound is the logical sound interface the CPU sees, independent of which
// daughterboard protocol is wired behind it.
type Sound interface {
	CtrlRead() uint8
	CtrlWrite(val uint8)
	DataRead() uint8
	DataWrite(val uint8)
	StrobeWrite(val uint8)
}

type Display interface {
	DrawDigits(digits []uint16) error
}

type Bus struct {
	CPU
	MMU
	ASIC
	Sound
	Display
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Register(cpu CPU, mmu MMU, asic ASIC, snd Sound, disp Display) {
	b.CPU = cpu
	b.MMU = mmu
	b.ASIC = asic
	b.Sound = snd
	b.Display = disp
}
