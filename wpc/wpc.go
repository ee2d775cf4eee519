// Package wpc models the I/O controller ASIC's register window as consumed
// by the board glue: the alphanumeric segment accumulator, the bank-select
// and sound registers, the interrupt acknowledges and the RAM lock. The
// controller's remaining functions (switch matrix scan, lamps, solenoids)
// keep their raw register bytes but have no behavior here.
package wpc

const (
	WindowBase = 0x3fb0
	WindowTop  = 0x3fff
	WindowSize = WindowTop - WindowBase + 1

	// System-11 background sound adapter, present only on the legacy
	// hardware variant.
	AddrS11Strobe = 0x3fd0 // W: full latch/strobe cycle
	AddrS11Data   = 0x3fd1 // W: latch a byte for the sound board bus
	AddrS11Reply  = 0x3fd2 // R: reply latch, read clears the semaphore
	AddrS11Status = 0x3fd3 // R: semaphore state on D0

	AddrSoundData = 0x3fdc // R/W: sound board data
	AddrSoundCtrl = 0x3fdd // R/W: sound board control/status

	AddrAlphaPos = 0x3feb // W: display column strobe
	AddrAlpha1Lo = 0x3fec // W: row 1 segment bits 7..0
	AddrAlpha1Hi = 0x3fed // W: row 1 segment bits 15..8
	AddrAlpha2Lo = 0x3fee // W: row 2 segment bits 7..0
	AddrAlpha2Hi = 0x3fef // W: row 2 segment bits 15..8

	AddrWatchdog = 0x3ff3 // W: watchdog restart, bit 7 acknowledges the periodic interrupt
	AddrFIRQAck  = 0x3ff8 // W: acknowledge the fast interrupt
	AddrBank     = 0x3ffc // W: program bank select
	AddrRAMLock  = 0x3ffd // W: working RAM protection enable
	AddrLockSize = 0x3ffe // W: protected tail size select
)

const (
	irqAckBit = 0x80
	// Writing this value to the lock register disables the protection
	// trap; anything else arms it.
	unlockValue = 0xb4

	alphaColumns   = 40
	alphaRowStride = 20
)

// lockMasks maps the lock-size register's low bits to the protection mask.
// All choices protect a power-of-two-aligned tail of working RAM.
var lockMasks = [4]uint16{0x0fff, 0x07ff, 0x03ff, 0x01ff}

// Hooks are the glue callbacks the controller invokes. Nil entries are
// simply not called.
type Hooks struct {
	BankSelect     func(val uint8)
	IRQAck         func()
	FIRQAck        func()
	SoundCtrlRead  func() uint8
	SoundCtrlWrite func(val uint8)
	SoundDataRead  func() uint8
	SoundDataWrite func(val uint8)
	SoundStrobe    func(val uint8)
}

type ASIC struct {
	hooks       Hooks
	regs        [WindowSize]uint8
	alpha       [alphaColumns]uint16
	alphaPos    uint8
	protect     bool
	protectMask uint16
}

func New(hooks Hooks) *ASIC {
	return &ASIC{
		hooks:       hooks,
		protectMask: lockMasks[0],
	}
}

func (a *ASIC) Read(addr uint16) uint8 {
	switch addr {
	case AddrSoundCtrl:
		return a.call8(a.hooks.SoundCtrlRead)
	case AddrSoundData:
		return a.call8(a.hooks.SoundDataRead)
	case AddrS11Reply:
		return a.call8(a.hooks.SoundDataRead)
	case AddrS11Status:
		return a.call8(a.hooks.SoundCtrlRead) & 0x01
	default:
		return a.regs[addr-WindowBase]
	}
}

func (a *ASIC) Write(addr uint16, val uint8) {
	a.regs[addr-WindowBase] = val

	switch addr {
	case AddrAlphaPos:
		a.alphaPos = val % alphaRowStride
	case AddrAlpha1Lo:
		a.alpha[a.alphaPos] |= uint16(val)
	case AddrAlpha1Hi:
		a.alpha[a.alphaPos] |= uint16(val) << 8
	case AddrAlpha2Lo:
		a.alpha[alphaRowStride+a.alphaPos] |= uint16(val)
	case AddrAlpha2Hi:
		a.alpha[alphaRowStride+a.alphaPos] |= uint16(val) << 8
	case AddrBank:
		if a.hooks.BankSelect != nil {
			a.hooks.BankSelect(val)
		}
	case AddrSoundCtrl:
		a.callW(a.hooks.SoundCtrlWrite, val)
	case AddrSoundData, AddrS11Data:
		a.callW(a.hooks.SoundDataWrite, val)
	case AddrS11Strobe:
		a.callW(a.hooks.SoundStrobe, val)
	case AddrWatchdog:
		if val&irqAckBit != 0 && a.hooks.IRQAck != nil {
			a.hooks.IRQAck()
		}
	case AddrFIRQAck:
		if a.hooks.FIRQAck != nil {
			a.hooks.FIRQAck()
		}
	case AddrRAMLock:
		a.protect = val != unlockValue
	case AddrLockSize:
		a.protectMask = lockMasks[val&0x03]
	}
}

func (a *ASIC) call8(f func() uint8) uint8 {
	if f == nil {
		return 0
	}
	return f()
}

func (a *ASIC) callW(f func(uint8), val uint8) {
	if f != nil {
		f(val)
	}
}

// SegmentState returns the accumulated segment word for one display column.
func (a *ASIC) SegmentState(index int) uint16 {
	return a.alpha[index]
}

// ClearSegmentState empties the accumulator; the frame tick calls this after
// latching its snapshot.
func (a *ASIC) ClearSegmentState() {
	a.alpha = [alphaColumns]uint16{}
}

func (a *ASIC) WriteProtectActive() bool {
	return a.protect
}

func (a *ASIC) ProtectMask() uint16 {
	return a.protectMask
}
