package wpc

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAlphanumericAccumulator(t *testing.T) {
	a := New(Hooks{})

	a.Write(AddrAlphaPos, 2)
	a.Write(AddrAlpha1Lo, 0x34)
	a.Write(AddrAlpha1Hi, 0x12)
	a.Write(AddrAlpha2Lo, 0x78)
	a.Write(AddrAlpha2Hi, 0x56)

	assert.Equal(t, uint16(0x1234), a.SegmentState(2))
	assert.Equal(t, uint16(0x5678), a.SegmentState(22))

	// Writes accumulate until the frame tick clears them.
	a.Write(AddrAlpha1Lo, 0x01)
	assert.Equal(t, uint16(0x1235), a.SegmentState(2))

	a.ClearSegmentState()
	assert.Equal(t, uint16(0), a.SegmentState(2))
	assert.Equal(t, uint16(0), a.SegmentState(22))
}

func TestAlphaPositionWraps(t *testing.T) {
	a := New(Hooks{})

	a.Write(AddrAlphaPos, 21) // wraps to column 1
	a.Write(AddrAlpha1Lo, 0xff)
	assert.Equal(t, uint16(0x00ff), a.SegmentState(1))
}

func TestBankSelectHook(t *testing.T) {
	var got []uint8
	a := New(Hooks{BankSelect: func(val uint8) { got = append(got, val) }})

	a.Write(AddrBank, 0x25)
	assert.Equal(t, []uint8{0x25}, got)
}

func TestInterruptAcknowledges(t *testing.T) {
	irq, firq := 0, 0
	a := New(Hooks{
		IRQAck:  func() { irq++ },
		FIRQAck: func() { firq++ },
	})

	// Watchdog restarts without bit 7 do not acknowledge.
	a.Write(AddrWatchdog, 0x06)
	assert.Equal(t, 0, irq)

	a.Write(AddrWatchdog, 0x86)
	assert.Equal(t, 1, irq)

	a.Write(AddrFIRQAck, 0x00)
	assert.Equal(t, 1, firq)
}

func TestRAMProtectionRegisters(t *testing.T) {
	a := New(Hooks{})

	// Power-on: trap disarmed, default mask.
	assert.False(t, a.WriteProtectActive())
	assert.Equal(t, uint16(0x0fff), a.ProtectMask())

	a.Write(AddrRAMLock, 0x00)
	assert.True(t, a.WriteProtectActive())

	a.Write(AddrRAMLock, 0xb4)
	assert.False(t, a.WriteProtectActive())

	a.Write(AddrLockSize, 0x02)
	assert.Equal(t, uint16(0x03ff), a.ProtectMask())
}

func TestSoundRegisterRouting(t *testing.T) {
	var ctrlW, dataW, strobe []uint8
	a := New(Hooks{
		SoundCtrlRead:  func() uint8 { return 0x81 },
		SoundCtrlWrite: func(val uint8) { ctrlW = append(ctrlW, val) },
		SoundDataRead:  func() uint8 { return 0x24 },
		SoundDataWrite: func(val uint8) { dataW = append(dataW, val) },
		SoundStrobe:    func(val uint8) { strobe = append(strobe, val) },
	})

	a.Write(AddrSoundCtrl, 0x10)
	a.Write(AddrSoundData, 0x20)
	a.Write(AddrS11Data, 0x30)
	a.Write(AddrS11Strobe, 0x40)

	assert.Equal(t, []uint8{0x10}, ctrlW)
	assert.Equal(t, []uint8{0x20, 0x30}, dataW)
	assert.Equal(t, []uint8{0x40}, strobe)

	assert.Equal(t, uint8(0x81), a.Read(AddrSoundCtrl))
	assert.Equal(t, uint8(0x24), a.Read(AddrSoundData))
	assert.Equal(t, uint8(0x24), a.Read(AddrS11Reply))
	// The semaphore status register exposes only D0.
	assert.Equal(t, uint8(0x01), a.Read(AddrS11Status))
}

func TestUnmappedHooksAreAbsorbed(t *testing.T) {
	a := New(Hooks{})

	a.Write(AddrBank, 0x01)
	a.Write(AddrSoundCtrl, 0x02)
	a.Write(AddrS11Strobe, 0x03)
	a.Write(AddrWatchdog, 0x80)
	a.Write(AddrFIRQAck, 0x00)

	assert.Equal(t, uint8(0), a.Read(AddrSoundData))
	assert.Equal(t, uint8(0), a.Read(AddrS11Status))
}

func TestRawRegisterBytes(t *testing.T) {
	a := New(Hooks{})

	// Offsets without modeled behavior keep their raw bytes.
	a.Write(WindowBase, 0xaa)
	assert.Equal(t, uint8(0xaa), a.Read(WindowBase))
}
