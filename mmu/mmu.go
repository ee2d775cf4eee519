package mmu

import (
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/aqpin/bus"
	"github.com/ushitora-anqou/aqpin/rom"
)

/*
	MEMORY MAP

	0000-2FFF  Working RAM, write-protectable tail
	3000-3FAF  Free RAM
	3FB0-3FFF  I/O controller register window
	4000-7FFF  Banked program ROM window
	8000-FFFF  Static program ROM
*/
const (
	ramTop     = 0x2fff
	freeBase   = 0x3000
	freeTop    = 0x3faf
	asicTop    = 0x3fff
	bankedBase = 0x4000
	bankedTop  = 0x7fff
	fixedBase  = 0x8000
)

type MMU struct {
	bus   *bus.Bus
	ram   *ProtectedRAM
	free  [freeTop - freeBase + 1]uint8
	bank  *BankWindow
	fixed []uint8
}

func NewMMU(b *bus.Bus, img *rom.Image, logger *log.Logger) *MMU {
	return &MMU{
		bus:   b,
		ram:   NewProtectedRAM(logger),
		bank:  NewBankWindow(rom.BankCount, rom.BankSize, img.Banked()),
		fixed: img.Fixed(),
	}
}

func (m *MMU) Read8(addr uint16) uint8 {
	switch {
	case addr <= ramTop:
		return m.ram.Read(addr)
	case addr <= freeTop:
		return m.free[addr-freeBase]
	case addr <= asicTop:
		return m.bus.ASIC.Read(addr)
	case addr <= bankedTop:
		return m.bank.Read(addr - bankedBase)
	default:
		return m.fixed[addr-fixedBase]
	}
}

func (m *MMU) Write8(addr uint16, val uint8) {
	switch {
	case addr <= ramTop:
		asic := m.bus.ASIC
		m.ram.Write(addr, val, asic.WriteProtectActive(), asic.ProtectMask())
	case addr <= freeTop:
		m.free[addr-freeBase] = val
	case addr <= asicTop:
		m.bus.ASIC.Write(addr, val)
	default:
		// ROM, both banked and fixed: writes fall off the bus.
	}
}

// SelectBank is the I/O controller's bank-select callback target.
func (m *MMU) SelectBank(n uint8) {
	m.bank.Select(n)
}

func (m *MMU) Bank() uint8 {
	return m.bank.Bank()
}

func (m *MMU) BankMask() uint8 {
	return m.bank.Mask()
}

func (m *MMU) RAMViolations() uint64 {
	return m.ram.Violations()
}

// Reset clears working RAM and latches bank 0. The free RAM area and the
// controller window are untouched, same as the board.
func (m *MMU) Reset() {
	m.ram.Reset()
	m.bank.Select(0)
}
