package mmu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// RAMSize is the protected working RAM area, 0x0000-0x2fff.
const RAMSize = 0x3000

// ProtectedRAM is the battery-backed working RAM with the board's
// write-protection trap in front of it. The protection flag and mask are
// owned by the I/O controller and sampled at write time.
type ProtectedRAM struct {
	bytes      [RAMSize]uint8
	logger     *log.Logger
	violations uint64
}

func NewProtectedRAM(logger *log.Logger) *ProtectedRAM {
	return &ProtectedRAM{logger: logger}
}

func (r *ProtectedRAM) Read(offset uint16) uint8 {
	return r.bytes[offset]
}

// Write commits the byte unless protection is active and every masked bit of
// the offset is set. The trap protects a power-of-two-aligned tail of the
// RAM, matching the discrete decode logic on the board; a trapped write is
// dropped and logged, never an error.
func (r *ProtectedRAM) Write(offset uint16, val uint8, active bool, mask uint16) {
	if !active || (offset&mask) != mask {
		r.bytes[offset] = val
		return
	}
	r.violations++
	r.logger.Debug("memory protection violation",
		log.String("offset", fmt.Sprintf("0x%04x", offset)),
		log.String("mask", fmt.Sprintf("0x%04x", mask)))
}

// Violations reports how many writes the protection trap has discarded.
func (r *ProtectedRAM) Violations() uint64 {
	return r.violations
}

func (r *ProtectedRAM) Reset() {
	r.bytes = [RAMSize]uint8{}
}
