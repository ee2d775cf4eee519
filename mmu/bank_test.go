package mmu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// bankedImage builds a banked area whose first byte in every bank is the
// bank's own index.
func bankedImage(banks, bankSize int) []uint8 {
	image := make([]uint8, banks*bankSize)
	for b := 0; b < banks; b++ {
		image[b*bankSize] = uint8(b)
	}
	return image
}

func TestBankWindowMaskDerivation(t *testing.T) {
	table := []struct {
		banks int
		mask  uint8
	}{
		// A 0x30000 image holds 0x20000 bankable bytes: eight banks.
		{8, 0x07},
		{16, 0x0f},
		// The largest shipped image fills all 32 entries.
		{32, 0x1f},
	}

	for _, entry := range table {
		w := NewBankWindow(32, 0x4000, bankedImage(entry.banks, 0x4000))
		assert.Equal(t, entry.mask, w.Mask())
	}
}

func TestBankWindowSelectMasks(t *testing.T) {
	w := NewBankWindow(32, 0x4000, bankedImage(8, 0x4000))

	w.Select(0x25)
	assert.Equal(t, uint8(0x05), w.Bank())
	got := w.Read(0)

	// Selecting the pre-masked index reads identically.
	w.Select(0x05)
	assert.Equal(t, got, w.Read(0))
	assert.Equal(t, uint8(0x05), got)
}

func TestBankWindowReads(t *testing.T) {
	bankSize := 0x4000
	image := bankedImage(8, bankSize)
	image[3*bankSize+0x1234] = 0xcd
	w := NewBankWindow(32, bankSize, image)

	w.Select(3)
	assert.Equal(t, uint8(0x03), w.Read(0))
	assert.Equal(t, uint8(0xcd), w.Read(0x1234))

	w.Select(0)
	assert.Equal(t, uint8(0x00), w.Read(0))
}
