package mmu

// BankWindow maps a fixed-size slice of the program image into the CPU's
// banked window. Only enough address lines are decoded to cover the image,
// so out-of-range selections wrap through the mask instead of faulting.
type BankWindow struct {
	image    []uint8
	bankSize int
	mask     uint8
	current  uint8
}

// NewBankWindow partitions image into up to bankCount contiguous banks of
// bankSize bytes. The selection mask is derived once from however many
// complete banks the image actually holds.
func NewBankWindow(bankCount, bankSize int, image []uint8) *BankWindow {
	banks := len(image) / bankSize
	if banks > bankCount {
		banks = bankCount
	}
	return &BankWindow{
		image:    image,
		bankSize: bankSize,
		mask:     uint8(banks - 1),
	}
}

// Select latches a new bank. The index is masked, never rejected.
func (w *BankWindow) Select(n uint8) {
	w.current = n & w.mask
}

func (w *BankWindow) Bank() uint8 {
	return w.current
}

func (w *BankWindow) Mask() uint8 {
	return w.mask
}

func (w *BankWindow) Read(offset uint16) uint8 {
	return w.image[int(w.current)*w.bankSize+int(offset)]
}
