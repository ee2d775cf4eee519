// Package rom loads the main-CPU program image. The image follows the
// original region layout: banked code starts at a fixed offset and the
// static high region is the tail of the image.
package rom

import (
	"fmt"
	"os"
)

const (
	// BankedBase is where banked code starts inside the image; everything
	// below it is unused filler in every known set.
	BankedBase = 0x10000
	BankSize   = 0x4000
	BankCount  = 32
	// FixedSize is the static high region copied from the end of the image.
	FixedSize = 0x8000
)

type Image struct {
	data []uint8
}

func Load(filePath string) (*Image, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return NewImage(src)
}

func NewImage(src []uint8) (*Image, error) {
	if len(src) < BankedBase+BankSize {
		return nil, fmt.Errorf("image too small: %d bytes", len(src))
	}
	if (len(src)-BankedBase)%BankSize != 0 {
		return nil, fmt.Errorf("image size 0x%x is not a whole number of 0x%x banks", len(src), BankSize)
	}
	return &Image{data: src}, nil
}

// Banked returns the bankable portion of the image.
func (img *Image) Banked() []uint8 {
	return img.data[BankedBase:]
}

// Fixed returns the static high region, the last FixedSize bytes of the
// image.
func (img *Image) Fixed() []uint8 {
	return img.data[len(img.data)-FixedSize:]
}

func (img *Image) Size() int {
	return len(img.data)
}
