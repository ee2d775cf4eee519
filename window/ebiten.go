//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/aqpin/constant"
)

func EbitenInitialize() error {
	ebiten.SetMaxTPS(60)
	ebiten.SetWindowSize(PanelWidth*3, PanelHeight*3)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)
	return nil
}

type EbitenWindow struct {
	panel Panel
}

func NewEbitenWindow() (*EbitenWindow, error) {
	return &EbitenWindow{}, nil
}

func (wind *EbitenWindow) DrawDigits(digits []uint16) error {
	return wind.panel.DrawDigits(digits)
}

// Render returns the panel as RGBA pixels for ebiten's framebuffer.
func (wind *EbitenWindow) Render() []uint8 {
	src := wind.panel.Render()
	pixels := make([]uint8, 4*len(src))
	for off, lit := range src {
		if lit != 0 {
			pixels[off*4+0] = 0xff // r
			pixels[off*4+1] = 0x9a // g
			pixels[off*4+2] = 0x00 // b
		}
		pixels[off*4+3] = 0xff // a
	}
	return pixels
}
