//go:build sdl2

package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/aqpin/constant"
)

const windowScale = 3

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	panel    Panel
}

func NewSDLWindow() (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		PanelWidth*windowScale,
		PanelHeight*windowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		PanelWidth,
		PanelHeight,
	)
	if err != nil {
		return nil, err
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

func (wind *SDLWindow) DrawDigits(digits []uint16) error {
	return wind.panel.DrawDigits(digits)
}

// HandleEvents drains the SDL event queue and reports whether the user
// asked to quit.
func (wind *SDLWindow) HandleEvents() bool {
	escape := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			escape = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				escape = true
			}
		}
	}
	return escape
}

func (wind *SDLWindow) UpdateScreen() error {
	pixels, _, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	src := wind.panel.Render()
	for off, lit := range src {
		// Gas-plasma amber on black.
		if lit != 0 {
			pixels[off*4+0] = 0x00 // b
			pixels[off*4+1] = 0x9a // g
			pixels[off*4+2] = 0xff // r
		} else {
			pixels[off*4+0] = 0x00
			pixels[off*4+1] = 0x00
			pixels[off*4+2] = 0x00
		}
		pixels[off*4+3] = 0xff // a
	}
	wind.texture.Unlock()

	wind.renderer.Clear()
	wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()

	return nil
}

type SDLTimeSynchronizer struct {
	prevTicks, usPerFrame int64
}

func NewSDLTimeSynchronizer(targetFPS float64) *SDLTimeSynchronizer {
	return &SDLTimeSynchronizer{
		prevTicks:  int64(sdl.GetTicks()) * 1000,
		usPerFrame: int64(1000000.0 / targetFPS),
	}
}

func (ts *SDLTimeSynchronizer) MaySleep() {
	cur := int64(sdl.GetTicks()) * 1000
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		sdl.Delay(uint32(diff / 1000))
	}
	ts.prevTicks += ts.usPerFrame
}
