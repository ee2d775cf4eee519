package main

import (
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/aqpin/bus"
	"github.com/ushitora-anqou/aqpin/constant"
	"github.com/ushitora-anqou/aqpin/mmu"
	"github.com/ushitora-anqou/aqpin/rom"
	"github.com/ushitora-anqou/aqpin/snd"
	"github.com/ushitora-anqou/aqpin/timer"
	"github.com/ushitora-anqou/aqpin/wpc"
)

// stepQuantum approximates the instruction granularity of the external
// processor core when the harness drives the timeline itself.
const stepQuantum = 16

type Config struct {
	Logger *log.Logger

	// Protocol picks the sound daughterboard wiring; fixed for the life
	// of the machine.
	Protocol snd.Protocol
	Primary  snd.Board
	Legacy   snd.LegacyBoard

	// SoundReplyAlsoIRQ additionally routes the sound board's reply onto
	// the standard interrupt line. Whether the real board merges the two
	// is undocumented; default is independent lines.
	SoundReplyAlsoIRQ bool
}

// AQPin is the board aggregate: every component is constructed and wired
// exactly once and owns its own state for the life of the process.
type AQPin struct {
	bus   *bus.Bus
	core  bus.CPU
	mmu   *mmu.MMU
	timer *timer.Timer
	snd   *snd.Bridge
	asic  *wpc.ASIC
	cnt   uint
}

func NewAQPin(cfg Config, core bus.CPU, disp bus.Display, image []uint8) (*AQPin, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithConfig(log.DefaultConfig())
	}

	img, err := rom.NewImage(image)
	if err != nil {
		return nil, err
	}

	b := bus.NewBus()
	memory := mmu.NewMMU(b, img, cfg.Logger)
	tmr := timer.NewTimer(b)

	var bridge *snd.Bridge
	if cfg.Protocol == snd.ProtocolLegacy {
		bridge = snd.NewLegacyBridge(cfg.Legacy)
	} else {
		bridge = snd.NewBridge(cfg.Primary)
	}

	// Sound traffic goes through the bus slot, not the bridge directly, so
	// the registered component is the one that answers.
	asic := wpc.New(wpc.Hooks{
		BankSelect:     memory.SelectBank,
		IRQAck:         func() { core.SetIRQ(false) },
		FIRQAck:        func() { core.SetFIRQ(false) },
		SoundCtrlRead:  func() uint8 { return b.Sound.CtrlRead() },
		SoundCtrlWrite: func(val uint8) { b.Sound.CtrlWrite(val) },
		SoundDataRead:  func() uint8 { return b.Sound.DataRead() },
		SoundDataWrite: func(val uint8) { b.Sound.DataWrite(val) },
		SoundStrobe:    func(val uint8) { b.Sound.StrobeWrite(val) },
	})

	// The reply line is the only source of the fast interrupt; the glue
	// itself never asserts it.
	if rs, ok := cfg.Primary.(snd.ReplySource); ok {
		rs.SetReplyHandler(func(asserted bool) {
			if !asserted {
				return
			}
			core.SetFIRQ(true)
			if cfg.SoundReplyAlsoIRQ {
				core.SetIRQ(true)
			}
		})
	}

	b.Register(core, memory, asic, bridge, disp)

	machine := &AQPin{
		bus:   b,
		core:  core,
		mmu:   memory,
		timer: tmr,
		snd:   bridge,
		asic:  asic,
	}
	machine.Reset()

	cfg.Logger.Debug("rom bank mask",
		log.Uint8("mask", memory.BankMask()))

	return machine, nil
}

// Reset applies the machine-reset contract: bank 0, zeroed working RAM,
// zeroed diagnostic counters. Timer schedules are not touched.
func (a *AQPin) Reset() {
	a.mmu.Reset()
	a.timer.ResetCounters()
}

// Step advances the shared tick timeline, typically by the cycle count of
// the instruction the external processor core just executed.
func (a *AQPin) Step(tick uint) error {
	return a.timer.Update(tick)
}

// RunFrame advances one display frame's worth of ticks.
func (a *AQPin) RunFrame() error {
	for a.cnt < constant.FRAME_TICKS {
		if err := a.Step(stepQuantum); err != nil {
			return err
		}
		a.cnt += stepQuantum
	}
	a.cnt -= constant.FRAME_TICKS
	return nil
}

func (a *AQPin) Bus() *bus.Bus {
	return a.bus
}

func (a *AQPin) FrameCount() uint16 {
	return a.timer.FrameCount()
}

func (a *AQPin) IRQCount() uint32 {
	return a.timer.IRQCount()
}

func (a *AQPin) RAMViolations() uint64 {
	return a.mmu.RAMViolations()
}

func (a *AQPin) Bank() uint8 {
	return a.mmu.Bank()
}
