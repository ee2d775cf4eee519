//go:build !sdl2 && !ebiten

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/aqpin/constant"
	"github.com/ushitora-anqou/aqpin/cpu"
	"github.com/ushitora-anqou/aqpin/display"
	"github.com/ushitora-anqou/aqpin/snd"
	"github.com/ushitora-anqou/aqpin/window"
)

// consoleDisplay keeps the last digit snapshot for the end-of-run report.
type consoleDisplay struct {
	digits [display.NumDigits]uint16
}

func (d *consoleDisplay) DrawDigits(digits []uint16) error {
	copy(d.digits[:], digits)
	return nil
}

func run() error {
	debug := flag.Bool("debug", false, "enable debug logging")
	frames := flag.Int("frames", 300, "number of frames to run")
	legacy := flag.Bool("legacy", false, "wire the legacy sound board protocol")
	realtime := flag.Bool("realtime", false, "pace frames at 60Hz instead of running flat out")
	flag.Parse()
	if flag.NArg() < 1 {
		return fmt.Errorf("Usage: %s PATH", os.Args[0])
	}

	cfg := log.DefaultConfig()
	if *debug {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	image, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return err
	}

	machineCfg := Config{Logger: logger}
	if *legacy {
		machineCfg.Protocol = snd.ProtocolLegacy
	}

	core := cpu.NewLines()
	disp := &consoleDisplay{}
	machine, err := NewAQPin(machineCfg, core, disp, image)
	if err != nil {
		return err
	}

	var sync *window.TimeSynchronizer
	if *realtime {
		sync = window.NewTimeSynchronizer(constant.FRAME_HZ)
	}
	for i := 0; i < *frames; i++ {
		if err := machine.RunFrame(); err != nil {
			return err
		}
		if sync != nil {
			sync.MaySleep()
		}
	}

	logger.Info("run complete",
		log.Int("frames", int(machine.FrameCount())),
		log.Int("irq_asserts", int(core.IRQEdges())),
		log.Int("ram_violations", int(machine.RAMViolations())),
		log.String("bank", strconv.Itoa(int(machine.Bank()))))

	return nil
}

func main() {
	if err := run(); err != nil {
		cfg := log.DefaultConfig()
		logger := log.NewWithConfig(cfg)
		logger.Fatal(err.Error())
	}
}
