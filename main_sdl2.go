//go:build sdl2

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/aqpin/cpu"
	"github.com/ushitora-anqou/aqpin/snd"
	"github.com/ushitora-anqou/aqpin/window"
)

func runSDL2() error {
	debug := flag.Bool("debug", false, "enable debug logging")
	legacy := flag.Bool("legacy", false, "wire the legacy sound board protocol")
	flag.Parse()
	if flag.NArg() < 1 {
		return fmt.Errorf("Usage: %s PATH", os.Args[0])
	}
	if filename := os.Getenv("AQPIN_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
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

	if err := window.SDLInitialize(); err != nil {
		return err
	}

	wind, err := window.NewSDLWindow()
	if err != nil {
		return err
	}

	machineCfg := Config{Logger: logger}
	if *legacy {
		machineCfg.Protocol = snd.ProtocolLegacy
	}

	machine, err := NewAQPin(machineCfg, cpu.NewLines(), wind, image)
	if err != nil {
		return err
	}

	synchronizer := window.NewSDLTimeSynchronizer(60 /* FPS */)
	for {
		if err := machine.RunFrame(); err != nil {
			return err
		}
		if wind.HandleEvents() {
			break
		}
		if err := wind.UpdateScreen(); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
	return nil
}

func main() {
	if err := runSDL2(); err != nil {
		logger := log.NewWithConfig(log.DefaultConfig())
		logger.Fatal(err.Error())
	}
}
