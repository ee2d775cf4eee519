//go:build ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/aqpin/cpu"
	"github.com/ushitora-anqou/aqpin/snd"
	"github.com/ushitora-anqou/aqpin/window"
)

type Game struct {
	machine *AQPin
	wind    *window.EbitenWindow
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return window.PanelWidth, window.PanelHeight
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
	return g.machine.RunFrame()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.ReplacePixels(g.wind.Render())
}

func runEbiten() error {
	debug := flag.Bool("debug", false, "enable debug logging")
	legacy := flag.Bool("legacy", false, "wire the legacy sound board protocol")
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

	if err := window.EbitenInitialize(); err != nil {
		return err
	}

	wind, err := window.NewEbitenWindow()
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

	return ebiten.RunGame(&Game{machine: machine, wind: wind})
}

func main() {
	if err := runEbiten(); err != nil {
		logger := log.NewWithConfig(log.DefaultConfig())
		logger.Fatal(err.Error())
	}
}
