package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile setup failed: %v", err)
		}
		defer stop()
	}

	cfg := defaultEngineConfig()
	cfg.frequency = *frequencyFlag
	cfg.soundSpeed = *soundSpeedFlag
	id := parseScenarioID(*scenarioFlag)

	if *headlessFlag {
		rep := runHeadless(cfg, id, *durationFlag, headlessDt)
		printHeadlessReport(os.Stdout, id, rep)
		return
	}

	g := newGame(newEngine(cfg), id, *timeScaleFlag)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Doppler Field")
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
