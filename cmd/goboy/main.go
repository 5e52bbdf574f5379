package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/emu"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

const statsURL = "/debug/statsview"

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	logLevel := flag.String("log-level", "info", "The log level: debug, info, warn or error")
	trace := flag.Bool("trace", false, "Log every executed instruction at debug level")
	maxCycles := flag.Uint64("max-cycles", 0, "Stop after this many clock cycles, 0 runs until interrupted")
	boot := flag.Bool("boot", false, "Start at 0x0000 with cleared registers instead of the post boot state")
	saveDir := flag.String("saves", "saves", "The folder battery saves are kept in, empty disables saving")
	stats := flag.String("stats", "", "Serve runtime statistics on the given address, e.g. localhost:12600")
	flag.Parse()

	logger, err := log.NewWithLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *romFile == "" {
		logger.Errorf("no rom file given, use -rom")
		os.Exit(2)
	}

	// open the rom file
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("failed to load %s: %v", *romFile, err)
		os.Exit(1)
	}

	header, err := cartridge.ParseHeader(rom)
	if err != nil {
		logger.Errorf("failed to read cartridge header: %v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if !*boot {
		opts = append(opts, gameboy.PostBoot())
	}
	if *trace {
		opts = append(opts, gameboy.Trace())
	}
	if *maxCycles > 0 {
		opts = append(opts, gameboy.CycleLimit(*maxCycles))
	}

	var save *emu.Save
	if *saveDir != "" && header.CartridgeType.HasBattery() {
		save, err = emu.LoadSave(*saveDir, header)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		if b := save.Bytes(); b != nil {
			logger.Infof("loaded save %s", save.Path)
			opts = append(opts, gameboy.WithSaveRAM(b))
		}
	}

	// create a new gameboy
	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		if errors.Is(err, cartridge.ErrUnsupportedCartridge) {
			logger.Errorf("cannot run %s: %v", *romFile, err)
		} else {
			logger.Errorf("failed to start %s: %v", *romFile, err)
		}
		os.Exit(1)
	}

	if *stats != "" {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(*stats))
			mgr := statsview.New()
			mgr.Start()
		}()
		logger.Infof("stats server available at %s%s", *stats, statsURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := gb.Run(ctx)
	stop()

	if save != nil {
		if err := save.SetBytes(gb.SaveRAM()); err != nil {
			logger.Errorf("failed to write save: %v", err)
		} else if err := save.Close(); err != nil {
			logger.Errorf("failed to write save: %v", err)
		} else {
			logger.Infof("saved to %s", save.Path)
		}
	}

	logger.Infof("executed %d cycles", gb.Cycles())
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Errorf("%v (AF=0x%04X SP=0x%04X)", runErr, gb.CPU.AF(), gb.CPU.SP)
		os.Exit(1)
	}
}
