// Package gameboy ties the CPU, the memory bus and the cartridge controller
// together into a single owned object graph and drives it.
package gameboy

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU  *cpu.CPU
	MMU  *mmu.MMU
	Cart cartridge.MemoryBankController

	log.Logger

	ticker cartridge.Ticker // nil unless the cartridge keeps time

	cycles     uint64
	cycleLimit uint64
	stop       atomic.Bool

	// set by options, consumed by NewGameBoy
	trace    bool
	postBoot bool
	saveRAM  []byte
	state    []byte
}

// NewGameBoy returns a new GameBoy running the given ROM. It fails if the
// cartridge header cannot be parsed or names a controller that is not
// supported, so a GameBoy never exists without a valid controller.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom, g.Logger)
	if err != nil {
		return nil, err
	}
	header := cart.Header()
	if !header.ValidChecksum() {
		g.Warnf("header checksum mismatch: %s", header)
	}

	cpuOpts := []cpu.Opt{cpu.WithLogger(g.Logger)}
	if g.trace {
		cpuOpts = append(cpuOpts, cpu.Trace())
	}

	g.Cart = cart
	g.MMU = mmu.NewMMU(cart)
	g.CPU = cpu.NewCPU(g.MMU, cpuOpts...)
	g.ticker, _ = cart.(cartridge.Ticker)

	if g.postBoot {
		g.CPU.ResetPostBoot()
	}

	if g.saveRAM != nil {
		if battery, ok := cart.(cartridge.BatteryBacked); ok && header.CartridgeType.HasBattery() {
			battery.LoadRAM(g.saveRAM)
		} else {
			g.Warnf("%s has no battery, ignoring save data", header.CartridgeType)
		}
	}

	if g.state != nil {
		state, err := types.StateFromBytes(g.state)
		if err != nil {
			return nil, fmt.Errorf("gameboy: loading state: %w", err)
		}
		g.Load(state)
		if err := state.Err(); err != nil {
			return nil, fmt.Errorf("gameboy: loading state: %w", err)
		}
	}
	g.state, g.saveRAM = nil, nil

	g.Infof("loaded %s", header)
	return g, nil
}

// Step executes a single instruction, advancing the cartridge clock by the
// cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return 0, err
	}
	g.cycles += uint64(cycles)
	if g.ticker != nil {
		g.ticker.Tick(uint64(cycles))
	}
	return cycles, nil
}

// Run steps the GameBoy until it is stopped, the cycle limit is reached,
// ctx is done or an instruction fails. Stop requests and ctx are checked
// between instructions, never in the middle of one. Run returns nil when
// stopped or when the cycle limit is reached.
func (g *GameBoy) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if g.stop.Swap(false) {
			g.Debugf("stopped after %d cycles", g.cycles)
			return nil
		}
		if g.cycleLimit > 0 && g.cycles >= g.cycleLimit {
			g.Infof("cycle limit of %d reached", g.cycleLimit)
			return nil
		}

		if _, err := g.Step(); err != nil {
			return err
		}
	}
}

// Stop asks Run to return before the next instruction. It is safe to call
// from another goroutine.
func (g *GameBoy) Stop() {
	g.stop.Store(true)
}

// Cycles returns the number of clock cycles executed so far.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// SaveRAM returns a copy of the battery backed RAM, or nil if the cartridge
// has no battery.
func (g *GameBoy) SaveRAM() []byte {
	battery, ok := g.Cart.(cartridge.BatteryBacked)
	if !ok || !g.Cart.Header().CartridgeType.HasBattery() {
		return nil
	}
	return battery.SaveRAM()
}

// SaveState returns the state of the GameBoy, suitable for WithState.
func (g *GameBoy) SaveState() []byte {
	state := types.NewState()
	g.Save(state)
	return state.Bytes()
}

var _ types.Stater = (*GameBoy)(nil)

// Load loads the state of the GameBoy from the given state.
func (g *GameBoy) Load(s *types.State) {
	g.cycles = s.Read64()
	g.CPU.Load(s)
	g.MMU.Load(s)
}

// Save saves the state of the GameBoy to the given state.
func (g *GameBoy) Save(s *types.State) {
	s.Write64(g.cycles)
	g.CPU.Save(s)
	g.MMU.Save(s)
}
