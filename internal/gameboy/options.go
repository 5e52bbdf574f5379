package gameboy

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// Trace logs every executed instruction at debug level.
func Trace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}

// PostBoot starts the emulator at 0x100 with the registers set to the
// values upon completion of the boot ROM. Without it the CPU starts from
// 0x0000 with every register cleared.
func PostBoot() Opt {
	return func(gb *GameBoy) {
		gb.postBoot = true
	}
}

// WithSaveRAM restores battery backed RAM from a previous run.
func WithSaveRAM(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.saveRAM = b
	}
}

// WithState restores a state returned by SaveState. It is applied after
// PostBoot and WithSaveRAM.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}

// CycleLimit makes Run return once n clock cycles have been executed.
func CycleLimit(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.cycleLimit = n
	}
}
