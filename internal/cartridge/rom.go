package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ROMCartridge represents a ROM only cartridge. This cartridge type is the
// simplest cartridge type: a flat 32KiB image with no banking registers.
// Any RAM declared by the header is mapped directly at $A000-$BFFF.
type ROMCartridge struct {
	memoryBankedCartridge
}

// NewROMCartridge returns a new ROM only cartridge.
func NewROMCartridge(rom []byte, header *Header, l log.Logger) *ROMCartridge {
	r := &ROMCartridge{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, header.RAMSize, l),
	}
	// without a controller there is no latch to open
	r.ramEnabled = true
	return r
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return r.rom[address]
	case address >= 0xA000 && address < 0xC000:
		return r.readRAM(0, address)
	}
	return 0xFF
}

// Write writes to the external RAM, if any. Writes to ROM are ignored.
func (r *ROMCartridge) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 && len(r.ram) > 0 {
		r.writeRAM(0, address, value)
		return
	}
	r.ignored(address, value)
}

func (r *ROMCartridge) Load(s *types.State) {
	r.load(s)
}

func (r *ROMCartridge) Save(s *types.State) {
	r.save(s)
}
