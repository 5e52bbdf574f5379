package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// mbc2RAMSize is the size of the RAM built into the MBC2, 512 half-bytes.
const mbc2RAMSize = 512

// MemoryBankedCartridge2 represents an MBC2 cartridge. It supports up to 16
// ROM banks and has 512x4 bits of RAM built into the controller.
//
//	$0000-$1FFF RAM enable (0x0A in the low nibble)
//	$2000-$3FFF ROM bank, 4 bits (0 selects 1)
type MemoryBankedCartridge2 struct {
	memoryBankedCartridge

	romBank uint8
}

// NewMemoryBankedCartridge2 returns a new MemoryBankedCartridge2 cartridge.
func NewMemoryBankedCartridge2(rom []byte, header *Header, l log.Logger) *MemoryBankedCartridge2 {
	return &MemoryBankedCartridge2{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, mbc2RAMSize, l),
		romBank:               1,
	}
}

// ROMBank returns the bank mapped to $4000-$7FFF. It is never 0.
func (m *MemoryBankedCartridge2) ROMBank() int {
	return int(m.romBank)
}

// Read returns the value from the cartridges ROM or RAM. Only the low nibble
// of each RAM byte is stored, so the upper nibble always reads as 0.
func (m *MemoryBankedCartridge2) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address]
	case address < 0x8000:
		return m.readSwitchableROM(m.ROMBank(), address)
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		return m.ram[address&0x01FF] & 0x0F
	}
	return 0xFF
}

func (m *MemoryBankedCartridge2) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(value)
	case address < 0x4000:
		bank := int(value&0x0F) % m.romBanks()
		if bank == 0 {
			bank = 1
		}
		m.romBank = uint8(bank)
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled {
			m.log.Debugf("mbc2: write 0x%02X to 0x%04X ignored, ram disabled", value, address)
			return
		}
		m.ram[address&0x01FF] = value & 0x0F
	default:
		m.ignored(address, value)
	}
}

func (m *MemoryBankedCartridge2) Load(s *types.State) {
	m.load(s)
	m.romBank = s.Read8()
	if m.romBank == 0 || m.romBank > 0x0F {
		s.Invalid("mbc2 rom bank", int(m.romBank))
		m.romBank = 1
	}
}

func (m *MemoryBankedCartridge2) Save(s *types.State) {
	m.save(s)
	s.Write8(m.romBank)
}
