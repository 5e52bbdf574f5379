package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MemoryBankedCartridge1 represents an MBC1 cartridge. It supports up to 2MiB
// of ROM and 32KiB of RAM.
//
//	$0000-$1FFF RAM enable (0x0A in the low nibble)
//	$2000-$3FFF ROM bank, lower 5 bits (0 selects 1)
//	$4000-$5FFF RAM bank, or ROM bank upper 2 bits
//	$6000-$7FFF banking mode (0 = ROM banking, 1 = RAM banking)
type MemoryBankedCartridge1 struct {
	memoryBankedCartridge

	bank1      uint8 // lower 5 bits of the ROM bank
	bank2      uint8 // 2 bit register shared by RAM bank and ROM bank upper bits
	ramBanking bool
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header *Header, l log.Logger) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, header.RAMSize, l),
		bank1:                 1,
	}
}

// ROMBank returns the bank mapped to $4000-$7FFF. It is never 0.
func (m *MemoryBankedCartridge1) ROMBank() int {
	if m.ramBanking {
		return int(m.bank1)
	}
	return int(m.bank2)<<5 | int(m.bank1)
}

// RAMBank returns the bank mapped to $A000-$BFFF.
func (m *MemoryBankedCartridge1) RAMBank() int {
	if m.ramBanking {
		return int(m.bank2)
	}
	return 0
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // first bank is always fixed
	case address < 0x8000:
		return m.readSwitchableROM(m.ROMBank(), address)
	case address >= 0xA000 && address < 0xC000:
		return m.readRAM(m.RAMBank(), address)
	}
	return 0xFF
}

// Write updates the banking registers, or writes to the selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(value)
	case address < 0x4000:
		m.bank1 = value & 0x1F
		if m.bank1 == 0 {
			m.bank1 = 1
		}
	case address < 0x6000:
		m.bank2 = value & 0x03
	case address < 0x8000:
		m.ramBanking = value&0x01 == 0x01
	case address >= 0xA000 && address < 0xC000:
		m.writeRAM(m.RAMBank(), address, value)
	default:
		m.ignored(address, value)
	}
}

func (m *MemoryBankedCartridge1) Load(s *types.State) {
	m.load(s)
	m.bank1 = s.Read8()
	m.bank2 = s.Read8()
	m.ramBanking = s.ReadBool()
	if m.bank1 == 0 || m.bank1 > 0x1F {
		s.Invalid("mbc1 rom bank", int(m.bank1))
		m.bank1 = 1
	}
	if m.bank2 > 0x03 {
		s.Invalid("mbc1 bank register", int(m.bank2))
		m.bank2 = 0
	}
}

func (m *MemoryBankedCartridge1) Save(s *types.State) {
	m.save(s)
	s.Write8(m.bank1)
	s.Write8(m.bank2)
	s.WriteBool(m.ramBanking)
}
