package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// memoryBankedCartridge holds the state shared by every controller: the
// ROM image, the external RAM and the RAM enable latch.
type memoryBankedCartridge struct {
	rom, ram []byte

	ramEnabled bool

	header *Header
	log    log.Logger
}

// newMemoryBankedCartridge copies rom into a buffer padded with 0xFF up
// to the size declared by the header (rounded up to whole banks), so that
// every bank the header promises can be addressed.
func newMemoryBankedCartridge(rom []byte, h *Header, ramSize int, l log.Logger) memoryBankedCartridge {
	size := utils.Max(h.ROMSize, utils.AlignUp(len(rom), romBankSize))
	owned := make([]byte, size)
	n := copy(owned, rom)
	for i := n; i < size; i++ {
		owned[i] = 0xFF
	}

	return memoryBankedCartridge{
		rom:    owned,
		ram:    make([]byte, ramSize),
		header: h,
		log:    l,
	}
}

func (m *memoryBankedCartridge) Header() *Header {
	return m.header
}

// romBanks returns the number of 16KiB banks in the ROM buffer.
func (m *memoryBankedCartridge) romBanks() int {
	return len(m.rom) / romBankSize
}

// readROM reads from the given ROM bank, wrapping the bank index around the
// number of banks present.
func (m *memoryBankedCartridge) readROM(bank int, address uint16) uint8 {
	bank = utils.Wrap(bank, m.romBanks())
	return m.rom[bank*romBankSize+int(address&0x3FFF)]
}

// readSwitchableROM reads $4000-$7FFF for controllers that never map bank 0
// there. A selection that wraps onto bank 0 reads bank 1 instead.
func (m *memoryBankedCartridge) readSwitchableROM(bank int, address uint16) uint8 {
	bank = utils.Wrap(bank, m.romBanks())
	if bank == 0 {
		bank = 1
	}
	return m.rom[bank*romBankSize+int(address&0x3FFF)]
}

// ramOffset returns the offset into RAM for the given bank and address,
// wrapping around the RAM present. ok is false when there is no RAM.
func (m *memoryBankedCartridge) ramOffset(bank int, address uint16) (offset int, ok bool) {
	if len(m.ram) == 0 {
		return 0, false
	}
	return (bank*ramBankSize + int(address&0x1FFF)) % len(m.ram), true
}

// readRAM reads from the given RAM bank, returning 0xFF while RAM is
// disabled or absent.
func (m *memoryBankedCartridge) readRAM(bank int, address uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}
	if off, ok := m.ramOffset(bank, address); ok {
		return m.ram[off]
	}
	return 0xFF
}

// writeRAM writes to the given RAM bank. The write is dropped while RAM is
// disabled or absent.
func (m *memoryBankedCartridge) writeRAM(bank int, address uint16, value uint8) {
	if !m.ramEnabled {
		m.log.Debugf("cartridge: write 0x%02X to 0x%04X ignored, ram disabled", value, address)
		return
	}
	if off, ok := m.ramOffset(bank, address); ok {
		m.ram[off] = value
	}
}

// enableRAM updates the RAM enable latch from a write to $0000-$1FFF.
func (m *memoryBankedCartridge) enableRAM(value uint8) {
	m.ramEnabled = value&0x0F == 0x0A
}

// ignored logs a write that no register decodes.
func (m *memoryBankedCartridge) ignored(address uint16, value uint8) {
	m.log.Debugf("cartridge: write 0x%02X to unmapped address 0x%04X ignored", value, address)
}

// SaveRAM returns a copy of the external RAM.
func (m *memoryBankedCartridge) SaveRAM() []byte {
	data := make([]byte, len(m.ram))
	copy(data, m.ram)
	return data
}

// LoadRAM loads the external RAM from data. Data longer than the RAM is
// truncated, shorter data leaves the remaining bytes untouched.
func (m *memoryBankedCartridge) LoadRAM(data []byte) {
	copy(m.ram, data)
}

func (m *memoryBankedCartridge) load(s *types.State) {
	s.ReadData(m.ram)
	m.ramEnabled = s.ReadBool()
}

func (m *memoryBankedCartridge) save(s *types.State) {
	s.WriteData(m.ram)
	s.WriteBool(m.ramEnabled)
}
