package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MemoryBankedCartridge3 represents an MBC3 cartridge. It supports 128 ROM
// banks, 4 RAM banks and optionally a real time clock, whose registers are
// mapped into the RAM window when selected.
//
//	$0000-$1FFF RAM and RTC enable (0x0A in the low nibble)
//	$2000-$3FFF ROM bank, 7 bits (0 selects 1)
//	$4000-$5FFF $00-$03 select a RAM bank, $08-$0C select an RTC register
//	$6000-$7FFF latch clock data (write 0x00 then 0x01)
type MemoryBankedCartridge3 struct {
	memoryBankedCartridge

	romBank uint8
	ramBank uint8

	rtc         *RTC
	hasRTC      bool
	rtcSelected bool
	rtcRegister uint8
}

// NewMemoryBankedCartridge3 returns a new MemoryBankedCartridge3 cartridge.
func NewMemoryBankedCartridge3(rom []byte, header *Header, l log.Logger) *MemoryBankedCartridge3 {
	return &MemoryBankedCartridge3{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, header.RAMSize, l),
		romBank:               1,
		rtc:                   &RTC{},
		hasRTC:                header.CartridgeType.HasRTC(),
	}
}

// ROMBank returns the bank mapped to $4000-$7FFF. It is never 0.
func (m *MemoryBankedCartridge3) ROMBank() int {
	return int(m.romBank)
}

// RAMBank returns the RAM bank selected for $A000-$BFFF.
func (m *MemoryBankedCartridge3) RAMBank() int {
	return int(m.ramBank)
}

// RTC returns the real time clock of the cartridge.
func (m *MemoryBankedCartridge3) RTC() *RTC {
	return m.rtc
}

// RTCSelected reports whether $A000-$BFFF is routed to the RTC registers.
func (m *MemoryBankedCartridge3) RTCSelected() bool {
	return m.rtcSelected
}

// Tick advances the RTC, if the cartridge has one.
func (m *MemoryBankedCartridge3) Tick(cycles uint64) {
	if m.hasRTC {
		m.rtc.Tick(cycles)
	}
}

// Read returns the value from the cartridges ROM, RAM or RTC depending on the
// bank selected.
func (m *MemoryBankedCartridge3) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address]
	case address < 0x8000:
		return m.readSwitchableROM(m.ROMBank(), address)
	case address >= 0xA000 && address < 0xC000:
		if m.rtcSelected {
			if !m.ramEnabled || !m.hasRTC {
				return 0xFF
			}
			return m.rtc.Read(m.rtcRegister)
		}
		return m.readRAM(m.RAMBank(), address)
	}
	return 0xFF
}

// Write updates the banking registers, or writes to the selected RAM bank or
// RTC register.
func (m *MemoryBankedCartridge3) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(value)
	case address < 0x4000:
		m.romBank = value & 0x7F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		switch {
		case value <= 0x03:
			m.ramBank = value
			m.rtcSelected = false
		case value >= 0x08 && value <= 0x0C:
			m.rtcRegister = value - 0x08
			m.rtcSelected = true
		default:
			m.log.Debugf("mbc3: invalid bank select 0x%02X ignored", value)
		}
	case address < 0x8000:
		if m.hasRTC {
			m.rtc.Latch(value)
		}
	case address >= 0xA000 && address < 0xC000:
		if m.rtcSelected {
			if m.ramEnabled && m.hasRTC {
				m.rtc.Write(m.rtcRegister, value)
			}
			return
		}
		m.writeRAM(m.RAMBank(), address, value)
	default:
		m.ignored(address, value)
	}
}

func (m *MemoryBankedCartridge3) Load(s *types.State) {
	m.load(s)
	m.romBank = s.Read8()
	m.ramBank = s.Read8()
	m.rtcSelected = s.ReadBool()
	m.rtcRegister = s.Read8()
	m.rtc.Load(s)
	if m.romBank == 0 || m.romBank > 0x7F {
		s.Invalid("mbc3 rom bank", int(m.romBank))
		m.romBank = 1
	}
	if m.ramBank > 0x03 {
		s.Invalid("mbc3 ram bank", int(m.ramBank))
		m.ramBank = 0
	}
	if m.rtcRegister >= rtcRegisters {
		s.Invalid("mbc3 rtc register", int(m.rtcRegister))
		m.rtcRegister, m.rtcSelected = 0, false
	}
}

func (m *MemoryBankedCartridge3) Save(s *types.State) {
	m.save(s)
	s.Write8(m.romBank)
	s.Write8(m.ramBank)
	s.WriteBool(m.rtcSelected)
	s.Write8(m.rtcRegister)
	m.rtc.Save(s)
}
