package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// CyclesPerSecond is the number of machine clock cycles in one RTC second.
const CyclesPerSecond = 4194304

// RTC register indices, as selected by writing $08-$0C to $4000-$5FFF.
const (
	RTCSeconds = iota
	RTCMinutes
	RTCHours
	RTCDaysLow
	RTCDaysHigh

	rtcRegisters
)

// rtcMasks holds the writable bits of each RTC register.
var rtcMasks = [rtcRegisters]uint8{0x3F, 0x3F, 0x1F, 0xFF, 0xC1}

const (
	rtcDayHighBit = 0 // bit 8 of the day counter
	rtcHaltBit    = 6
	rtcCarryBit   = 7 // day counter overflow
)

// RTC is the real time clock found in MBC3 timer cartridges. Time advances
// by machine cycles rather than wall clock time, so the clock stays in step
// with the emulated CPU regardless of how fast the host runs it.
type RTC struct {
	registers [rtcRegisters]uint8
	latched   [rtcRegisters]uint8

	latchValue uint8
	cycles     uint64 // cycles accumulated towards the next second
}

// Read returns the latched value of the register at index, or 0xFF for an
// index past RTCDaysHigh.
func (r *RTC) Read(index uint8) uint8 {
	if index >= rtcRegisters {
		return 0xFF
	}
	return r.latched[index]
}

// Write sets the register at index. The value is written to both the live
// and latched registers so that it can be read back without relatching.
func (r *RTC) Write(index uint8, value uint8) {
	if index >= rtcRegisters {
		return
	}
	value &= rtcMasks[index]
	if index == RTCSeconds {
		r.cycles = 0
	}
	r.registers[index] = value
	r.latched[index] = value
}

// Latch copies the live registers to the latched registers when a 0x00
// write is followed by a 0x01 write.
func (r *RTC) Latch(value uint8) {
	if r.latchValue == 0x00 && value == 0x01 {
		r.latched = r.registers
	}
	r.latchValue = value
}

// Halted reports whether the clock has been stopped through the halt bit.
func (r *RTC) Halted() bool {
	return bits.Test(r.registers[RTCDaysHigh], rtcHaltBit)
}

// Tick advances the clock by the given number of machine cycles.
func (r *RTC) Tick(cycles uint64) {
	if r.Halted() {
		return
	}
	r.cycles += cycles
	for r.cycles >= CyclesPerSecond {
		r.cycles -= CyclesPerSecond
		r.advanceSecond()
	}
}

// advanceSecond moves the clock forward by a single second, carrying into
// minutes, hours and the 9 bit day counter.
func (r *RTC) advanceSecond() {
	r.registers[RTCSeconds] = (r.registers[RTCSeconds] + 1) & 0x3F
	if r.registers[RTCSeconds] != 60 {
		return
	}
	r.registers[RTCSeconds] = 0

	r.registers[RTCMinutes] = (r.registers[RTCMinutes] + 1) & 0x3F
	if r.registers[RTCMinutes] != 60 {
		return
	}
	r.registers[RTCMinutes] = 0

	r.registers[RTCHours] = (r.registers[RTCHours] + 1) & 0x1F
	if r.registers[RTCHours] != 24 {
		return
	}
	r.registers[RTCHours] = 0

	days := r.Days() + 1
	if days > 0x1FF {
		days = 0
		r.registers[RTCDaysHigh] = bits.Set(r.registers[RTCDaysHigh], rtcCarryBit)
	}
	r.registers[RTCDaysLow] = uint8(days)
	r.registers[RTCDaysHigh] = bits.Assign(r.registers[RTCDaysHigh], rtcDayHighBit, days > 0xFF)
}

// Days returns the live 9 bit day counter.
func (r *RTC) Days() uint16 {
	return uint16(bits.Val(r.registers[RTCDaysHigh], rtcDayHighBit))<<8 | uint16(r.registers[RTCDaysLow])
}

func (r *RTC) Load(s *types.State) {
	for i := range r.registers {
		r.registers[i] = s.Read8() & rtcMasks[i]
	}
	for i := range r.latched {
		r.latched[i] = s.Read8() & rtcMasks[i]
	}
	r.latchValue = s.Read8()
	r.cycles = s.Read64()
}

func (r *RTC) Save(s *types.State) {
	for _, v := range r.registers {
		s.Write8(v)
	}
	for _, v := range r.latched {
		s.Write8(v)
	}
	s.Write8(r.latchValue)
	s.Write64(r.cycles)
}
