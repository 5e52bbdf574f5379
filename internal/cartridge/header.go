package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// CGBFlag specifies the level of CGB support in a cartridge.
type CGBFlag uint8

const (
	CGBFlagUnset    CGBFlag = iota // No CGB support has been specified, most likely a regular Game Boy game.
	CGBFlagEnhanced                // The game supports CGB enhancements, but is backwards compatible.
	CGBFlagCGBOnly                 // The game works on CGB only.
)

// CartridgeType represents the hardware present in a cartridge, as
// reported by the header byte at $0147.
type CartridgeType uint8

const (
	ROM              CartridgeType = 0x00
	MBC1             CartridgeType = 0x01
	MBC1RAM          CartridgeType = 0x02
	MBC1RAMBATT      CartridgeType = 0x03
	MBC2             CartridgeType = 0x05
	MBC2BATT         CartridgeType = 0x06
	MBC3TIMERBATT    CartridgeType = 0x0F
	MBC3TIMERRAMBATT CartridgeType = 0x10
	MBC3             CartridgeType = 0x11
	MBC3RAM          CartridgeType = 0x12
	MBC3RAMBATT      CartridgeType = 0x13
	MBC5             CartridgeType = 0x19
	MBC5RAM          CartridgeType = 0x1A
	MBC5RAMBATT      CartridgeType = 0x1B
)

var cartridgeTypeNames = map[CartridgeType]string{
	ROM:              "ROM ONLY",
	MBC1:             "MBC1",
	MBC1RAM:          "MBC1+RAM",
	MBC1RAMBATT:      "MBC1+RAM+BATTERY",
	MBC2:             "MBC2",
	MBC2BATT:         "MBC2+BATTERY",
	MBC3TIMERBATT:    "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT: "MBC3+TIMER+RAM+BATTERY",
	MBC3:             "MBC3",
	MBC3RAM:          "MBC3+RAM",
	MBC3RAMBATT:      "MBC3+RAM+BATTERY",
	MBC5:             "MBC5",
	MBC5RAM:          "MBC5+RAM",
	MBC5RAMBATT:      "MBC5+RAM+BATTERY",
}

func (t CartridgeType) String() string {
	if name, ok := cartridgeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNSUPPORTED(0x%02X)", uint8(t))
}

// Supported reports whether a controller exists for the cartridge type.
func (t CartridgeType) Supported() bool {
	_, ok := cartridgeTypeNames[t]
	return ok
}

// HasBattery reports whether the cartridge keeps its RAM across power cycles.
func (t CartridgeType) HasBattery() bool {
	switch t {
	case MBC1RAMBATT, MBC2BATT, MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3RAMBATT, MBC5RAMBATT:
		return true
	}
	return false
}

// HasRTC reports whether the cartridge carries an MBC3 real time clock.
func (t CartridgeType) HasRTC() bool {
	return t == MBC3TIMERBATT || t == MBC3TIMERRAMBATT
}

const (
	headerEnd   = 0x0150
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// ramSizes maps the $0149 code to a RAM size in bytes. The table is not
// monotonic: code $05 (64KiB) was assigned after $04 (128KiB).
var ramSizes = map[uint8]int{
	0x00: 0,          // 0KiB
	0x01: 2 * 1024,   // 2KiB
	0x02: 8 * 1024,   // 8KiB
	0x03: 32 * 1024,  // 32KiB
	0x04: 128 * 1024, // 128KiB
	0x05: 64 * 1024,  // 64KiB
}

// ROMSizeFromCode returns the ROM size declared by the $0148 code,
// calculated by 32KiB x (1 << code).
func ROMSizeFromCode(code uint8) (int, error) {
	if code > 0x08 {
		return 0, fmt.Errorf("%w: rom size code 0x%02X", ErrInvalidHeader, code)
	}
	return (32 * 1024) << code, nil
}

// RAMSizeFromCode returns the RAM size declared by the $0149 code.
func RAMSizeFromCode(code uint8) (int, error) {
	size, ok := ramSizes[code]
	if !ok {
		return 0, fmt.Errorf("%w: ram size code 0x%02X", ErrInvalidHeader, code)
	}
	return size, nil
}

// Header holds the fields of the cartridge header found at $0100-$014F.
//
// https://gbdev.io/pandocs/The_Cartridge_Header.html
type Header struct {
	Title           string        // $0134-$0143 Title of the game in uppercase ASCII.
	CGBFlag         CGBFlag       // $0143 - Indicates level of CGB support
	SGBFlag         bool          // $0146 - Specifies whether the game supports SGB functions
	CartridgeType   CartridgeType // $0147 - Specifies the hardware present on a cartridge.
	ROMSize         int           // $0148 - 32 KiB x (1<<value)
	RAMSize         int           // $0149 - Specifies how much RAM is present on the cartridge, if any.
	DestinationCode uint8         // $014A
	OldLicenseeCode uint8         // $014B
	MaskROMVersion  uint8         // $014C
	HeaderChecksum  uint8         // $014D - 8-Bit checksum of header bytes $0134-$014C
	GlobalChecksum  uint16        // $014E-$014F 16-bit (big endian) checksum of the ROM

	computedChecksum uint8
	fingerprint      uint64
}

// ParseHeader parses the cartridge header from rom. The ROM must at least
// contain the full header.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerEnd {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrROMTooSmall, len(rom), headerEnd)
	}

	h := &Header{}
	switch rom[0x0143] {
	case 0x80:
		h.CGBFlag = CGBFlagEnhanced
	case 0xC0:
		h.CGBFlag = CGBFlagCGBOnly
	default:
		h.CGBFlag = CGBFlagUnset
	}

	// CGB cartridges reduced the title length to 15
	if h.CGBFlag == CGBFlagUnset {
		h.Title = string(rom[0x0134:0x0144])
	} else {
		h.Title = string(rom[0x0134:0x0143])
	}
	h.Title = strings.TrimRight(h.Title, "\x00")

	var err error
	h.SGBFlag = rom[0x0146] == 0x03
	h.CartridgeType = CartridgeType(rom[0x0147])
	if h.ROMSize, err = ROMSizeFromCode(rom[0x0148]); err != nil {
		return nil, err
	}
	if h.RAMSize, err = RAMSizeFromCode(rom[0x0149]); err != nil {
		return nil, err
	}
	h.DestinationCode = rom[0x014A]
	h.OldLicenseeCode = rom[0x014B]
	h.MaskROMVersion = rom[0x014C]
	h.HeaderChecksum = rom[0x014D]
	h.GlobalChecksum = binary.BigEndian.Uint16(rom[0x014E:0x0150])

	for _, b := range rom[0x0134:0x014D] {
		h.computedChecksum = h.computedChecksum - b - 1
	}
	h.fingerprint = xxhash.Sum64(rom)

	return h, nil
}

// ValidChecksum reports whether the header checksum at $014D matches the
// header contents.
func (h *Header) ValidChecksum() bool {
	return h.computedChecksum == h.HeaderChecksum
}

// Fingerprint returns the xxhash of the entire ROM image, used to key
// save files.
func (h *Header) Fingerprint() uint64 {
	return h.fingerprint
}

// ROMBanks returns the number of 16KiB ROM banks declared by the header.
func (h *Header) ROMBanks() int {
	return h.ROMSize / romBankSize
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | %s | ROM Size: %dkB | RAM Size: %dkB | Fingerprint: %016x",
		h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024, h.fingerprint)
}
