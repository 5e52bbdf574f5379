// Package cartridge provides the memory bank controllers found in Game Boy
// cartridges. A controller owns the ROM and external RAM of a cartridge and
// remaps the fixed CPU address windows onto them.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

var (
	// ErrUnsupportedCartridge is returned when no controller exists for the
	// cartridge type found in the header.
	ErrUnsupportedCartridge = errors.New("unsupported cartridge")
	// ErrROMTooSmall is returned when the ROM does not contain a full header.
	ErrROMTooSmall = errors.New("rom too small")
	// ErrInvalidHeader is returned when a header size code is out of range.
	ErrInvalidHeader = errors.New("invalid cartridge header")
)

// UnsupportedTypeError carries the cartridge type byte that could not be
// mapped onto a controller.
type UnsupportedTypeError struct {
	Type CartridgeType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported cartridge type 0x%02X", uint8(e.Type))
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedCartridge
}

// MemoryBankController is implemented by every cartridge controller.
//
//	$0000-$3FFF fixed ROM bank 0
//	$4000-$7FFF switchable ROM bank
//	$A000-$BFFF external RAM / RTC
//
// Reads outside of these windows return 0xFF, writes are logged and ignored.
type MemoryBankController interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Header() *Header

	types.Stater
}

// BatteryBacked is implemented by controllers whose external RAM should be
// persisted between runs.
type BatteryBacked interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// Ticker is implemented by controllers that keep time, such as the MBC3 RTC.
type Ticker interface {
	Tick(cycles uint64)
}

// New inspects the header of rom and constructs the matching controller.
// Unsupported cartridge types never fall back to a ROM only controller.
func New(rom []byte, logger log.Logger) (MemoryBankController, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNullLogger()
	}

	switch header.CartridgeType {
	case ROM:
		return NewROMCartridge(rom, header, logger), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header, logger), nil
	case MBC2, MBC2BATT:
		return NewMemoryBankedCartridge2(rom, header, logger), nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return NewMemoryBankedCartridge3(rom, header, logger), nil
	case MBC5, MBC5RAM, MBC5RAMBATT:
		return NewMemoryBankedCartridge5(rom, header, logger), nil
	}

	return nil, &UnsupportedTypeError{Type: header.CartridgeType}
}
