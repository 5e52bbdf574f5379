// Package emu persists emulator data between runs.
package emu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// save file naming convention:
// <xxhash of the ROM as 16 hex digits>.sav
//
// While the emulator is running, data is written to a temporary file next to
// the save file, which replaces the save file on Close. A crash therefore
// never leaves a half written save behind.

// Save represents the battery backed RAM save file of a cartridge.
type Save struct {
	b    []byte   // the save file data
	f    *os.File // temporary file that is written to when the emu is running
	Path string   // the path to the save file
}

// SavePath returns the path of the save file for the cartridge with the
// given header, within dir.
func SavePath(dir string, header *cartridge.Header) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.sav", header.Fingerprint()))
}

// LoadSave loads the save file for the cartridge with the given header from
// dir, creating dir if it doesn't exist. If there is no save file yet, an
// empty Save is returned.
func LoadSave(dir string, header *cartridge.Header) (*Save, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	s := &Save{Path: SavePath(dir, header)}
	b, err := utils.LoadFile(s.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load save file: %w", err)
	}
	s.b = b
	return s, nil
}

// Bytes returns the save file data, nil if nothing has been saved yet.
func (s *Save) Bytes() []byte {
	return s.b
}

// SetBytes sets the save file data and writes it to the temporary file.
func (s *Save) SetBytes(b []byte) error {
	if s.f == nil {
		if err := s.createTemporarySaveFile(); err != nil {
			return err
		}
	}

	s.b = b
	if err := s.f.Truncate(int64(len(b))); err != nil {
		return err
	}
	if _, err := s.f.WriteAt(b, 0); err != nil {
		return fmt.Errorf("failed to write to temporary save file: %w", err)
	}
	return nil
}

// Close closes the save file by renaming the temporary file to the original file.
func (s *Save) Close() error {
	if s.f == nil {
		return nil
	}
	if err := s.f.Close(); err != nil {
		return err
	}
	name := s.f.Name()
	s.f = nil
	return os.Rename(name, s.Path)
}

// createTemporarySaveFile creates the temporary save file for the caller.
func (s *Save) createTemporarySaveFile() error {
	var err error
	s.f, err = os.CreateTemp(filepath.Dir(s.Path), fmt.Sprintf("%s.*", filepath.Base(s.Path)))
	return err
}
