package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// romExtensions are the extensions preferred when picking a file out of an
// archive holding more than one file.
var romExtensions = []string{".gb", ".gbc", ".sgb"}

// LoadFile loads the given file and performs decompression if necessary.
// This is the only place the emulator touches the filesystem to obtain a
// cartridge image.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	out, err := Decompress(filename, data)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", filepath.Base(filename), err)
	}
	return out, nil
}

// Decompress decodes data according to the extension of filename. Unknown
// extensions are returned as is.
func Decompress(filename string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		decoder = r
	case ".xz":
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		decoder = r
	case ".zst":
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		decoder = r
	case ".lz4":
		decoder = lz4.NewReader(bytes.NewReader(data))
	case ".br":
		return cbrotli.Decode(data)
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		names := make([]string, len(r.File))
		for i, f := range r.File {
			names[i] = f.Name
		}
		i, err := pickFile(names)
		if err != nil {
			return nil, err
		}
		rc, err := r.File[i].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		names := make([]string, len(r.File))
		for i, f := range r.File {
			names[i] = f.Name
		}
		i, err := pickFile(names)
		if err != nil {
			return nil, err
		}
		rc, err := r.File[i].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		// .gb, .gbc, .bin and anything else is taken as is
		return data, nil
	}

	return io.ReadAll(decoder)
}

// pickFile returns the index of the first name with a ROM extension, or the
// first name when none match.
func pickFile(names []string) (int, error) {
	if len(names) == 0 {
		return 0, ErrEmptyArchive
	}
	for i, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		for _, romExt := range romExtensions {
			if ext == romExt {
				return i, nil
			}
		}
	}
	return 0, nil
}
