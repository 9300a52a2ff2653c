// Package rom prepares GBA ROM images the way the cart loader expects them
// and derives the per-game config and save file paths for a ROM.
package rom

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

const (
	// MaxSize is the GBA cart address space, 32 MiB. Larger files are read
	// up to this bound and flagged truncated.
	MaxSize = 32 << 20

	// minPaddedSize is the smallest retail ROM chip, 8 Mbit.
	minPaddedSize = 1 << 20

	// mirrorSize is the span a 1 MiB ROM is mirrored across.
	mirrorSize = 4 << 20
)

// Image is a ROM prepared for the loader: trimmed dumps are padded with 0xFF
// bytes to the next power of two (at least 1 MiB), and 1 MiB images are
// mirrored exactly four times.
type Image struct {
	// Data holds the padded, possibly mirrored image.
	Data []byte
	// FileSize is the number of bytes read from disk.
	FileSize int
	// PaddedSize is the power-of-two size before mirroring. Hash databases
	// are built over this span, not the mirrored one.
	PaddedSize int
	// Truncated is set when the file exceeded MaxSize and was cut off.
	Truncated bool
}

// Mirrored reports whether the image carries ROM mirrors.
func (i *Image) Mirrored() bool {
	return len(i.Data) > i.PaddedSize
}

func (i *Image) String() string {
	return fmt.Sprintf("%s on disk, %s padded",
		humanize.IBytes(uint64(i.FileSize)), humanize.IBytes(uint64(len(i.Data))))
}

// Load reads a ROM file and fixes its padding. Oversized files are not an
// error: the loader reads the first MaxSize bytes and marks the image
// truncated, leaving the caller to warn.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := int(fi.Size())
	truncated := false
	if fi.Size() > MaxSize {
		size = MaxSize
		truncated = true
	}

	padded := nextPow2(size)
	if padded < minPaddedSize {
		padded = minPaddedSize
	}
	full := padded
	if padded == minPaddedSize {
		full = mirrorSize
	}

	data := make([]byte, full)
	if _, err := io.ReadFull(f, data[:size]); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// Pad the unused ROM area with 0xFF, as trimmed dumps expect.
	tail := data[size:padded]
	for i := range tail {
		tail[i] = 0xFF
	}

	// 1 MiB ROMs (Classic NES Series and friends) are mirrored exactly four
	// times across the 4 MiB span.
	for off := padded; off < full; off += padded {
		copy(data[off:off+padded], data[:padded])
	}

	return &Image{
		Data:       data,
		FileSize:   size,
		PaddedSize: padded,
		Truncated:  truncated,
	}, nil
}

// FillOpenBus writes the fake open-bus pattern into dst, where start is the
// even byte offset of dst within the cart image. Each halfword reads back
// the low 16 bits of its own address divided by two, which is what the bus
// returns beyond the mirrored image.
func FillOpenBus(dst []byte, start int) {
	for i := 0; i < len(dst); i += 2 {
		hw := uint16((start + i) >> 1)
		dst[i] = byte(hw)
		if i+1 < len(dst) {
			dst[i+1] = byte(hw >> 8)
		}
	}
}

// nextPow2 rounds n up to the next power of two. Values already a power of
// two are returned unchanged.
func nextPow2(n int) int {
	if n <= 1 {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
