package gfx

import (
	"fmt"

	"crusader-assets/internal/codecerr"
)

// PaletteSize is the fixed number of entries in a GM1 palette.
const PaletteSize = 256

// Palette is an ordered sequence of exactly PaletteSize 16-bit TGX16 colors.
type Palette struct {
	entries [PaletteSize]uint16
}

// NewPalette builds a Palette from exactly PaletteSize little-endian TGX16
// values.
func NewPalette(entries [PaletteSize]uint16) *Palette {
	p := &Palette{entries: entries}
	return p
}

// At returns the color at index i, decoded from TGX16.
func (p *Palette) At(i int) (Color, error) {
	if i < 0 || i >= PaletteSize {
		return Color{}, fmt.Errorf("%w: palette index %d (size %d)",
			codecerr.ErrIndexOutOfRange, i, PaletteSize)
	}
	return TGX16.Unpack(uint32(p.entries[i])), nil
}

// RawAt returns the raw TGX16 16-bit value at index i, unconverted.
func (p *Palette) RawAt(i int) (uint16, error) {
	if i < 0 || i >= PaletteSize {
		return 0, fmt.Errorf("%w: palette index %d (size %d)",
			codecerr.ErrIndexOutOfRange, i, PaletteSize)
	}
	return p.entries[i], nil
}

// SetRaw sets the raw TGX16 16-bit value at index i.
func (p *Palette) SetRaw(i int, v uint16) error {
	if i < 0 || i >= PaletteSize {
		return fmt.Errorf("%w: palette index %d (size %d)",
			codecerr.ErrIndexOutOfRange, i, PaletteSize)
	}
	p.entries[i] = v
	return nil
}

// Entries returns the raw 256 TGX16 values, in index order.
func (p *Palette) Entries() [PaletteSize]uint16 {
	return p.entries
}
