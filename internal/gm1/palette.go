package gm1

import (
	"fmt"

	"crusader-assets/internal/binio"
	"crusader-assets/internal/gfx"
)

// PaletteCount is the fixed number of palettes every GM1 archive carries.
const PaletteCount = 10

// PaletteBytes is the on-disk size of one palette: 256 TGX16 entries.
const PaletteBytes = gfx.PaletteSize * 2

func decodePalette(r *binio.Reader) (*gfx.Palette, error) {
	var raw [gfx.PaletteSize]uint16
	for i := range raw {
		v, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("gm1: palette entry %d: %w", i, err)
		}
		raw[i] = v
	}
	return gfx.NewPalette(raw), nil
}

func encodePalette(w *binio.Writer, p *gfx.Palette) {
	for _, v := range p.Entries() {
		w.PutU16(v)
	}
}
