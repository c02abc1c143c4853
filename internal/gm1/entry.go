package gm1

import (
	"fmt"

	"crusader-assets/internal/binio"
)

// EntryHeaderBytes is the on-disk size of one per-entry geometry header.
const EntryHeaderBytes = 16

// EntryHeader carries the per-entry geometry fields that steer decoding:
// sprite dimensions, atlas placement and the TileObject-specific fields
// (tileY, hOffset, boxWidth).
type EntryHeader struct {
	Width      uint16
	Height     uint16
	PosX       uint16
	PosY       uint16
	Group      uint8
	GroupSize  uint8
	TileY      uint16
	TileOrient uint8
	HOffset    uint8
	BoxWidth   uint8
	Flags      uint8
}

func decodeEntryHeader(r *binio.Reader) (EntryHeader, error) {
	var h EntryHeader
	var err error
	read16 := func(dst *uint16) {
		if err != nil {
			return
		}
		*dst, err = r.U16()
	}
	read8 := func(dst *uint8) {
		if err != nil {
			return
		}
		*dst, err = r.U8()
	}

	read16(&h.Width)
	read16(&h.Height)
	read16(&h.PosX)
	read16(&h.PosY)
	read8(&h.Group)
	read8(&h.GroupSize)
	read16(&h.TileY)
	read8(&h.TileOrient)
	read8(&h.HOffset)
	read8(&h.BoxWidth)
	read8(&h.Flags)
	if err != nil {
		return EntryHeader{}, fmt.Errorf("gm1: entry header: %w", err)
	}
	return h, nil
}

func encodeEntryHeader(w *binio.Writer, h EntryHeader) {
	w.PutU16(h.Width)
	w.PutU16(h.Height)
	w.PutU16(h.PosX)
	w.PutU16(h.PosY)
	w.PutU8(h.Group)
	w.PutU8(h.GroupSize)
	w.PutU16(h.TileY)
	w.PutU8(h.TileOrient)
	w.PutU8(h.HOffset)
	w.PutU8(h.BoxWidth)
	w.PutU8(h.Flags)
}
