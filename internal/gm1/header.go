// Package gm1 implements the GM1 archive container: a fixed 88-byte header,
// ten palettes, per-entry offset/size tables, per-entry geometry headers and
// an entry payload region, each entry dispatched to a TGX-family decoder by
// an encoding tag derived from the header's data-class field.
package gm1

import (
	"fmt"

	"crusader-assets/internal/binio"
	"crusader-assets/internal/codecerr"
)

// HeaderFields is the number of little-endian uint32 slots in a GM1 header.
const HeaderFields = 22

// HeaderBytes is the on-disk size of a GM1 header.
const HeaderBytes = HeaderFields * 4

// Named header slot indices. The remaining 14 slots are opaque and
// round-tripped verbatim.
const (
	slotImageCount   = 3
	slotDataClass    = 5
	slotSizeCategory = 8
	slotWidth        = 12
	slotHeight       = 13
	slotAnchorX      = 18
	slotAnchorY      = 19
	slotDataSize     = 20
)

// Header is the 88-byte GM1 archive header: 22 little-endian uint32 fields,
// of which only a handful carry known meaning. The rest are preserved
// byte-for-byte across a read/write round trip.
type Header struct {
	Fields [HeaderFields]uint32
}

func (h *Header) ImageCount() uint32   { return h.Fields[slotImageCount] }
func (h *Header) DataClass() uint32    { return h.Fields[slotDataClass] }
func (h *Header) SizeCategory() uint32 { return h.Fields[slotSizeCategory] }
func (h *Header) Width() uint32        { return h.Fields[slotWidth] }
func (h *Header) Height() uint32       { return h.Fields[slotHeight] }
func (h *Header) AnchorX() uint32      { return h.Fields[slotAnchorX] }
func (h *Header) AnchorY() uint32      { return h.Fields[slotAnchorY] }
func (h *Header) DataSize() uint32     { return h.Fields[slotDataSize] }

func (h *Header) SetImageCount(v uint32)   { h.Fields[slotImageCount] = v }
func (h *Header) SetDataClass(v uint32)    { h.Fields[slotDataClass] = v }
func (h *Header) SetSizeCategory(v uint32) { h.Fields[slotSizeCategory] = v }
func (h *Header) SetWidth(v uint32)        { h.Fields[slotWidth] = v }
func (h *Header) SetHeight(v uint32)       { h.Fields[slotHeight] = v }
func (h *Header) SetAnchorX(v uint32)      { h.Fields[slotAnchorX] = v }
func (h *Header) SetAnchorY(v uint32)      { h.Fields[slotAnchorY] = v }
func (h *Header) SetDataSize(v uint32)     { h.Fields[slotDataSize] = v }

// decodeHeader reads the fixed 22-field header from r.
func decodeHeader(r *binio.Reader) (Header, error) {
	var h Header
	for i := 0; i < HeaderFields; i++ {
		v, err := r.U32()
		if err != nil {
			return Header{}, fmt.Errorf("gm1: header field %d: %w", i, err)
		}
		h.Fields[i] = v
	}
	return h, nil
}

func encodeHeader(w *binio.Writer, h Header) {
	for _, v := range h.Fields {
		w.PutU32(v)
	}
}

// PreambleSize returns the byte length of everything that precedes the
// payload region: the header, the 10 palettes, the offset table, the size
// table and the per-entry geometry headers.
func PreambleSize(h Header) int64 {
	n := int64(h.ImageCount())
	size := int64(HeaderBytes)
	size += PaletteCount * PaletteBytes
	size += n * 4 // offsets
	size += n * 4 // sizes
	size += n * EntryHeaderBytes
	return size
}

// validateImageCount fails if the declared preamble would exceed the
// available archive bytes before any offsets are trusted.
func validateImageCount(h Header, totalLen int64) error {
	if PreambleSize(h) > totalLen {
		return fmt.Errorf("%w: gm1 preamble for %d entries needs %d bytes, archive is %d",
			codecerr.ErrUnexpectedEOF, h.ImageCount(), PreambleSize(h), totalLen)
	}
	return nil
}
