package tgx

import (
	"fmt"

	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
)

// Fixed geometry of the isometric tile rhombus: 30 pixels wide, 16 tall,
// 2 bytes per pixel, raw (tokenless) row-compacted pixel data.
const (
	TileWidth    = 30
	TileHeight   = 16
	TileRawBytes = 512
)

// perRow is the number of real pixels in each of the tile's 16 rows; the
// remainder of each 30-wide row is left at the destination's prior
// (transparent) value.
var perRow = [TileHeight]int{2, 6, 10, 14, 18, 22, 26, 30, 30, 26, 22, 18, 14, 10, 6, 2}

// DecodeTile decodes a 512-byte tile-rhombus blob into dst at
// (originX, originY), writing only the 256 pixels predicted by perRow
// within the TileWidth x TileHeight rectangle; every other pixel in that
// rectangle is left untouched (at whatever value dst already held there).
func DecodeTile(dst *canvas.Image, originX, originY int, data []byte) error {
	if len(data) < TileRawBytes {
		return fmt.Errorf("%w: tile data is %d bytes, need %d", codecerr.ErrUnexpectedEOF, len(data), TileRawBytes)
	}

	offset := 0
	for y := 0; y < TileHeight; y++ {
		n := perRow[y]
		pad := (TileWidth - n) / 2
		for i := 0; i < n; i++ {
			lo, hi := data[offset], data[offset+1]
			offset += 2
			raw := uint32(lo) | uint32(hi)<<8
			c := gfx.TGX16.Unpack(raw)
			if err := dst.SetColor(originX+pad+i, originY+y, c); err != nil {
				return fmt.Errorf("tgx: tile pixel (%d,%d): %w", pad+i, y, err)
			}
		}
	}
	return nil
}

// EncodeTile encodes a TileWidth x TileHeight region of src (at
// originX, originY) back into a 512-byte raw tile blob, the inverse of
// DecodeTile. Only the perRow-predicted pixels are written; src must cover
// the full tile rectangle.
func EncodeTile(src *canvas.Image, originX, originY int) ([]byte, error) {
	out := make([]byte, 0, TileRawBytes)
	for y := 0; y < TileHeight; y++ {
		n := perRow[y]
		pad := (TileWidth - n) / 2
		for i := 0; i < n; i++ {
			c, err := src.At(originX+pad+i, originY+y)
			if err != nil {
				return nil, fmt.Errorf("tgx: tile pixel (%d,%d): %w", pad+i, y, err)
			}
			raw := gfx.TGX16.Pack(c)
			out = append(out, byte(raw), byte(raw>>8))
		}
	}
	return out, nil
}
