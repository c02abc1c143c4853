package gm1

import (
	"fmt"

	"crusader-assets/internal/binio"
	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
	"crusader-assets/internal/tgx"
)

// WriteEntry is one entry to be serialized: its geometry header and the
// already-decoded Image to re-encode. Encoding is taken from the archive
// dataClass being written, not stored per entry.
type WriteEntry struct {
	Header EntryHeader
	Image  *canvas.Image
}

// Write serializes header, palettes and entries back into the GM1 wire
// format: header, 10 palettes, offset table, size table, entry headers,
// then payloads in index order. header.ImageCount and header.DataSize are
// overwritten to match entries and the computed payload region; every other
// header field is emitted as given, including opaque slots.
func Write(header Header, palettes [PaletteCount]*gfx.Palette, entries []WriteEntry) ([]byte, error) {
	encoding := EncodingFromDataClass(header.DataClass())
	if encoding == EncodingUnknown {
		return nil, fmt.Errorf("%w: gm1 dataClass %d has no known encoding", codecerr.ErrFormatMismatch, header.DataClass())
	}

	payloads := make([][]byte, len(entries))
	offsets := make([]uint32, len(entries))
	sizes := make([]uint32, len(entries))

	var cursor uint32
	for i, e := range entries {
		body, err := encodeEntryBody(encoding, e)
		if err != nil {
			return nil, fmt.Errorf("gm1: encoding entry %d: %w", i, err)
		}
		payloads[i] = body
		offsets[i] = cursor
		sizes[i] = uint32(len(body))
		cursor += uint32(len(body))
	}

	header.SetImageCount(uint32(len(entries)))
	header.SetDataSize(cursor)

	w := binio.NewWriter()
	encodeHeader(w, header)
	for _, p := range palettes {
		encodePalette(w, p)
	}
	for _, off := range offsets {
		w.PutU32(off)
	}
	for _, sz := range sizes {
		w.PutU32(sz)
	}
	for _, e := range entries {
		encodeEntryHeader(w, e.Header)
	}
	for _, body := range payloads {
		w.PutBytes(body)
	}
	return w.Bytes(), nil
}

func encodeEntryBody(encoding Encoding, e WriteEntry) ([]byte, error) {
	switch encoding {
	case EncodingTGX16, EncodingFont, EncodingTGX8:
		return tgx.EncodeImage(e.Image)

	case EncodingBitmap:
		return encodeBitmapRows(e.Image)

	case EncodingTileObject:
		return encodeTileObject(e)

	default:
		return nil, fmt.Errorf("%w: unsupported encoding %s", codecerr.ErrInvalidArgument, encoding)
	}
}

func encodeBitmapRows(img *canvas.Image) ([]byte, error) {
	g, err := img.Lock()
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	width := img.Width()
	height := img.Height()
	stride := img.Stride()
	rowBytes := width * 2
	buf := g.Bytes()

	w := binio.NewWriter()
	for y := 0; y < height; y++ {
		w.PutBytes(buf[y*stride : y*stride+rowBytes])
	}
	return w.Bytes(), nil
}

// encodeTileObject is the inverse of readTileObject: re-encode the tile
// rhombus at (0, tileY) as a 512-byte blob, then the box rect as a TGX16
// stream, concatenated.
func encodeTileObject(e WriteEntry) ([]byte, error) {
	tileBlob, err := tgx.EncodeTile(e.Image, 0, int(e.Header.TileY))
	if err != nil {
		return nil, fmt.Errorf("tile: %w", err)
	}

	height := int(e.Header.TileY) + tgx.TileHeight
	boxView, err := e.Image.View(canvas.Rect{X: int(e.Header.HOffset), Y: 0, W: int(e.Header.BoxWidth), H: height})
	if err != nil {
		return nil, fmt.Errorf("box view: %w", err)
	}
	boxBlob, err := tgx.EncodeImage(&boxView.Image)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}

	out := make([]byte, 0, len(tileBlob)+len(boxBlob))
	out = append(out, tileBlob...)
	out = append(out, boxBlob...)
	return out, nil
}
