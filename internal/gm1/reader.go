package gm1

import (
	"fmt"

	"crusader-assets/internal/binio"
	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
	"crusader-assets/internal/logging"
	"crusader-assets/internal/tgx"
)

// Entry is one archive member: its geometry header, the raw payload slice it
// occupies within the archive's data region, and the encoding that governs
// how to decode it.
type Entry struct {
	Header   EntryHeader
	Encoding Encoding
	Offset   uint32
	Size     uint32
	Payload  []byte
}

// Archive is the in-memory view of an opened GM1 file: header, the fixed 10
// palettes and N entries, each still holding its undecoded payload slice
// until ReadEntry is called.
type Archive struct {
	Header   Header
	Palettes [PaletteCount]*gfx.Palette
	Entries  []Entry
	encoding Encoding
	logger   *logging.Logger
}

// SetLogger attaches a logger that records entry-level decode failures
// (Component GM1, Level Error) without aborting the archive; a nil logger
// (the default) disables this reporting.
func (a *Archive) SetLogger(l *logging.Logger) {
	a.logger = l
}

// Open parses a GM1 archive from data following the order laid out by the
// format: header, palettes, offset table, size table, entry headers, then
// the snapshotted data region. It does not decode any entry payload; call
// ReadEntry for that.
func Open(data []byte) (*Archive, error) {
	r := binio.NewReader(data)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	if err := validateImageCount(header, int64(len(data))); err != nil {
		return nil, err
	}

	encoding := EncodingFromDataClass(header.DataClass())
	if encoding == EncodingUnknown {
		return nil, fmt.Errorf("%w: gm1 dataClass %d (%s) has no known encoding",
			codecerr.ErrFormatMismatch, header.DataClass(), dataClassName(header.DataClass()))
	}

	var palettes [PaletteCount]*gfx.Palette
	for i := range palettes {
		p, err := decodePalette(r)
		if err != nil {
			return nil, err
		}
		palettes[i] = p
	}

	n := int(header.ImageCount())
	offsets := make([]uint32, n)
	for i := range offsets {
		v, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("gm1: offset table entry %d: %w", i, err)
		}
		offsets[i] = v
	}

	sizes := make([]uint32, n)
	for i := range sizes {
		v, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("gm1: size table entry %d: %w", i, err)
		}
		sizes[i] = v
	}

	headers := make([]EntryHeader, n)
	for i := range headers {
		h, err := decodeEntryHeader(r)
		if err != nil {
			return nil, err
		}
		headers[i] = h
	}

	region, err := r.BoundedBytes(r.Remaining(r.Len()), r.Len())
	if err != nil {
		return nil, fmt.Errorf("gm1: data region: %w", err)
	}

	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		end := int(offsets[i]) + int(sizes[i])
		if end > len(region) {
			return nil, fmt.Errorf("%w: gm1 entry %d payload [%d:%d] exceeds data region of %d bytes",
				codecerr.ErrIndexOutOfRange, i, offsets[i], end, len(region))
		}
		entries[i] = Entry{
			Header:   headers[i],
			Encoding: encoding,
			Offset:   offsets[i],
			Size:     sizes[i],
			Payload:  region[offsets[i]:end],
		}
	}

	return &Archive{Header: header, Palettes: palettes, Entries: entries, encoding: encoding}, nil
}

// Encoding is the dispatch tag shared by every entry in this archive.
func (a *Archive) Encoding() Encoding { return a.encoding }

// CheckSizeCategory verifies that the header's declared width/height match
// the dimensions implied by its sizeCategory field. Unknown0/Unknown1 have
// no dimensions to check against and are rejected.
func (a *Archive) CheckSizeCategory() error {
	cat := SizeCategory(a.Header.SizeCategory())
	if cat.Opaque() {
		return fmt.Errorf("%w: sizeCategory %d has no defined dimensions",
			codecerr.ErrFormatMismatch, cat)
	}
	if !cat.CheckDims(int(a.Header.Width()), int(a.Header.Height())) {
		w, h := cat.Dims()
		return fmt.Errorf("%w: sizeCategory %d declares %dx%d, header declares %dx%d",
			codecerr.ErrFormatMismatch, cat, w, h, a.Header.Width(), a.Header.Height())
	}
	return nil
}

// ReadEntry decodes entry i's payload into a fresh Image sized and formatted
// per its encoding. The Image starts zero-initialized and is not filled
// first: pixels the decoder leaves untouched (Transparent tokens, TileObject
// padding) stay 0x0000, the TGX16 transparent sentinel, or index 0 for TGX8
// entries. The reader has no configurable transparent color and sets no
// color key on the returned Image.
func (a *Archive) ReadEntry(i int) (*canvas.Image, error) {
	img, err := a.readEntry(i)
	if err != nil && a.logger != nil {
		a.logger.Log(logging.ComponentGM1, logging.LevelError, fmt.Sprintf("entry %d: %v", i, err))
	}
	return img, err
}

func (a *Archive) readEntry(i int) (*canvas.Image, error) {
	if i < 0 || i >= len(a.Entries) {
		return nil, fmt.Errorf("%w: entry index %d, archive has %d entries", codecerr.ErrIndexOutOfRange, i, len(a.Entries))
	}
	e := a.Entries[i]

	switch e.Encoding {
	case EncodingTGX16, EncodingFont:
		img, err := canvas.New(int(e.Header.Width), int(e.Header.Height), gfx.TGX16)
		if err != nil {
			return nil, err
		}
		if err := tgx.DecodeImage(img, e.Payload); err != nil {
			return nil, fmt.Errorf("gm1: entry %d (%s): %w", i, e.Encoding, err)
		}
		return img, nil

	case EncodingTGX8:
		img, err := canvas.New(int(e.Header.Width), int(e.Header.Height), gfx.Indexed8)
		if err != nil {
			return nil, err
		}
		if err := tgx.DecodeImage(img, e.Payload); err != nil {
			return nil, fmt.Errorf("gm1: entry %d (%s): %w", i, e.Encoding, err)
		}
		return img, nil

	case EncodingBitmap:
		// Nobody knows why: the declared height is 7 pixels taller than the
		// actual row count carried in the payload.
		height := int(e.Header.Height) - 7
		img, err := canvas.New(int(e.Header.Width), height, gfx.TGX16)
		if err != nil {
			return nil, err
		}
		if err := decodeBitmapRows(img, e.Payload); err != nil {
			return nil, fmt.Errorf("gm1: entry %d (%s): %w", i, e.Encoding, err)
		}
		return img, nil

	case EncodingTileObject:
		return readTileObject(e)

	default:
		return nil, fmt.Errorf("%w: entry %d has unknown encoding", codecerr.ErrFormatMismatch, i)
	}
}

// decodeBitmapRows reads width*2 raw bytes per row with no tokens at all.
func decodeBitmapRows(img *canvas.Image, payload []byte) error {
	g, err := img.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()

	width := img.Width()
	height := img.Height()
	stride := img.Stride()
	rowBytes := width * 2
	buf := g.Bytes()

	r := binio.NewReader(payload)
	for y := 0; y < height; y++ {
		row, err := r.Bytes(rowBytes)
		if err != nil {
			return fmt.Errorf("%w: bitmap row %d", err, y)
		}
		copy(buf[y*stride:y*stride+rowBytes], row)
	}
	return nil
}

// readTileObject decodes the 512-byte tile rhombus at (0, tileY) followed
// by the TGX16 "box" payload at (hOffset, 0, boxWidth, height).
func readTileObject(e Entry) (*canvas.Image, error) {
	height := int(e.Header.TileY) + tgx.TileHeight
	img, err := canvas.New(tgx.TileWidth, height, gfx.TGX16)
	if err != nil {
		return nil, err
	}

	if len(e.Payload) < tgx.TileRawBytes {
		return nil, fmt.Errorf("%w: tile object payload is %d bytes, need at least %d",
			codecerr.ErrUnexpectedEOF, len(e.Payload), tgx.TileRawBytes)
	}
	if err := tgx.DecodeTile(img, 0, int(e.Header.TileY), e.Payload[:tgx.TileRawBytes]); err != nil {
		return nil, err
	}

	boxView, err := img.View(canvas.Rect{X: int(e.Header.HOffset), Y: 0, W: int(e.Header.BoxWidth), H: height})
	if err != nil {
		return nil, fmt.Errorf("gm1: tile object box view: %w", err)
	}
	if err := tgx.DecodeImage(&boxView.Image, e.Payload[tgx.TileRawBytes:]); err != nil {
		return nil, fmt.Errorf("gm1: tile object box decode: %w", err)
	}
	return img, nil
}
