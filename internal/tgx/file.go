package tgx

import (
	"fmt"

	"crusader-assets/internal/binio"
	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
)

// Header is the 8-byte little-endian header of a standalone .tgx file:
// width then height, both uint32.
type Header struct {
	Width  uint32
	Height uint32
}

// DecodeFile decodes a standalone TGX file (header + token stream) into a
// new TGX16 Image. The on-disk format carries no pixel-format tag; TGX16 is
// assumed by convention.
func DecodeFile(data []byte) (*canvas.Image, error) {
	r := binio.NewReader(data)
	width, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("tgx: file header: %w", err)
	}
	height, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("tgx: file header: %w", err)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: tgx file dimensions %dx%d", codecerr.ErrInvalidArgument, width, height)
	}

	img, err := canvas.New(int(width), int(height), gfx.TGX16)
	if err != nil {
		return nil, err
	}
	if err := DecodeImage(img, data[r.Pos():]); err != nil {
		return nil, err
	}
	return img, nil
}

// EncodeFile encodes img as a standalone TGX file: an 8-byte header
// followed by the token stream.
func EncodeFile(img *canvas.Image) ([]byte, error) {
	w := binio.NewWriter()
	w.PutU32(uint32(img.Width()))
	w.PutU32(uint32(img.Height()))

	body, err := EncodeImage(img)
	if err != nil {
		return nil, err
	}
	w.PutBytes(body)
	return w.Bytes(), nil
}
