package tgx

import (
	"fmt"

	"crusader-assets/internal/binio"
	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
)

// DecodeImage decodes a whole-image TGX token stream (data, bounded by its
// own length) row by row into img, which must already be the target size
// and already filled with its transparent background value. Surplus bytes
// after the last row's LineFeed are ignored.
func DecodeImage(img *canvas.Image, data []byte) error {
	g, err := img.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()

	buf := g.Bytes()
	bpp := img.Format().BytesPerPixel()
	stride := img.Stride()
	width := img.Width()
	height := img.Height()

	r := binio.NewReader(data)
	end := len(data)

	for y := 0; y < height; y++ {
		rowStart := y * stride
		row := buf[rowStart : rowStart+width*bpp]
		if err := decodeRow(r, end, row, bpp); err != nil {
			return fmt.Errorf("tgx: row %d: %w", y, err)
		}
	}
	return nil
}

// decodeRow decodes tokens from r (bounded by end) into row, a
// width*bpp-byte slice, stopping at the row's LineFeed token.
func decodeRow(r *binio.Reader, end int, row []byte, bpp int) error {
	dst := 0
	rowEnd := len(row)

	for {
		tb, err := r.BoundedBytes(1, end)
		if err != nil {
			return err
		}
		tok := DecodeToken(tb[0])

		switch tok.Kind {
		case KindStream:
			n := tok.Length * bpp
			if dst+n > rowEnd {
				return fmt.Errorf("%w: stream token overruns row (dst=%d, n=%d, row=%d)",
					codecerr.ErrMalformedStream, dst, n, rowEnd)
			}
			src, err := r.BoundedBytes(n, end)
			if err != nil {
				return err
			}
			copy(row[dst:dst+n], src)
			dst += n

		case KindRepeat:
			n := tok.Length * bpp
			if dst+n > rowEnd {
				return fmt.Errorf("%w: repeat token overruns row (dst=%d, n=%d, row=%d)",
					codecerr.ErrMalformedStream, dst, n, rowEnd)
			}
			px, err := r.BoundedBytes(bpp, end)
			if err != nil {
				return err
			}
			for i := 0; i < tok.Length; i++ {
				copy(row[dst+i*bpp:dst+(i+1)*bpp], px)
			}
			dst += n

		case KindTransparent:
			n := tok.Length * bpp
			if dst+n > rowEnd {
				return fmt.Errorf("%w: transparent token overruns row (dst=%d, n=%d, row=%d)",
					codecerr.ErrMalformedStream, dst, n, rowEnd)
			}
			// The destination already holds the decoder's transparent fill;
			// leave it untouched.
			dst += n

		case KindLineFeed:
			if tok.Length != 1 {
				return fmt.Errorf("%w: LineFeed length must be 1, got %d", codecerr.ErrMalformedStream, tok.Length)
			}
			return nil

		default:
			return fmt.Errorf("%w: reserved token kind %d", codecerr.ErrMalformedStream, tok.Kind)
		}
	}
}
