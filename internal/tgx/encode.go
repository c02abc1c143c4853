package tgx

import (
	"crusader-assets/internal/binio"
	"crusader-assets/internal/canvas"
)

// EncodeImage encodes every row of img as a TGX token stream, each row
// terminated by a LineFeed token. Encode is not canonical: the decoder
// accepts multiple valid encodings of the same row, and this encoder is
// free to choose any legal partition of the row into tokens.
func EncodeImage(img *canvas.Image) ([]byte, error) {
	g, err := img.Lock()
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	buf := g.Bytes()
	bpp := img.Format().BytesPerPixel()
	stride := img.Stride()
	width := img.Width()
	height := img.Height()

	w := binio.NewWriter()
	for y := 0; y < height; y++ {
		rowStart := y * stride
		row := buf[rowStart : rowStart+width*bpp]
		encodeRow(w, row, bpp)
	}
	return w.Bytes(), nil
}

// isTransparentSentinelPixel reports whether the bpp-byte pixel p is the
// format's transparent sentinel. Only the 16bpp TGX16 format defines one
// (0x0000 with the alpha/opaque bit clear, i.e. the whole word is zero);
// other formats have no shortcut.
func isTransparentSentinelPixel(p []byte, bpp int) bool {
	if bpp != 2 {
		return false
	}
	return p[0] == 0 && p[1] == 0
}

func equalPixel(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// encodeRow partitions one row into Stream/Repeat/Transparent tokens,
// preferring a Repeat (or its Transparent shortcut) for any run of two or
// more identical pixels, folding singleton pixels into a Stream token, and
// capping every token at MaxTokenLength pixels. It always ends with a
// LineFeed(1) token.
func encodeRow(w *binio.Writer, row []byte, bpp int) {
	width := len(row) / bpp
	pixelAt := func(i int) []byte { return row[i*bpp : (i+1)*bpp] }

	// runLengthAt returns the length (capped at MaxTokenLength) of the run
	// of identical pixels starting at i.
	runLengthAt := func(i int) int {
		n := 1
		for i+n < width && n < MaxTokenLength && equalPixel(pixelAt(i+n), pixelAt(i)) {
			n++
		}
		return n
	}

	pos := 0
	for pos < width {
		run := runLengthAt(pos)
		if run >= 2 {
			if isTransparentSentinelPixel(pixelAt(pos), bpp) {
				w.PutU8(KindTransparent.Encode(run))
			} else {
				w.PutU8(KindRepeat.Encode(run))
				w.PutBytes(pixelAt(pos))
			}
			pos += run
			continue
		}

		// Collect a stream of pixels up to the next run of >=2 identical
		// pixels or MaxTokenLength, whichever comes first.
		streamStart := pos
		streamLen := 0
		for pos < width && streamLen < MaxTokenLength {
			if runLengthAt(pos) >= 2 {
				break
			}
			streamLen++
			pos++
		}
		w.PutU8(KindStream.Encode(streamLen))
		w.PutBytes(row[streamStart*bpp : (streamStart+streamLen)*bpp])
	}

	w.PutU8(KindLineFeed.Encode(1))
}
