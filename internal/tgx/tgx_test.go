package tgx

import (
	"math/rand"
	"testing"

	"crusader-assets/internal/canvas"
	"crusader-assets/internal/gfx"
)

func mustImage(t *testing.T, w, h int) *canvas.Image {
	t.Helper()
	img, err := canvas.New(w, h, gfx.TGX16)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return img
}

// TestDecodeConcreteStreamThenRepeat exercises spec scenario 1: a 4x2
// image whose tokens are Stream(4): A B C D, LineFeed, Repeat(4): E,
// LineFeed.
func TestDecodeConcreteStreamThenRepeat(t *testing.T) {
	img := mustImage(t, 4, 2)

	A := gfx.TGX16.Pack(gfx.Opaque(8, 0, 0))
	B := gfx.TGX16.Pack(gfx.Opaque(16, 0, 0))
	C := gfx.TGX16.Pack(gfx.Opaque(24, 0, 0))
	D := gfx.TGX16.Pack(gfx.Opaque(32, 0, 0))
	E := gfx.TGX16.Pack(gfx.Opaque(40, 0, 0))

	data := []byte{
		KindStream.Encode(4),
		byte(A), byte(A >> 8),
		byte(B), byte(B >> 8),
		byte(C), byte(C >> 8),
		byte(D), byte(D >> 8),
		KindLineFeed.Encode(1),
		KindRepeat.Encode(4),
		byte(E), byte(E >> 8),
		KindLineFeed.Encode(1),
	}

	if err := DecodeImage(img, data); err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}

	wantRow0 := []uint32{A, B, C, D}
	for x, want := range wantRow0 {
		c, err := img.At(x, 0)
		if err != nil {
			t.Fatalf("At(%d,0): %v", x, err)
		}
		if got := gfx.TGX16.Pack(c); got != want {
			t.Fatalf("row0[%d] = 0x%04X, want 0x%04X", x, got, want)
		}
	}
	for x := 0; x < 4; x++ {
		c, err := img.At(x, 1)
		if err != nil {
			t.Fatalf("At(%d,1): %v", x, err)
		}
		if got := gfx.TGX16.Pack(c); got != E {
			t.Fatalf("row1[%d] = 0x%04X, want 0x%04X", x, got, E)
		}
	}
}

// TestEncodeConcreteTransparentThenStream exercises spec scenario 2: a
// row [0,0,0,0, A,B,A,B] (TGX16 transparent zero) encodes as
// Transparent(4), Stream(4): A B A B, LineFeed (1 + 1 + 8 + 1 = 11 bytes).
func TestEncodeConcreteTransparentThenStream(t *testing.T) {
	img := mustImage(t, 8, 1)

	A := gfx.Opaque(1, 2, 3)
	B := gfx.Opaque(4, 5, 6)
	pixels := []gfx.Color{{}, {}, {}, {}, A, B, A, B}
	for x, c := range pixels {
		if err := img.SetColor(x, 0, c); err != nil {
			t.Fatalf("SetColor: %v", err)
		}
	}

	data, err := EncodeImage(img)
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	if len(data) != 11 {
		t.Fatalf("encoded length = %d, want 11: % X", len(data), data)
	}

	tok0 := DecodeToken(data[0])
	if tok0.Kind != KindTransparent || tok0.Length != 4 {
		t.Fatalf("token0 = %+v, want Transparent(4)", tok0)
	}
	tok1 := DecodeToken(data[1])
	if tok1.Kind != KindStream || tok1.Length != 4 {
		t.Fatalf("token1 = %+v, want Stream(4)", tok1)
	}
	tokLast := DecodeToken(data[10])
	if tokLast.Kind != KindLineFeed || tokLast.Length != 1 {
		t.Fatalf("last token = %+v, want LineFeed(1)", tokLast)
	}
}

// TestRoundTripRandomImage checks the core invariant:
// Decode(Encode(I)) == I, pixel-exactly, for TGX16 images.
func TestRoundTripRandomImage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		w := 1 + rng.Intn(64)
		h := 1 + rng.Intn(8)
		img := mustImage(t, w, h)

		// Bias towards runs and zeros so both Stream and Repeat/Transparent
		// paths get real exercise.
		for y := 0; y < h; y++ {
			x := 0
			for x < w {
				run := 1 + rng.Intn(6)
				var c gfx.Color
				switch rng.Intn(3) {
				case 0:
					c = gfx.Color{}
				case 1:
					c = gfx.Opaque(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
				case 2:
					c = gfx.Opaque(uint8(rng.Intn(32)), 0, 0)
				}
				for i := 0; i < run && x < w; i++ {
					img.SetColor(x, y, c)
					x++
				}
			}
		}

		data, err := EncodeImage(img)
		if err != nil {
			t.Fatalf("trial %d: EncodeImage: %v", trial, err)
		}

		decoded := mustImage(t, w, h)
		if err := DecodeImage(decoded, data); err != nil {
			t.Fatalf("trial %d: DecodeImage: %v", trial, err)
		}

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want, _ := img.At(x, y)
				got, _ := decoded.At(x, y)
				if !got.Equal(want) {
					t.Fatalf("trial %d: pixel (%d,%d) = %+v, want %+v", trial, x, y, got, want)
				}
			}
		}
	}
}

// TestTokenLengthBounds checks that the encoder never emits a token whose
// length falls outside [1, 32].
func TestTokenLengthBounds(t *testing.T) {
	img := mustImage(t, 200, 3)
	rng := rand.New(rand.NewSource(2))
	for y := 0; y < 3; y++ {
		for x := 0; x < 200; x++ {
			img.SetColor(x, y, gfx.Opaque(uint8(rng.Intn(4)), 0, 0))
		}
	}
	data, err := EncodeImage(img)
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}

	i := 0
	lineFeeds := 0
	for i < len(data) {
		tok := DecodeToken(data[i])
		i++
		if tok.Length < 1 || tok.Length > MaxTokenLength {
			t.Fatalf("token length %d out of [1,32]", tok.Length)
		}
		switch tok.Kind {
		case KindStream:
			i += tok.Length * 2
		case KindRepeat:
			i += 2
		case KindTransparent:
			// no payload
		case KindLineFeed:
			lineFeeds++
		}
	}
	if lineFeeds != 3 {
		t.Fatalf("LineFeed count = %d, want 3 (one per row)", lineFeeds)
	}
}

// TestDecodeRejectsBadLineFeedLength covers LineFeed length != 1 failing
// with MalformedStream.
func TestDecodeRejectsBadLineFeedLength(t *testing.T) {
	img := mustImage(t, 2, 1)
	data := []byte{KindLineFeed.Encode(2)}
	if err := DecodeImage(img, data); err == nil {
		t.Fatal("expected error for LineFeed length != 1")
	}
}

// TestDecodeRejectsReservedKind covers an unknown/reserved token kind
// failing.
func TestDecodeRejectsReservedKind(t *testing.T) {
	img := mustImage(t, 2, 1)
	reserved := byte(3) << 5 // kind=3, reserved
	if err := DecodeImage(img, []byte{reserved}); err == nil {
		t.Fatal("expected error for reserved token kind")
	}
}

// TestTileDecodeFillsOnlyPredictedPixels exercises spec scenario 3: a
// 512-byte tile blob fills exactly the pixel positions predicted by
// perRow and leaves all other pixels untouched.
func TestTileDecodeFillsOnlyPredictedPixels(t *testing.T) {
	data := make([]byte, TileRawBytes)
	marker := gfx.TGX16.Pack(gfx.Opaque(31, 31, 31)) // opaque, non-sentinel TGX16 pixel
	for i := 0; i < TileRawBytes; i += 2 {
		data[i] = byte(marker)
		data[i+1] = byte(marker >> 8)
	}

	dst := mustImage(t, TileWidth, TileHeight)
	sentinel := gfx.Opaque(8, 8, 8) // exactly representable in TGX16, so it reads back unchanged
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			dst.SetColor(x, y, sentinel)
		}
	}

	if err := DecodeTile(dst, 0, 0, data); err != nil {
		t.Fatalf("DecodeTile: %v", err)
	}

	for y := 0; y < TileHeight; y++ {
		n := perRow[y]
		pad := (TileWidth - n) / 2
		for x := 0; x < TileWidth; x++ {
			c, _ := dst.At(x, y)
			inRow := x >= pad && x < pad+n
			if inRow {
				if !c.Equal(gfx.TGX16.Unpack(marker)) {
					t.Fatalf("(%d,%d) should be the decoded marker pixel, got %+v", x, y, c)
				}
			} else if !c.Equal(sentinel) {
				t.Fatalf("(%d,%d) outside perRow should be untouched, got %+v", x, y, c)
			}
		}
	}
}
