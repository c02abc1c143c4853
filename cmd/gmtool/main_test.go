package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
)

func TestParseARGBHex(t *testing.T) {
	c, err := parseARGBHex("#11223344")
	if err != nil {
		t.Fatalf("parseARGBHex: %v", err)
	}
	want := gfx.Color{A: 0x11, R: 0x22, G: 0x33, B: 0x44}
	if c != want {
		t.Fatalf("parseARGBHex(#11223344) = %+v, want %+v", c, want)
	}
}

func TestParseARGBHexRejectsWrongLength(t *testing.T) {
	if _, err := parseARGBHex("#112233"); err == nil {
		t.Fatal("expected error for a 6-digit value")
	}
}

func TestTrimHash(t *testing.T) {
	if trimHash("#abc") != "abc" || trimHash("abc") != "abc" {
		t.Fatal("trimHash must strip only a leading #")
	}
}

func TestExitCodeForClassification(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{codecerr.ErrIndexOutOfRange, exitIndexRange},
		{codecerr.ErrInvalidArgument, exitUsage},
		{codecerr.ErrIO, exitIO},
		{codecerr.ErrResourceExhausted, exitIO},
		{codecerr.ErrUnexpectedEOF, exitFormatMismatch},
		{codecerr.ErrMalformedStream, exitFormatMismatch},
		{codecerr.ErrFormatMismatch, exitFormatMismatch},
	}
	for _, c := range cases {
		if got := exitCodeFor(c.err); got != c.want {
			t.Errorf("exitCodeFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestCountingWriter(t *testing.T) {
	w := &countingWriter{}
	n, err := w.Write([]byte("hello"))
	if err != nil || n != 5 || w.n != 5 {
		t.Fatalf("Write = (%d, %v), w.n = %d", n, err, w.n)
	}
}

// buildMinimalGM1 writes a one-entry TGX16 archive (4x2, solid color) to a
// temp file and returns its path, for exercising the CLI's mode dispatch
// end to end without depending on a real asset file.
func buildMinimalGM1(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	header := make([]byte, 88)
	binary.LittleEndian.PutUint32(header[3*4:], 1)  // imageCount
	binary.LittleEndian.PutUint32(header[5*4:], 1)  // dataClass = TGX16
	buf.Write(header)

	for i := 0; i < 10; i++ {
		buf.Write(make([]byte, 512))
	}

	// 4x2 image of the TGX16 transparent sentinel pixel (0x0000), encoded
	// as Transparent(4) + LineFeed per row.
	tokenTransparent4 := byte((1 << 5) | 3)
	tokenLineFeed1 := byte((4 << 5) | 0)
	payload := []byte{tokenTransparent4, tokenLineFeed1, tokenTransparent4, tokenLineFeed1}

	buf.Write(u32le(0))                 // offsets[0]
	buf.Write(u32le(uint32(len(payload)))) // sizes[0]

	entryHeader := make([]byte, 16)
	binary.LittleEndian.PutUint16(entryHeader[0:], 4) // width
	binary.LittleEndian.PutUint16(entryHeader[2:], 2) // height
	buf.Write(entryHeader)

	buf.Write(payload)

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[20*4:], uint32(len(payload))) // dataSize

	dir := t.TempDir()
	path := filepath.Join(dir, "test.gm1")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestRunHeaderCountMatchesImageCount(t *testing.T) {
	path := buildMinimalGM1(t)
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	stdout := os.Stdout
	os.Stdout = pw
	got := run([]string{"header", path, "--count"})
	os.Stdout = stdout
	pw.Close()
	out, err := io.ReadAll(pr)
	if err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	if got != exitOK {
		t.Fatalf("run(header --count) = %d, want %d", got, exitOK)
	}
	if string(out) != "1\n" {
		t.Fatalf("header --count printed %q, want %q (imageCount)", out, "1\n")
	}
}

func TestRunListSucceeds(t *testing.T) {
	path := buildMinimalGM1(t)
	if got := run([]string{"list", path}); got != exitOK {
		t.Fatalf("run(list) = %d, want %d", got, exitOK)
	}
}

func TestRunEntryOutOfRangeExitsFour(t *testing.T) {
	path := buildMinimalGM1(t)
	if got := run([]string{"entry", path, "99"}); got != exitIndexRange {
		t.Fatalf("run(entry 99) = %d, want %d", got, exitIndexRange)
	}
}

func TestRunUnknownModeExitsUsage(t *testing.T) {
	if got := run([]string{"bogus"}); got != exitUsage {
		t.Fatalf("run(bogus) = %d, want %d", got, exitUsage)
	}
}

func TestRunRenderApproximateSize(t *testing.T) {
	path := buildMinimalGM1(t)
	if got := run([]string{"render", path, "--index", "0", "--format", "bmp", "--approximate-size"}); got != exitOK {
		t.Fatalf("run(render --approximate-size) = %d, want %d", got, exitOK)
	}
}

// buildIndexedGM1 writes a one-entry TGX8 (indexed) archive whose single 2x1
// entry is every pixel index paletteIndex, and sets palette slot 2's entry
// at paletteIndex to rawColor (a TGX16 word). Mirrors buildMinimalGM1's
// layout but with dataClass = 2 and a non-blank palette.
func buildIndexedGM1(t *testing.T, paletteIndex int, rawColor uint16) string {
	t.Helper()

	var buf bytes.Buffer
	header := make([]byte, 88)
	binary.LittleEndian.PutUint32(header[3*4:], 1) // imageCount
	binary.LittleEndian.PutUint32(header[5*4:], 2) // dataClass = TGX8
	buf.Write(header)

	for p := 0; p < 10; p++ {
		pal := make([]byte, 512)
		if p == 2 {
			binary.LittleEndian.PutUint16(pal[paletteIndex*2:], rawColor)
		}
		buf.Write(pal)
	}

	// One row, two pixels, both index paletteIndex: Stream(2) + LineFeed.
	tokenStream2 := byte((0 << 5) | 1)
	tokenLineFeed1 := byte((4 << 5) | 0)
	payload := []byte{tokenStream2, byte(paletteIndex), byte(paletteIndex), tokenLineFeed1}

	buf.Write(u32le(0))                    // offsets[0]
	buf.Write(u32le(uint32(len(payload)))) // sizes[0]

	entryHeader := make([]byte, 16)
	binary.LittleEndian.PutUint16(entryHeader[0:], 2) // width
	binary.LittleEndian.PutUint16(entryHeader[2:], 1) // height
	buf.Write(entryHeader)

	buf.Write(payload)

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[20*4:], uint32(len(payload))) // dataSize

	dir := t.TempDir()
	path := filepath.Join(dir, "indexed.gm1")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// TestRunRenderIndexedEntryMatchesPaletteLookup exercises render --palette
// on an indexed entry and checks the BMP's (0,0) pixel against an
// independent decode of the chosen palette slot's TGX16 color.
func TestRunRenderIndexedEntryMatchesPaletteLookup(t *testing.T) {
	const rawColor = 0xFC00 // opaque, full red: A=1, R=0x1F, G=0, B=0
	path := buildIndexedGM1(t, 5, rawColor)

	dir := t.TempDir()
	out := filepath.Join(dir, "out.bmp")
	got := run([]string{"render", path, "--index", "0", "--format", "bmp", "--palette", "2", "--output", out})
	if got != exitOK {
		t.Fatalf("run(render) = %d, want %d", got, exitOK)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	decoded, err := bmp.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}

	want := gfx.TGX16.Unpack(uint32(rawColor))
	r, g, b, _ := decoded.At(0, 0).RGBA()
	gotColor := gfx.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	if gotColor.R != want.R || gotColor.G != want.G || gotColor.B != want.B {
		t.Fatalf("rendered pixel (0,0) = %+v, want %+v", gotColor, want)
	}
}
