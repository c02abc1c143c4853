// Package canvas implements Image, the owned 2D pixel buffer decoders write
// into, its ImageView aliasing sub-views, and blit/rect geometry.
package canvas

import (
	"fmt"

	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
)

// Image is an owned (or borrowed) 2D pixel buffer: width, height, pixel
// format, row stride, and an optional color key. It does not implement
// image.Image itself (its At also returns an error); ToStdImage converts it
// for stdlib encoders.
type Image struct {
	width, height int
	format        gfx.PixelFormat
	stride        int
	pix           []byte
	palette       *gfx.Palette
	colorKey      *gfx.Color
	borrowed      bool
	locked        bool
	rleAccel      bool
}

// New allocates a zero-initialized Image of the given size and format.
func New(width, height int, format gfx.PixelFormat) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions must be positive, got %dx%d",
			codecerr.ErrInvalidArgument, width, height)
	}
	stride := width * format.BytesPerPixel()
	size := stride * height
	pix := make([]byte, size)
	if pix == nil {
		return nil, fmt.Errorf("%w: failed to allocate %d bytes", codecerr.ErrResourceExhausted, size)
	}
	return &Image{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		pix:    pix,
	}, nil
}

// FromBorrowed wraps externally owned bytes as an Image without copying.
// The caller must ensure data outlives the returned Image.
func FromBorrowed(data []byte, width, height, stride int, format gfx.PixelFormat) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions must be positive, got %dx%d",
			codecerr.ErrInvalidArgument, width, height)
	}
	minStride := width * format.BytesPerPixel()
	if stride < minStride {
		return nil, fmt.Errorf("%w: stride %d smaller than width*bpp %d", codecerr.ErrInvalidArgument, stride, minStride)
	}
	if len(data) < stride*height {
		return nil, fmt.Errorf("%w: borrowed buffer too small: need %d bytes, have %d",
			codecerr.ErrInvalidArgument, stride*height, len(data))
	}
	return &Image{
		width:    width,
		height:   height,
		format:   format,
		stride:   stride,
		pix:      data,
		borrowed: true,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Stride returns the row stride in bytes.
func (img *Image) Stride() int { return img.stride }

// Format returns the pixel format.
func (img *Image) Format() gfx.PixelFormat { return img.format }

// Bounds returns the image's rectangle at (0,0).
func (img *Image) Bounds() Rect {
	return Rect{X: 0, Y: 0, W: img.width, H: img.height}
}

// ColorKey returns the current color key and whether one is set.
func (img *Image) ColorKey() (gfx.Color, bool) {
	if img.colorKey == nil {
		return gfx.Color{}, false
	}
	return *img.colorKey, true
}

// SetColorKey marks c as the transparent pixel value on blit. Idempotent.
func (img *Image) SetColorKey(c gfx.Color) {
	ck := c
	img.colorKey = &ck
}

// ClearColorKey removes any color key. Idempotent.
func (img *Image) ClearColorKey() {
	img.colorKey = nil
}

// Palette returns the attached palette, or nil if none is attached.
func (img *Image) Palette() *gfx.Palette { return img.palette }

// AttachPalette attaches a palette, required before indexed-to-RGB
// conversion or blitting an indexed image onto an RGB target.
func (img *Image) AttachPalette(p *gfx.Palette) {
	img.palette = p
}

// SetRLEAccelerated marks or unmarks the image as requiring RLE lock
// acceleration. Views cannot be built on an RLE-accelerated surface.
func (img *Image) SetRLEAccelerated(v bool) {
	img.rleAccel = v
}

// rowOffset returns the byte offset of row y.
func (img *Image) rowOffset(y int) int {
	return y * img.stride
}

// Fill sets every pixel to c. On an indexed image every pixel is set to
// index 0 instead; c is not used.
func (img *Image) Fill(c gfx.Color) error {
	g, err := img.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()

	bpp := img.format.BytesPerPixel()
	var raw uint32
	if !img.format.Indexed {
		raw = img.format.Pack(c)
	}
	buf := g.Bytes()
	for y := 0; y < img.height; y++ {
		row := buf[img.rowOffset(y) : img.rowOffset(y)+img.width*bpp]
		for x := 0; x < img.width; x++ {
			putPixel(row[x*bpp:x*bpp+bpp], raw, bpp)
		}
	}
	return nil
}

func putPixel(dst []byte, v uint32, bpp int) {
	switch bpp {
	case 1:
		dst[0] = byte(v)
	case 2:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 4:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	}
}

func getPixel(src []byte, bpp int) uint32 {
	var v uint32
	for i := 0; i < bpp; i++ {
		v |= uint32(src[i]) << uint(8*i)
	}
	return v
}

// At returns the color of the pixel at (x, y), resolving through the
// attached palette for indexed formats.
func (img *Image) At(x, y int) (gfx.Color, error) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return gfx.Color{}, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			codecerr.ErrInvalidArgument, x, y, img.width, img.height)
	}
	bpp := img.format.BytesPerPixel()
	off := img.rowOffset(y) + x*bpp
	raw := getPixel(img.pix[off:off+bpp], bpp)
	if img.format.Indexed {
		if img.palette == nil {
			return gfx.Color{}, fmt.Errorf("%w: indexed image has no attached palette", codecerr.ErrInvalidArgument)
		}
		return img.palette.At(int(raw))
	}
	return img.format.Unpack(raw), nil
}

// SetColor writes c at (x, y). It fails on indexed formats; use SetIndex
// for those.
func (img *Image) SetColor(x, y int, c gfx.Color) error {
	if img.format.Indexed {
		return fmt.Errorf("%w: SetColor called on an indexed image, use SetIndex", codecerr.ErrInvalidArgument)
	}
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			codecerr.ErrInvalidArgument, x, y, img.width, img.height)
	}
	bpp := img.format.BytesPerPixel()
	off := img.rowOffset(y) + x*bpp
	putPixel(img.pix[off:off+bpp], img.format.Pack(c), bpp)
	return nil
}

// SetIndex writes a raw palette index at (x, y) on an indexed image.
func (img *Image) SetIndex(x, y int, index uint8) error {
	if !img.format.Indexed {
		return fmt.Errorf("%w: SetIndex called on a non-indexed image", codecerr.ErrInvalidArgument)
	}
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			codecerr.ErrInvalidArgument, x, y, img.width, img.height)
	}
	off := img.rowOffset(y) + x
	img.pix[off] = index
	return nil
}

// ConvertTo allocates a new Image in dstFormat and maps every pixel via
// channel-mask extraction (RGB to RGB) or palette lookup (indexed to RGB).
func (img *Image) ConvertTo(dstFormat gfx.PixelFormat) (*Image, error) {
	if dstFormat.Indexed {
		return nil, fmt.Errorf("%w: ConvertTo cannot target an indexed format", codecerr.ErrInvalidArgument)
	}
	out, err := New(img.width, img.height, dstFormat)
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c, err := img.At(x, y)
			if err != nil {
				return nil, err
			}
			if ck, ok := img.ColorKey(); ok && c.Equal(ck) {
				c = gfx.Transparent
			}
			if err := out.SetColor(x, y, c); err != nil {
				return nil, err
			}
		}
	}
	if ck, ok := img.ColorKey(); ok {
		out.SetColorKey(ck)
	}
	return out, nil
}
