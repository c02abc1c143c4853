package canvas

import (
	"fmt"

	"crusader-assets/internal/codecerr"
)

// ImageView is an Image that aliases a rectangular sub-region of a parent
// Image's pixel buffer without copying. A view's lifetime must not outlive
// its parent; Go's garbage collector keeps the shared backing array alive
// for as long as the view exists, but the parent field below is kept so
// the relationship is visible and so callers can recover the source image.
type ImageView struct {
	Image
	parent *Image
}

// Parent returns the Image this view aliases.
func (v *ImageView) Parent() *Image { return v.parent }

// View builds a sub-view of src referencing clip (intersected with src's
// own bounds), inheriting src's format, palette and color key. It fails if
// the intersection is empty or if src is marked RLE-accelerated.
func (img *Image) View(clip Rect) (*ImageView, error) {
	if img.rleAccel {
		return nil, fmt.Errorf("%w: cannot build a view on an RLE-accelerated surface", codecerr.ErrInvalidArgument)
	}
	bounds := img.Bounds()
	region := clip.Intersection(bounds)
	if region.Empty() {
		return nil, fmt.Errorf("%w: view rectangle %+v does not intersect bounds %+v",
			codecerr.ErrInvalidArgument, clip, bounds)
	}

	bpp := img.format.BytesPerPixel()
	baseOffset := region.Y*img.stride + region.X*bpp

	sub := Image{
		width:    region.W,
		height:   region.H,
		format:   img.format,
		stride:   img.stride,
		pix:      img.pix[baseOffset:],
		palette:  img.palette,
		colorKey: img.colorKey,
		borrowed: true,
	}
	return &ImageView{Image: sub, parent: img}, nil
}
