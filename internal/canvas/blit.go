package canvas

import (
	"fmt"

	"crusader-assets/internal/codecerr"
)

// Blit copies pixels from src (clipped to srcRect ∩ src.Bounds()) into dst
// (clipped to dstRect ∩ dst.Bounds()), honoring src's color key and, for an
// indexed src, its attached palette. There is no scaling: the copied region
// is the smaller of the two clipped rectangles' dimensions. dst must not be
// an indexed format.
func Blit(src *Image, srcRect Rect, dst *Image, dstRect Rect) error {
	if dst.format.Indexed {
		return fmt.Errorf("%w: blit destination cannot be an indexed format", codecerr.ErrInvalidArgument)
	}

	srcClip := srcRect.Intersection(src.Bounds())
	dstClip := dstRect.Intersection(dst.Bounds())
	if srcClip.Empty() || dstClip.Empty() {
		return nil
	}

	w := srcClip.W
	if dstClip.W < w {
		w = dstClip.W
	}
	h := srcClip.H
	if dstClip.H < h {
		h = dstClip.H
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	ck, hasCK := src.ColorKey()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := src.At(srcClip.X+x, srcClip.Y+y)
			if err != nil {
				return err
			}
			if hasCK && c.Equal(ck) {
				continue
			}
			if err := dst.SetColor(dstClip.X+x, dstClip.Y+y, c); err != nil {
				return err
			}
		}
	}
	return nil
}
