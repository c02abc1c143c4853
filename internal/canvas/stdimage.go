package canvas

import (
	stdimg "image"
	stdcolor "image/color"
)

// ToStdImage converts img to a stdlib *image.NRGBA, resolving indexed
// pixels through the attached palette. This is the boundary the render
// plugins (BMP, PNG) and the out-of-scope windowing layer consume.
func (img *Image) ToStdImage() (*stdimg.NRGBA, error) {
	out := stdimg.NewNRGBA(stdimg.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c, err := img.At(x, y)
			if err != nil {
				return nil, err
			}
			if ck, ok := img.ColorKey(); ok && c.Equal(ck) {
				out.SetNRGBA(x, y, stdcolor.NRGBA{})
				continue
			}
			out.SetNRGBA(x, y, stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return out, nil
}
