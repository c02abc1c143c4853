package render

import (
	"fmt"
	"io"

	"github.com/jsummers/gobmp"

	"crusader-assets/internal/canvas"
)

func init() {
	Register(bmpPlugin{})
}

// bmpPlugin writes an uncompressed BMP via github.com/jsummers/gobmp, which
// always emits bottom-up rows and picks 24bpp or 32bpp depending on whether
// the source image carries an alpha channel worth keeping.
type bmpPlugin struct{}

func (bmpPlugin) Name() string      { return "bmp" }
func (bmpPlugin) Extension() string { return ".bmp" }

func (bmpPlugin) Render(w io.Writer, img *canvas.Image) error {
	std, err := img.ToStdImage()
	if err != nil {
		return fmt.Errorf("render: bmp: %w", err)
	}
	if err := gobmp.Encode(w, std); err != nil {
		return fmt.Errorf("render: bmp: %w", err)
	}
	return nil
}
