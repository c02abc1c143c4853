//go:build !nopng

package render

import (
	"fmt"
	"image/png"
	"io"

	"crusader-assets/internal/canvas"
)

func init() {
	Register(pngPlugin{})
}

// pngPlugin is built in by default; pass -tags nopng to drop the
// image/png dependency from the binary entirely.
type pngPlugin struct{}

func (pngPlugin) Name() string      { return "png" }
func (pngPlugin) Extension() string { return ".png" }

func (pngPlugin) Render(w io.Writer, img *canvas.Image) error {
	std, err := img.ToStdImage()
	if err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	if err := png.Encode(w, std); err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	return nil
}
