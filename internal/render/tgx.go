package render

import (
	"fmt"
	"io"

	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
	"crusader-assets/internal/tgx"
)

func init() {
	Register(tgxPlugin{})
}

// tgxPlugin re-encodes a decoded entry as a standalone .tgx file: the
// format gmtool read, written back out rather than converted.
type tgxPlugin struct{}

func (tgxPlugin) Name() string      { return "tgx" }
func (tgxPlugin) Extension() string { return ".tgx" }

func (tgxPlugin) Render(w io.Writer, img *canvas.Image) error {
	src := img
	if img.Format() != gfx.TGX16 {
		converted, err := img.ConvertTo(gfx.TGX16)
		if err != nil {
			return fmt.Errorf("%w: render: tgx: cannot convert %v to TGX16: %v",
				codecerr.ErrInvalidArgument, img.Format(), err)
		}
		src = converted
	}
	data, err := tgx.EncodeFile(src)
	if err != nil {
		return fmt.Errorf("render: tgx: %w", err)
	}
	_, err = w.Write(data)
	return err
}
