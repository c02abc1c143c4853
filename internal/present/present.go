// Package present declares, without implementing them, the contracts the
// real game client's windowing layer would satisfy:
// Renderer, Camera, Screen and Server. The codec stack hands a decoded
// Image and Palette across this boundary; what happens on the other side
// (windowing, the game loop, the network transport) is out of scope, so
// only the boundary's shape is fixed in the type system.
package present

import (
	"context"

	"crusader-assets/internal/canvas"
	"crusader-assets/internal/gfx"
)

// Renderer accepts a decoded Image and its resolved Palette and presents
// them to a window or framebuffer. A real implementation lives in the
// windowing layer, out of scope for this module.
type Renderer interface {
	Present(img *canvas.Image, pal *gfx.Palette) error
}

// Camera converts world coordinates to screen coordinates for the
// isometric tile grid; owned by the game loop, out of scope here.
type Camera interface {
	WorldToScreen(worldX, worldY int) (screenX, screenY int)
}

// Screen owns the window surface a Renderer draws into; out of scope here.
type Screen interface {
	Renderer() Renderer
	Close() error
}

// Server is the network server skeleton's client-facing surface: out of
// scope, declared only so a full client has something to dial.
type Server interface {
	Connect(ctx context.Context, addr string) error
	Send(ctx context.Context, payload []byte) error
	Close() error
}

// ExampleHandoff shows how a decoded entry would cross the boundary into a
// real Renderer; only this package's test calls it.
func ExampleHandoff(r Renderer, img *canvas.Image, pal *gfx.Palette) error {
	return r.Present(img, pal)
}
