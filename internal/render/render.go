// Package render implements gmtool's pluggable output formats: a Plugin
// writes a decoded canvas.Image to an io.Writer in some concrete file
// format. New formats register themselves by name instead of gmtool's CLI
// switching on a hardcoded list.
package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"crusader-assets/internal/canvas"
	"crusader-assets/internal/codecerr"
)

// Plugin renders a decoded Image to w in one concrete output format.
type Plugin interface {
	// Name is the format identifier used on the command line, e.g. "bmp".
	Name() string
	// Extension is the conventional file extension, including the dot.
	Extension() string
	// Render writes img to w.
	Render(w io.Writer, img *canvas.Image) error
}

var (
	mu       sync.Mutex
	registry = map[string]Plugin{}
	order    []string
)

// Register adds p to the registry under its own Name(). Registering two
// plugins with the same name replaces the earlier one; gmtool's init-time
// registration never does this, but the registry doesn't forbid it.
func Register(p Plugin) {
	mu.Lock()
	defer mu.Unlock()
	name := p.Name()
	if _, exists := registry[name]; !exists {
		order = append(order, name)
	}
	registry[name] = p
}

// Lookup returns the registered plugin for name.
func Lookup(name string) (Plugin, error) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: no render plugin registered for format %q (known: %v)",
			codecerr.ErrInvalidArgument, name, namesLocked())
	}
	return p, nil
}

// Names returns the registered plugin names in sorted order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	return namesLocked()
}

func namesLocked() []string {
	out := make([]string, len(order))
	copy(out, order)
	sort.Strings(out)
	return out
}
