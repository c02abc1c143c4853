package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gfx"
	"crusader-assets/internal/render"
)

func runRender(fs *flag.FlagSet, args []string, verbose bool, configFlag string) int {
	var (
		index           int
		palette         int
		format          string
		output          string
		transparent     string
		approximateSize bool
	)
	fs.IntVar(&index, "index", -1, "entry index to render (required)")
	fs.IntVar(&palette, "palette", 0, "palette index to attach if the entry is indexed (default from config)")
	fs.StringVar(&format, "format", "", "output format: bmp, tgx or png (default from config)")
	fs.StringVar(&output, "output", "", "output file path (required unless --approximate-size)")
	fs.StringVar(&transparent, "transparent", "", "#AARRGGBB color to treat as transparent")
	fs.BoolVar(&approximateSize, "approximate-size", false, "discard output, print byte count instead")
	flagArgs, positional := splitPositional(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return exitUsage
	}
	if len(positional) != 1 || index < 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	cfg, err := loadConfig(configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitUsage
	}
	if format == "" {
		format = cfg.DefaultFormat
	}
	paletteSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "palette" {
			paletteSet = true
		}
	})
	if !paletteSet {
		palette = cfg.DefaultPalette
	}
	if !approximateSize && output == "" {
		fmt.Fprint(os.Stderr, "gmtool: render requires --output unless --approximate-size is given\n")
		return exitUsage
	}

	logger := newLogger(verbose)
	defer flushLogger(logger)

	arc, err := openArchive(positional[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}
	if index >= len(arc.Entries) {
		err := fmt.Errorf("%w: entry index %d, archive has %d entries", codecerr.ErrIndexOutOfRange, index, len(arc.Entries))
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}

	img, err := arc.ReadEntry(index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}

	if img.Format().Indexed {
		if palette < 0 || palette >= len(arc.Palettes) {
			err := fmt.Errorf("%w: palette index %d, archive has %d palettes", codecerr.ErrIndexOutOfRange, palette, len(arc.Palettes))
			fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
			return exitCodeFor(err)
		}
		img.AttachPalette(arc.Palettes[palette])
	}

	transparentColor, err := resolveTransparent(transparent, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitUsage
	}
	img.SetColorKey(transparentColor)

	rgba, err := img.ConvertTo(gfx.RGBA8888)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}

	plugin, err := render.Lookup(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitUsage
	}

	if approximateSize {
		counter := &countingWriter{}
		if err := plugin.Render(counter, rgba); err != nil {
			fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
			return exitCodeFor(err)
		}
		fmt.Println(counter.n)
		return exitOK
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitIO
	}
	defer f.Close()

	if err := plugin.Render(f, rgba); err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}
	return exitOK
}

// resolveTransparent parses the --transparent flag ("#AARRGGBB"); if empty,
// falls back to the config's default transparent color.
func resolveTransparent(flagValue string, cfg configLike) (gfx.Color, error) {
	if flagValue == "" {
		return cfg.TransparentColor()
	}
	return parseARGBHex(flagValue)
}

// configLike is the minimal surface resolveTransparent needs from
// config.RenderConfig.
type configLike interface {
	TransparentColor() (gfx.Color, error)
}

func parseARGBHex(s string) (gfx.Color, error) {
	s = trimHash(s)
	if len(s) != 8 {
		return gfx.Color{}, fmt.Errorf("%w: --transparent %q is not #AARRGGBB", codecerr.ErrInvalidArgument, s)
	}
	var a, r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &a, &r, &g, &b); err != nil {
		return gfx.Color{}, fmt.Errorf("%w: --transparent %q: %v", codecerr.ErrInvalidArgument, s, err)
	}
	return gfx.Color{R: r, G: g, B: b, A: a}, nil
}

func trimHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}

type countingWriter struct{ n int64 }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

var _ io.Writer = (*countingWriter)(nil)
