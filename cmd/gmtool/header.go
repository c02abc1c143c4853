package main

import (
	"flag"
	"fmt"
	"os"

	"crusader-assets/internal/gm1"
)

func runHeader(fs *flag.FlagSet, args []string, verbose bool, configFlag string) int {
	var (
		binary           bool
		countOnly        bool
		encodingOnly     bool
		checkSizeCatFlag bool
	)
	fs.BoolVar(&binary, "binary", false, "write the raw 88-byte header instead of a text dump")
	fs.BoolVar(&countOnly, "count", false, "print only imageCount")
	fs.BoolVar(&encodingOnly, "encoding", false, "print only the dataClass-derived encoding name")
	fs.BoolVar(&checkSizeCatFlag, "check-size-category", false, "fail if sizeCategory disagrees with declared width/height")
	flagArgs, positional := splitPositional(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return exitUsage
	}
	if len(positional) != 1 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	logger := newLogger(verbose)
	defer flushLogger(logger)

	arc, err := openArchive(positional[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}

	if checkSizeCatFlag {
		if err := arc.CheckSizeCategory(); err != nil {
			fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
			return exitCodeFor(err)
		}
	}

	if binary {
		out := encodeHeaderBytes(arc.Header)
		if _, err := os.Stdout.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "gmtool: writing header: %v\n", err)
			return exitIO
		}
		return exitOK
	}

	if countOnly {
		fmt.Println(arc.Header.ImageCount())
		return exitOK
	}
	if encodingOnly {
		fmt.Println(arc.Encoding())
		return exitOK
	}

	h := arc.Header
	fmt.Printf("imageCount:   %d\n", h.ImageCount())
	fmt.Printf("dataClass:    %d (%s)\n", h.DataClass(), arc.Encoding())
	fmt.Printf("sizeCategory: %d\n", h.SizeCategory())
	fmt.Printf("width:        %d\n", h.Width())
	fmt.Printf("height:       %d\n", h.Height())
	fmt.Printf("anchorX:      %d\n", h.AnchorX())
	fmt.Printf("anchorY:      %d\n", h.AnchorY())
	fmt.Printf("dataSize:     %d\n", h.DataSize())
	return exitOK
}

// encodeHeaderBytes serializes h's 22 little-endian uint32 fields without
// going through the full archive writer, for --binary.
func encodeHeaderBytes(h gm1.Header) []byte {
	out := make([]byte, gm1.HeaderBytes)
	for i, v := range h.Fields {
		off := i * 4
		out[off] = byte(v)
		out[off+1] = byte(v >> 8)
		out[off+2] = byte(v >> 16)
		out[off+3] = byte(v >> 24)
	}
	return out
}
