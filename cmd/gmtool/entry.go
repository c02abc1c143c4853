package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/gm1"
)

func runEntry(fs *flag.FlagSet, args []string, verbose bool, configFlag string) int {
	var binary bool
	fs.BoolVar(&binary, "binary", false, "write the raw 16-byte entry header instead of a text dump")
	flagArgs, positional := splitPositional(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return exitUsage
	}
	if len(positional) != 2 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	index, err := strconv.Atoi(positional[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: entry index %q is not an integer\n", positional[1])
		return exitUsage
	}

	logger := newLogger(verbose)
	defer flushLogger(logger)

	arc, err := openArchive(positional[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}
	if index < 0 || index >= len(arc.Entries) {
		err := fmt.Errorf("%w: entry index %d, archive has %d entries", codecerr.ErrIndexOutOfRange, index, len(arc.Entries))
		fmt.Fprintf(os.Stderr, "gmtool: %v\n", err)
		return exitCodeFor(err)
	}

	h := arc.Entries[index].Header
	if binary {
		out := encodeEntryHeaderBytes(h)
		if _, err := os.Stdout.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "gmtool: writing entry header: %v\n", err)
			return exitIO
		}
		return exitOK
	}

	fmt.Printf("width:      %d\n", h.Width)
	fmt.Printf("height:     %d\n", h.Height)
	fmt.Printf("posX:       %d\n", h.PosX)
	fmt.Printf("posY:       %d\n", h.PosY)
	fmt.Printf("group:      %d\n", h.Group)
	fmt.Printf("groupSize:  %d\n", h.GroupSize)
	fmt.Printf("tileY:      %d\n", h.TileY)
	fmt.Printf("tileOrient: %d\n", h.TileOrient)
	fmt.Printf("hOffset:    %d\n", h.HOffset)
	fmt.Printf("boxWidth:   %d\n", h.BoxWidth)
	fmt.Printf("flags:      %d\n", h.Flags)
	return exitOK
}

func encodeEntryHeaderBytes(h gm1.EntryHeader) []byte {
	out := make([]byte, gm1.EntryHeaderBytes)
	out[0], out[1] = byte(h.Width), byte(h.Width>>8)
	out[2], out[3] = byte(h.Height), byte(h.Height>>8)
	out[4], out[5] = byte(h.PosX), byte(h.PosX>>8)
	out[6], out[7] = byte(h.PosY), byte(h.PosY>>8)
	out[8] = h.Group
	out[9] = h.GroupSize
	out[10], out[11] = byte(h.TileY), byte(h.TileY>>8)
	out[12] = h.TileOrient
	out[13] = h.HOffset
	out[14] = h.BoxWidth
	out[15] = h.Flags
	return out
}
