package main

import (
	"flag"
	"fmt"
	"os"
)

func runList(fs *flag.FlagSet, args []string, verbose bool, configFlag string) int {
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

	// tileOrient and flags are left-aligned; every other column right-aligned.
	fmt.Printf("%5s %6s %6s %6s %6s %5s %9s %6s %-10s %7s %8s %-5s\n",
		"index", "width", "height", "posX", "posY", "group", "groupSize", "tileY", "tileOrient", "hOffset", "boxWidth", "flags")
	for i, e := range arc.Entries {
		h := e.Header
		fmt.Printf("%5d %6d %6d %6d %6d %5d %9d %6d %-10d %7d %8d %-5d\n",
			i, h.Width, h.Height, h.PosX, h.PosY, h.Group, h.GroupSize, h.TileY, h.TileOrient, h.HOffset, h.BoxWidth, h.Flags)
	}
	return exitOK
}
