package main

import (
	"fmt"
	"os"

	"crusader-assets/internal/codecerr"
	"crusader-assets/internal/config"
	"crusader-assets/internal/gm1"
	"crusader-assets/internal/logging"
)

// loadConfig resolves and loads gmtool's TOML config, flags winning over
// the GMTOOL_CONFIG environment variable, falling back to built-in
// defaults when neither names a file.
func loadConfig(configFlag string) (config.RenderConfig, error) {
	path := config.Resolve(configFlag)
	return config.Load(path)
}

// newLogger builds the ambient logger used when --verbose is set, with
// every component enabled; a disabled run passes a nil logger around
// instead, which every call site here treats as "do not log".
func newLogger(verbose bool) *logging.Logger {
	if !verbose {
		return nil
	}
	l := logging.NewLogger(1024)
	l.SetMinLevel(logging.LevelDebug)
	return l
}

// flushLogger prints every buffered entry to stderr; called once at the end
// of a run when --verbose was given.
func flushLogger(l *logging.Logger) {
	if l == nil {
		return
	}
	for _, e := range l.Entries() {
		fmt.Fprintln(os.Stderr, e.Format())
	}
}

// openArchive reads path and parses it as a GM1 archive, attaching l (which
// may be nil) so entry-level decode failures are reported without aborting
// the archive.
func openArchive(path string, l *logging.Logger) (*gm1.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", codecerr.ErrIO, path, err)
	}
	arc, err := gm1.Open(data)
	if err != nil {
		return nil, err
	}
	arc.SetLogger(l)
	return arc, nil
}
