// Command gmtool is the codec stack's test harness: it lists, dumps and
// re-renders GM1 archive entries from the command line. Its option-parsing
// shell is intentionally thin -- the hard engineering lives in
// internal/gm1 and internal/tgx, not here.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"crusader-assets/internal/codecerr"
)

const usage = `Usage:
  gmtool list <file>
  gmtool header <file> [--binary] [--count] [--encoding] [--check-size-category]
  gmtool entry <file> <index> [--binary]
  gmtool render <file> --index I [--palette P] [--format {bmp|tgx|png}]
                       [--output O] [--transparent #AARRGGBB] [--approximate-size]

Global flags (any mode): --verbose, --config <path>
`

func main() {
	os.Exit(run(os.Args[1:]))
}

// Exit codes, per the CLI's external interface: 0 success, 1 usage error,
// 2 I/O error, 3 format error, 4 index out of range.
const (
	exitOK             = 0
	exitUsage          = 1
	exitIO             = 2
	exitFormatMismatch = 3
	exitIndexRange     = 4
)

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	mode := args[0]
	rest := args[1:]

	var (
		verbose    bool
		configPath string
	)

	fs := flag.NewFlagSet(mode, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.BoolVar(&verbose, "verbose", false, "log CLI/GM1/TGX/IO activity to stderr")
	fs.StringVar(&configPath, "config", "", "path to a TOML config file (overrides GMTOOL_CONFIG)")

	switch mode {
	case "list":
		return runList(fs, rest, verbose, configPath)
	case "header":
		return runHeader(fs, rest, verbose, configPath)
	case "entry":
		return runEntry(fs, rest, verbose, configPath)
	case "render":
		return runRender(fs, rest, verbose, configPath)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stderr, usage)
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "gmtool: unknown mode %q\n\n%s", mode, usage)
		return exitUsage
	}
}

// splitPositional separates args into the flag tokens fs already knows
// about and everything else, so that every mode's `<file> [--flags]`
// ordering works even though stdlib flag.Parse stops scanning for flags
// at the first non-flag argument. A flag's own value token (the next arg,
// unless written as --name=value) travels with it; bool flags never
// consume a following token.
func splitPositional(fs *flag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		flagArgs = append(flagArgs, a)
		name := strings.TrimLeft(a, "-")
		if strings.ContainsRune(name, '=') {
			continue // value embedded in this token
		}
		fl := fs.Lookup(name)
		isBool := false
		if fl != nil {
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok {
				isBool = b.IsBoolFlag()
			}
		}
		if !isBool && i+1 < len(args) {
			flagArgs = append(flagArgs, args[i+1])
			i++
		}
	}
	return flagArgs, positional
}

// exitCodeFor classifies a bubbled-up codec error into one of the CLI's
// exit codes via errors.Is against the sentinel taxonomy in codecerr.
// ResourceExhausted tracks IO's "the operation could not be completed"
// rather than format-level failure, and InvalidArgument indicates a usage
// mistake (a bad flag value, an empty rectangle) rather than a corrupt file.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, codecerr.ErrIndexOutOfRange):
		return exitIndexRange
	case errors.Is(err, codecerr.ErrInvalidArgument):
		return exitUsage
	case errors.Is(err, codecerr.ErrIO), errors.Is(err, codecerr.ErrResourceExhausted):
		return exitIO
	case errors.Is(err, codecerr.ErrUnexpectedEOF), errors.Is(err, codecerr.ErrMalformedStream), errors.Is(err, codecerr.ErrFormatMismatch):
		return exitFormatMismatch
	default:
		return exitIO
	}
}
