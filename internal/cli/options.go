// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"bowling/internal/output"
	"bowling/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Roll input
	RollsFile string
	Rolls     []int

	// Output
	Output string
	Header bool // true unless --no-header

	// Behaviour
	Partial bool
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: ten-pin bowling scorer

Version: %s

Usage of %s:
  %s [flags] PINS...

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are the pins knocked down by each roll.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.RollsFile, "rolls-file", "", "YAML game file with a rolls list ('-' for stdin) [*]")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | pretty [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.BoolVar(&opt.Partial, "partial", false, "accept a game that is not finished [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log every roll to stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	for _, a := range fs.Args() {
		n, err := strconv.Atoi(a)
		if err != nil {
			return opt, fmt.Errorf("invalid pin count %q", a)
		}
		opt.Rolls = append(opt.Rolls, n)
	}

	// Validation
	switch {
	case opt.RollsFile != "" && len(opt.Rolls) > 0:
		return opt, errors.New("--rolls-file conflicts with positional PINS")
	case opt.RollsFile == "" && len(opt.Rolls) == 0:
		return opt, errors.New("provide PINS or --rolls-file")
	}
	if !output.Valid(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
