// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bowling/core/game"
	"bowling/internal/cli"
	"bowling/internal/cmdutil"
	"bowling/internal/output"
	"bowling/internal/rollfile"
	"bowling/internal/version"
	"bowling/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitRejected    = 1 // a roll broke the rules of the game
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	// flush reports the exit code for a final flush of outw.
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return ExitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitWrite
		}
		return code
	}

	fs := cli.NewFlagSet("bowling")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bowling version %s\n", version.Version)
		return flush(ExitOK)
	}

	rolls, player := opts.Rolls, ""
	if opts.RollsFile != "" {
		f, err := rollfile.Load(opts.RollsFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		rolls, player = f.Rolls, f.Player
	}

	log := cmdutil.NewLogger(stderr, opts.Verbose)
	defer func() { _ = log.Sync() }()
	if player != "" {
		log = log.Named(player)
	}

	g := game.New()
	n, rollErr := cmdutil.FeedRolls(parent, g, rolls, log)
	if rollErr != nil && parent.Err() != nil {
		_, _ = fmt.Fprintln(stderr, "interrupted")
		return ExitInterrupted
	}

	if err := output.Write(outw, opts.Output, output.Result{Game: g, Player: player, Err: rollErr}, opts.Header); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}

	code := ExitOK
	switch {
	case rollErr != nil:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", rollErr)
		if rest := len(rolls) - n - 1; rest > 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%d later roll(s) not recorded", rest)
		}
		code = ExitRejected
	case !g.Done() && !opts.Partial:
		cmdutil.Warnf(stderr, opts.Quiet, "game incomplete after %d roll(s); score is a running total", n)
	}
	return flush(code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
