package calcapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"thermocalc/internal/appcore"
	"thermocalc/internal/calccli"
	"thermocalc/internal/clibase"
	"thermocalc/internal/cmdutil"
	"thermocalc/internal/config"
	"thermocalc/internal/output"
	"thermocalc/internal/reactionfile"
	"thermocalc/internal/shell"
	"thermocalc/internal/version"
	"thermocalc/pkg/thermochem"
)

// Getenv is swapped in tests.
var Getenv = os.Getenv

// RunContext runs thermocalc. With no arguments it starts the interactive menu
// on stdin. Exit codes: 0 ok, 2 usage or input error, 3 output error.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	if len(argv) == 0 {
		argv = []string{"--interactive"}
	}

	fs := calccli.NewFlagSet("thermocalc")
	fs.SetOutput(io.Discard)

	opts, err := calccli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return cmdutil.Flush(outw, stderr, 0)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.Usage()
		return cmdutil.Flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "thermocalc version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr, 0)
	}

	// Config file and environment fill whatever the flags left unset.
	cfg := config.Default()
	if opts.ConfigPath != "" {
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return 2
		}
	}
	// Env warnings wait until quiet is settled by flags and config.
	var envWarnings []string
	cfg.ApplyEnv(Getenv, func(format string, a ...any) { envWarnings = append(envWarnings, fmt.Sprintf(format, a...)) })
	clibase.ApplyConfig(&opts.Common, cfg, opts.Set)
	for _, w := range envWarnings {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}
	if err := clibase.Validate(&opts.Common); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}

	if opts.Interactive {
		if opts.Output != "text" {
			cmdutil.Warnf(stderr, opts.Quiet, "--output %s is not used in interactive mode; results print as text", opts.Output)
		}
		// Prompts must reach the terminal before each read.
		sh := &shell.Shell{In: stdin, Out: flushWriter{outw}, Precision: opts.Precision}
		if err := sh.Run(parent); err != nil && parent.Err() == nil {
			cmdutil.Errorf(stderr, "%v", err)
			return cmdutil.Flush(outw, stderr, 2)
		}
		return cmdutil.Flush(outw, stderr, 0)
	}

	for _, f := range opts.Ignored {
		cmdutil.Warnf(stderr, opts.Quiet, "%s is not used by formula %s", f, opts.Formula)
	}

	req := appcore.Request{Kind: opts.Formula, Values: opts.Values}
	if opts.Formula == thermochem.KindHess {
		r, heat, err := loadReaction(opts)
		if err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return 2
		}
		req.Reaction = r
		if _, ok := req.Values[appcore.KeyReactionHeat]; !ok {
			req.Values[appcore.KeyReactionHeat] = heat
		}
	}

	res, err := appcore.Evaluate(req)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}
	if err := output.Write(outw, opts.Output, res, opts.Precision); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 3
	}
	return cmdutil.Flush(outw, stderr, 0)
}

// loadReaction returns the reaction and, for a file, its reaction heat.
func loadReaction(opts calccli.Options) (thermochem.Reaction, float64, error) {
	if opts.ReactionFile != "" {
		return reactionfile.Load(opts.ReactionFile)
	}
	r, err := reactionfile.FromInline(opts.Components)
	return r, 0, err
}

// flushWriter flushes after every write so interactive prompts are visible.
type flushWriter struct{ w *bufio.Writer }

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
