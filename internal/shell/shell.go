// internal/shell/shell.go
// Numbered-menu command loop around the formula library.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"thermocalc/internal/appcore"
	"thermocalc/internal/output"
	"thermocalc/internal/reactionfile"
	"thermocalc/pkg/thermochem"
)

// errEOF ends the loop when input runs out mid-prompt.
var errEOF = errors.New("end of input")

// Shell reads commands from In and writes prompts and results to Out.
type Shell struct {
	In        io.Reader
	Out       io.Writer
	Precision int

	lines <-chan readResult
}

type readResult struct {
	text string
	err  error
}

// readLines scans in into a channel until EOF, a read error, or done closes.
// A goroutine blocked in Scan when done closes exits on the next line.
func readLines(in io.Reader, done <-chan struct{}) <-chan readResult {
	ch := make(chan readResult)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- readResult{text: sc.Text()}:
			case <-done:
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = errEOF
		}
		select {
		case ch <- readResult{err: err}:
		case <-done:
		}
	}()
	return ch
}

// Run loops until the exit option or end of input, returning nil, or until
// ctx is cancelled, returning ctx.Err(). Formula errors are printed and the
// menu is shown again.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = readLines(s.In, done)
	exitChoice := strconv.Itoa(len(thermochem.Kinds()) + 1)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu(exitChoice)
		choice, err := s.line(ctx, fmt.Sprintf("Select an option (1-%s): ", exitChoice))
		if errors.Is(err, errEOF) {
			s.printf("\nExiting...\n")
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case exitChoice, "exit", "quit", "q":
			s.printf("Exiting...\n")
			return nil
		}
		k, err := thermochem.ParseKind(choice)
		if err != nil {
			s.printf("Invalid option. Please choose again.\n")
			continue
		}

		err = s.run(ctx, k)
		switch {
		case errors.Is(err, errEOF):
			s.printf("\nExiting...\n")
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.printf("error: %v\n", err)
		}
	}
}

func (s *Shell) menu(exitChoice string) {
	s.printf("\nChemistry Problem Calculator\n")
	for _, in := range thermochem.Kinds() {
		s.printf("%d. %s\n", in.Menu, in.Title)
	}
	s.printf("%s. Exit\n", exitChoice)
}

// run collects the inputs of k, evaluates it and prints the result line.
func (s *Shell) run(ctx context.Context, k thermochem.Kind) error {
	req := appcore.Request{Kind: k, Values: map[string]float64{}}
	for _, f := range appcore.Fields(k) {
		v, err := s.float(ctx, f.Prompt)
		if err != nil {
			return err
		}
		req.Values[f.Key] = v
	}
	if k == thermochem.KindHess {
		r, err := s.reaction(ctx)
		if err != nil {
			return err
		}
		req.Reaction = r
	}

	res, err := appcore.Evaluate(req)
	if err != nil {
		return err
	}
	return output.WriteText(s.Out, res, s.Precision)
}

func (s *Shell) reaction(ctx context.Context) (thermochem.Reaction, error) {
	n, err := s.count(ctx, "Enter number of components: ")
	if err != nil {
		return nil, err
	}
	r := make(thermochem.Reaction, n)
	for i := 0; i < n; i++ {
		name, err := s.line(ctx, "Component name: ")
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = fmt.Sprintf("C%d", i+1)
		}
		coeff, err := s.float(ctx, fmt.Sprintf("Coefficient for %s: ", name))
		if err != nil {
			return nil, err
		}
		var en thermochem.Enthalpy
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			txt, err := s.line(ctx, fmt.Sprintf("Heat of formation for %s (kJ/mol or 'unknown'): ", name))
			if err != nil {
				return nil, err
			}
			if en, err = reactionfile.ParseEnthalpy(txt); err == nil {
				break
			}
			s.printf("%v; try again\n", err)
		}
		if _, dup := r[name]; dup {
			s.printf("component %s entered twice; keeping the last entry\n", name)
		}
		r[name] = thermochem.Term{Coefficient: coeff, Enthalpy: en}
	}
	return r, nil
}

// float prompts until the reply parses as a number.
func (s *Shell) float(ctx context.Context, prompt string) (float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		txt, err := s.line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(txt, 64)
		if err == nil {
			return v, nil
		}
		s.printf("not a number: %q; try again\n", txt)
	}
}

// count prompts until the reply is a positive integer.
func (s *Shell) count(ctx context.Context, prompt string) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		txt, err := s.line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(txt)
		if err == nil && n > 0 {
			return n, nil
		}
		s.printf("need a whole number ≥ 1, got %q; try again\n", txt)
	}
}

// line prints prompt and waits for the next input line or ctx cancellation.
func (s *Shell) line(ctx context.Context, prompt string) (string, error) {
	s.printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-s.lines:
		if !ok {
			return "", errEOF
		}
		if r.err != nil {
			return "", r.err
		}
		return strings.TrimSpace(r.text), nil
	}
}

func (s *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.Out, format, a...)
}
