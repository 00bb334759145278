package calccli

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"thermocalc/internal/appcore"
	"thermocalc/internal/clibase"
	"thermocalc/internal/cliutil"
	"thermocalc/pkg/thermochem"
)

type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// Options is the parsed command line.
type Options struct {
	clibase.Common

	// Formula is empty in interactive mode.
	Formula thermochem.Kind

	// Values holds every scalar flag given, keyed by appcore.Field.Key.
	Values map[string]float64

	// Hess's law input
	Components   []string
	ReactionFile string

	// Set lists flag names given explicitly.
	Set map[string]bool

	// Ignored lists scalar flags the selected formula does not use.
	Ignored []string
}

// NewFlagSet returns the thermocalc flag set with its usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] <formula>\n", name)
		_, _ = fmt.Fprintf(out, "  %s                      (interactive menu)\n", name)

		_, _ = fmt.Fprintln(out, "\nFormulas (name or menu number):")
		for _, in := range thermochem.Kinds() {
			var flags []string
			for _, f := range appcore.Fields(in.Kind) {
				flags = append(flags, "--"+f.Flag)
			}
			if in.Kind == thermochem.KindHess {
				flags = append(flags, "--component... | --reaction")
			}
			_, _ = fmt.Fprintf(out, "  %d  %-9s %s\n", in.Menu, in.Kind, in.Title)
			_, _ = fmt.Fprintf(out, "               needs: %s\n", strings.Join(flags, " "))
		}

		_, _ = fmt.Fprintln(out, "\nInputs:")
		_, _ = fmt.Fprintln(out, "      --pressure float        External pressure (atm)")
		_, _ = fmt.Fprintln(out, "      --v-initial float       Initial volume (L)")
		_, _ = fmt.Fprintln(out, "      --v-final float         Final volume (L)")
		_, _ = fmt.Fprintln(out, "      --moles float           Moles of gas (mol)")
		_, _ = fmt.Fprintln(out, "      --temp float            Temperature (K)")
		_, _ = fmt.Fprintln(out, "      --heat-released float   Heat released (J)")
		_, _ = fmt.Fprintln(out, "      --internal-energy float Change in internal energy (J)")
		_, _ = fmt.Fprintln(out, "      --initial-heat float    Initial heat of combustion (kJ)")
		_, _ = fmt.Fprintln(out, "      --absorbed-heat float   Absorbed heat (kJ)")
		_, _ = fmt.Fprintln(out, "      --reaction-heat float   Heat of reaction (kJ); overrides the reaction file")
		_, _ = fmt.Fprintln(out, "      --component string      NAME:COEFF:ENTHALPY (kJ/mol or 'unknown'). Repeatable.")
		_, _ = fmt.Fprintln(out, "      --reaction string       YAML reaction file")
	})
	return fs
}

// ParseArgs parses argv into Options. flag.ErrHelp is returned for -h.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	vals := map[string]*float64{}
	for _, f := range appcore.AllFields() {
		p := new(float64)
		vals[f.Key] = p
		fs.Float64Var(p, f.Flag, 0, f.Prompt)
	}
	fs.Var(&sliceValue{dst: &o.Components}, "component", "NAME:COEFF:ENTHALPY; repeatable")
	fs.StringVar(&o.ReactionFile, "reaction", "", "YAML reaction file")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	o.Set = cliutil.SetFlags(fs)

	o.Values = map[string]float64{}
	for _, f := range appcore.AllFields() {
		if o.Set[f.Flag] {
			o.Values[f.Key] = *vals[f.Key]
		}
	}

	if o.Version {
		return o, nil
	}

	switch len(posArgs) {
	case 0:
		if !o.Interactive {
			return o, fmt.Errorf("a formula is required (or pass --interactive)")
		}
		return o, nil
	case 1:
		if o.Interactive {
			return o, fmt.Errorf("--interactive cannot be combined with a formula")
		}
	default:
		return o, fmt.Errorf("expected one formula, got %d arguments: %s", len(posArgs), strings.Join(posArgs, " "))
	}

	k, err := thermochem.ParseKind(posArgs[0])
	if err != nil {
		return o, err
	}
	o.Formula = k
	return o, o.finalize()
}

// finalize checks the selected formula has everything it needs and records
// flags it will ignore.
func (o *Options) finalize() error {
	need := map[string]bool{}
	var missing []string
	for _, f := range appcore.Fields(o.Formula) {
		need[f.Flag] = true
		if o.Set[f.Flag] {
			continue
		}
		// A reaction file carries its own reaction heat.
		if f.Key == appcore.KeyReactionHeat && o.ReactionFile != "" {
			continue
		}
		missing = append(missing, "--"+f.Flag)
	}

	if o.Formula == thermochem.KindHess {
		if len(o.Components) == 0 && o.ReactionFile == "" {
			missing = append(missing, "--component or --reaction")
		}
		if len(o.Components) > 0 && o.ReactionFile != "" {
			return fmt.Errorf("--component cannot be combined with --reaction")
		}
	} else {
		if len(o.Components) > 0 {
			o.Ignored = append(o.Ignored, "--component")
		}
		if o.ReactionFile != "" {
			o.Ignored = append(o.Ignored, "--reaction")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing %s", o.Formula, strings.Join(missing, ", "))
	}

	for _, f := range appcore.AllFields() {
		if o.Set[f.Flag] && !need[f.Flag] {
			o.Ignored = append(o.Ignored, "--"+f.Flag)
		}
	}
	sort.Strings(o.Ignored)
	return nil
}
