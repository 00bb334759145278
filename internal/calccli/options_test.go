package calccli

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"thermocalc/internal/appcore"
	"thermocalc/pkg/thermochem"
)

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet("thermocalc")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_PVWork(t *testing.T) {
	o, err := parse("pv-work", "--pressure", "2", "--v-initial", "1", "--v-final", "3")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Formula != thermochem.KindPVWork {
		t.Fatalf("formula=%q", o.Formula)
	}
	want := map[string]float64{appcore.KeyPressure: 2, appcore.KeyVInitial: 1, appcore.KeyVFinal: 3}
	if diff := cmp.Diff(want, o.Values); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
	if len(o.Ignored) != 0 {
		t.Fatalf("ignored=%v", o.Ignored)
	}
}

func TestParseArgs_MenuNumberAndNegatives(t *testing.T) {
	o, err := parse("--initial-heat", "-890", "5", "--absorbed-heat=-445")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Formula != thermochem.KindPercent {
		t.Fatalf("formula=%q", o.Formula)
	}
	if o.Values[appcore.KeyInitialHeat] != -890 || o.Values[appcore.KeyAbsorbedHeat] != -445 {
		t.Fatalf("values=%v", o.Values)
	}
}

func TestParseArgs_Hess(t *testing.T) {
	o, err := parse("hess", "--reaction-heat", "-50", "--component", "A:1:-100", "--component", "B:1:unknown")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if diff := cmp.Diff([]string{"A:1:-100", "B:1:unknown"}, o.Components); diff != "" {
		t.Fatalf("components (-want +got):\n%s", diff)
	}

	// Reaction file supplies reaction heat.
	if _, err := parse("hess", "--reaction", "r.yaml"); err != nil {
		t.Fatalf("reaction file without --reaction-heat: %v", err)
	}
}

func TestParseArgs_IgnoredFlags(t *testing.T) {
	o, err := parse("enthalpy", "--heat-released", "1000", "--internal-energy", "500", "--moles", "2", "--component", "A:1:2")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if diff := cmp.Diff([]string{"--component", "--moles"}, o.Ignored); diff != "" {
		t.Fatalf("ignored (-want +got):\n%s", diff)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := map[string]struct {
		argv []string
		want string
	}{
		"no formula":       {nil, "a formula is required"},
		"unknown formula":  {[]string{"entropy"}, "unknown formula"},
		"two formulas":     {[]string{"hess", "percent"}, "expected one formula"},
		"missing inputs":   {[]string{"rev-work", "--moles", "1"}, "missing --temp, --v-initial, --v-final"},
		"hess no reaction": {[]string{"hess", "--reaction-heat", "1"}, "--component or --reaction"},
		"hess both inputs": {[]string{"hess", "--reaction", "r.yaml", "--component", "A:1:?"}, "cannot be combined"},
		"interactive+kind": {[]string{"-i", "hess"}, "--interactive cannot be combined"},
		"bad float":        {[]string{"percent", "--initial-heat", "lots"}, "invalid value"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parse(tc.argv...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseArgs_HelpAndModes(t *testing.T) {
	if _, err := parse("-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
	o, err := parse("--interactive")
	if err != nil || !o.Interactive || o.Formula != "" {
		t.Fatalf("interactive: %+v %v", o, err)
	}
	o, err = parse("-v")
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}
