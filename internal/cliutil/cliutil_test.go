package cliutil

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var f float64
	fs.BoolVar(&b, "quiet", false, "")
	fs.Float64Var(&f, "v-final", 0, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	cases := []struct {
		argv      []string
		wantFlags []string
		wantPos   []string
	}{
		{
			argv:      []string{"--quiet", "pv-work", "--", "extra"},
			wantFlags: []string{"--quiet"},
			wantPos:   []string{"pv-work", "extra"},
		},
		{
			argv:      []string{"--v-final", "-3", "2"},
			wantFlags: []string{"--v-final", "-3"},
			wantPos:   []string{"2"},
		},
		{
			argv:      []string{"--v-final=-3", "hess", "--quiet"},
			wantFlags: []string{"--v-final=-3", "--quiet"},
			wantPos:   []string{"hess"},
		},
	}
	for _, tc := range cases {
		flags, pos := SplitFlagsAndPositionals(newFS(), tc.argv)
		if diff := cmp.Diff(tc.wantFlags, flags); diff != "" {
			t.Errorf("%v flags (-want +got):\n%s", tc.argv, diff)
		}
		if diff := cmp.Diff(tc.wantPos, pos); diff != "" {
			t.Errorf("%v positionals (-want +got):\n%s", tc.argv, diff)
		}
	}
}

func TestSetFlags(t *testing.T) {
	fs := newFS()
	if err := fs.Parse([]string{"--v-final", "2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	set := SetFlags(fs)
	if !set["v-final"] || set["quiet"] {
		t.Fatalf("got %v", set)
	}
}
