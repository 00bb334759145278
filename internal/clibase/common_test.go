package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"thermocalc/internal/config"
)

func TestApplyConfig_FlagsWin(t *testing.T) {
	c := Common{Output: "text", Precision: 5}
	cfg := config.Config{Output: "json", Precision: 3, Quiet: true}
	ApplyConfig(&c, cfg, map[string]bool{"precision": true})
	if c.Output != "json" || c.Precision != 5 || !c.Quiet {
		t.Fatalf("got %+v", c)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(&Common{Output: "json", Precision: 2}); err != nil {
		t.Fatalf("valid: %v", err)
	}
	if err := Validate(&Common{Output: "tsv", Precision: 2}); err == nil {
		t.Fatalf("bad output accepted")
	}
	if err := Validate(&Common{Output: "text", Precision: 11}); err == nil {
		t.Fatalf("bad precision accepted")
	}
}

func TestUsageCommon(t *testing.T) {
	fs := flag.NewFlagSet("thermocalc", flag.ContinueOnError)
	var c Common
	Register(fs, &c)
	UsageCommon(fs, "thermocalc", func(out io.Writer) { _, _ = io.WriteString(out, "EXTRA\n") })
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.Usage()
	s := buf.String()
	for _, want := range []string{"thermocalc – thermochemistry calculator", "EXTRA", "--output", "--interactive"} {
		if !strings.Contains(s, want) {
			t.Fatalf("usage missing %q:\n%s", want, s)
		}
	}
}
