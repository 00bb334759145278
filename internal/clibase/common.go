// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"thermocalc/internal/config"
)

// Common holds CLI fields not tied to a formula.
type Common struct {
	// Output
	Output     string // text|json
	Precision  int
	ConfigPath string

	// Mode
	Interactive bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Output, "output", config.DefaultOutput, "output: text | json [text]")
	fs.StringVar(&c.Output, "o", config.DefaultOutput, "alias of --output")
	fs.IntVar(&c.Precision, "precision", config.DefaultPrecision, "decimals in text output [2]")
	fs.StringVar(&c.ConfigPath, "config", "", "YAML config file")

	fs.BoolVar(&c.Interactive, "interactive", false, "start the interactive menu [false]")
	fs.BoolVar(&c.Interactive, "i", false, "alias of --interactive")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// ApplyConfig fills fields the user did not set on the command line from cfg.
// set holds flag names given explicitly (see cliutil.SetFlags).
func ApplyConfig(c *Common, cfg config.Config, set map[string]bool) {
	if !set["output"] && !set["o"] {
		c.Output = cfg.Output
	}
	if !set["precision"] {
		c.Precision = cfg.Precision
	}
	if !set["quiet"] && !set["q"] {
		c.Quiet = cfg.Quiet
	}
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.Precision < 0 || c.Precision > config.MaxPrecision {
		return errors.New("--precision must be between 0 and 10")
	}
	return nil
}
