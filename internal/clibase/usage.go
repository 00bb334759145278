// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"thermocalc/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer)) {
	fs.Usage = func() {
		out := fs.Output()

		fmt.Fprintf(out, "%s – thermochemistry calculator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string         Output format: text | json [text]")
		fmt.Fprintln(out, "      --precision int         Decimals in text output (0-10) [2]")
		fmt.Fprintln(out, "      --config string         YAML config file (output, precision, quiet)")

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintln(out, "  -i, --interactive           Start the interactive menu")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress warnings")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help")
	}
}
