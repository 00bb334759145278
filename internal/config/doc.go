// Package config loads thermocalc's optional YAML config file.
//
//	output: text      # text | json
//	precision: 2      # decimals in text output (0-10)
//	quiet: false
//
// Load(path) applies defaults for absent fields and validates enums.
// ApplyEnv layers THERMOCALC_OUTPUT and THERMOCALC_PRECISION on top;
// command-line flags override both.
package config
