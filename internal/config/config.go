// Package config parses command line arguments for the eli tool into a
// configuration struct, keeping flag handling out of the front end.
package config

import (
	"flag"
	"fmt"
	"io"
)

// Config holds the front end options. The lexer pipeline is not wired up
// behind them yet; the tool parses and echoes the options only.
type Config struct {
	// REPL requests an interactive session.
	REPL bool

	// PrintIR requests a dump of the intermediate representation.
	PrintIR bool
}

// Parse parses process arguments (including the program name) into a
// Config. Usage and flag errors are written to output. The flag spellings
// repL and print-ir are fixed; scripts already pass them.
func Parse(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &Config{}
	fs.BoolVar(&cfg.REPL, "repL", false, "start an interactive session")
	fs.BoolVar(&cfg.PrintIR, "print-ir", false, "print the intermediate representation")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return cfg, nil
}

// String formats the configuration the way the tool echoes it.
func (c *Config) String() string {
	return fmt.Sprintf("Config{REPL: %t, PrintIR: %t}", c.REPL, c.PrintIR)
}
