// Package main is the eli command line front end.
//
// The front end is deliberately thin: it parses flags into a configuration
// struct and echoes it. Invoking the lexer (and a future parser pipeline)
// behind that boundary comes later.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/elilang/eli/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse(os.Args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "eli: %v\n", err)
		return 2
	}

	fmt.Println(cfg)
	return 0
}
