// Command numcheck validates fixed-point numbers against N(m.k) formats from
// the command line or over HTTP.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/numcheck/pkg/config"
)

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	root := newRootCmd(cfg)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalidValues) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
