package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/stigoleg/time-picker/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoSelection) {
			fmt.Fprintln(os.Stderr, config.FormatError(err))
		}
		os.Exit(1)
	}
}
