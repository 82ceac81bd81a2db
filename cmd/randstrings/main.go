package main

import (
	"fmt"
	"os"

	"github.com/danmuck/devtools/internal/logging"
)

func main() {
	logging.ConfigureRuntime("randstrings")
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "randstrings: %v\n", err)
		os.Exit(1)
	}
}
