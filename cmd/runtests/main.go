package main

import (
	"fmt"
	"os"

	"github.com/danmuck/devtools/internal/logging"
	"github.com/danmuck/devtools/internal/tools"
)

func main() {
	logging.ConfigureRuntime("runtests")
	if err := newRootCmd(tools.ExecRunner{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "runtests: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
