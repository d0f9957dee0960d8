package main

import (
	"fmt"
	"os"

	"github.com/feral-file/founder-scout/internal/config"
)

func main() {
	config.ChdirRepoRoot()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
