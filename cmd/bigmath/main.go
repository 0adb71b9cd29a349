package main

import (
	"os"

	"github.com/precisionkit/bigmath/cmd/bigmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
