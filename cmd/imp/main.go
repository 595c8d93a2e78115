package main

import (
	"os"

	"github.com/imptools/imp/cmd/imp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
