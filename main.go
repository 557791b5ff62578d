package main

import (
	"os"

	"github.com/anduckhmt146/leetpick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
