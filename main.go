package main

import (
	"os"

	"github.com/thenoetrevino/tally/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
