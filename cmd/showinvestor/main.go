package main

import (
	"os"

	"github.com/showinvestor-dev/showinvestor/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
