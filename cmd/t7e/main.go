package main

import (
	"os"

	"github.com/dmitrymomot/t7e/cmd/t7e/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
