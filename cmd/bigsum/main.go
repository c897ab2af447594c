package main

import (
	"os"

	"bigsum/cmd/bigsum/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
