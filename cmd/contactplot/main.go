package main

import (
	"os"

	"contactplot/cmd/contactplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
