package main

import (
	"os"

	"oroid/cmd/oroid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
