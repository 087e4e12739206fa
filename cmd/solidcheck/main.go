// Package main is the entry point for the solidcheck CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/solidcheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
