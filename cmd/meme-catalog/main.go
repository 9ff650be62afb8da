// Package main is the entry point for the meme-catalog generator.
// This is a thin wrapper around the cli package.
package main

import (
	"os"

	"github.com/jinjiao007/meme-catalog/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
