package main

import (
	"os"

	"github.com/arthur-debert/redo/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args))
}
