package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/redo/internal/cli"
	"github.com/arthur-debert/redo/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}
	dir := os.Args[1]

	for _, name := range cli.ProgramNames() {
		cmd, err := cli.NewCommand(name, cli.NewApp())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building %s: %v\n", name, err)
			os.Exit(1)
		}

		header := &doc.GenManHeader{
			Section: "1",
			Source:  "redo " + version.Version,
			Manual:  "redo manual",
		}
		if err := doc.GenManTree(cmd, header, dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man page for %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}
