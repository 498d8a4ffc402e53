// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/redo/pkg/core"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output  io.Writer
	program string
}

// New creates a new text renderer
func New(output io.Writer, program string) *Renderer {
	return &Renderer{output: output, program: program}
}

// RenderLedgers prints one dependency per line. With more than one parent
// each line is prefixed by its parent.
func (r *Renderer) RenderLedgers(ledgers []core.Ledger) error {
	for _, ledger := range ledgers {
		for _, entry := range ledger.Entries {
			var err error
			if len(ledgers) > 1 {
				_, err = fmt.Fprintf(r.output, "%s: %s\n", ledger.Parent, entry)
			} else {
				_, err = fmt.Fprintln(r.output, entry)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderError renders an error as "<program>: <message>"
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s: %s\n", r.program, err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
