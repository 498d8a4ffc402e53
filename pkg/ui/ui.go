// Package ui renders redo's user-facing output: diagnostics on stderr and
// the ledger listings of redo-deps, in tree (styled terminal), text, JSON
// or YAML form.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/redo/pkg/core"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/ui/json"
	"github.com/arthur-debert/redo/pkg/ui/terminal"
	"github.com/arthur-debert/redo/pkg/ui/text"
	"github.com/arthur-debert/redo/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderLedgers renders the recorded dependencies of one or more parents
	RenderLedgers(ledgers []core.Ledger) error

	// RenderError renders an error as a diagnostic attributed to the program
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format. program
// prefixes diagnostics. FormatAuto is resolved against output when it is a
// file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer, program string) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, program)
		}
		return NewRenderer(FormatText, output, program)
	case FormatTree:
		return terminal.New(output, program), nil
	case FormatText:
		return text.New(output, program), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown format: %v", format)
	}
}
