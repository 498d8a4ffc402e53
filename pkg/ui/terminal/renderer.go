// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/redo/pkg/core"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer draws ledgers as trees and styles diagnostics
type Renderer struct {
	output  io.Writer
	program string
}

// New creates a new terminal renderer
func New(output io.Writer, program string) *Renderer {
	return &Renderer{output: output, program: program}
}

// RenderLedgers renders each parent as a tree node with its dependencies
// as children
func (r *Renderer) RenderLedgers(ledgers []core.Ledger) error {
	root := pterm.TreeNode{}
	for _, ledger := range ledgers {
		node := pterm.TreeNode{
			Text: fmt.Sprintf("%s %s", styles.Render("Target", ledger.Parent), styles.Render("Ledger", ledger.Path)),
		}
		if len(ledger.Entries) == 0 {
			node.Children = append(node.Children, pterm.TreeNode{Text: styles.Render("Muted", "no dependencies recorded")})
		}
		for _, entry := range ledger.Entries {
			node.Children = append(node.Children, pterm.TreeNode{Text: styles.Render("Entry", entry)})
		}
		root.Children = append(root.Children, node)
	}

	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.output, out)
	return err
}

// RenderError renders an error as a styled "<program>: <message>" line,
// followed by its code in muted text
func (r *Renderer) RenderError(err error) error {
	line := fmt.Sprintf("%s %s", styles.Render("Program", r.program+":"), styles.Render("Error", err.Error()))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line += " " + styles.Render("ErrorCode", "["+string(code)+"]")
	}
	_, werr := fmt.Fprintln(r.output, line)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
