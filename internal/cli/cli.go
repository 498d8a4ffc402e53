// Package cli implements the redo multi-call command line. The program name
// a process is invoked as (argv[0], usually through a symlink) selects the
// command: redo, redo-ifchange, redo-deps or redo-config.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/arthur-debert/redo/pkg/core"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/ui"
	"github.com/spf13/cobra"
)

// Program names
const (
	ProgRedo     = "redo"
	ProgIfChange = "redo-ifchange"
	ProgDeps     = "redo-deps"
	ProgConfig   = "redo-config"
)

// commandFactory builds the command for one program name
type commandFactory func(s *session) *cobra.Command

var programs = map[string]commandFactory{
	ProgRedo:     newRedoCmd,
	ProgIfChange: newIfChangeCmd,
	ProgDeps:     newDepsCmd,
	ProgConfig:   newConfigCmd,
}

// ProgramNames returns the names the binary answers to, sorted
func ProgramNames() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// App holds the process resources a command runs with
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ []string

	// WorkDir anchors relative targets, ledgers and config files; empty
	// means the process working directory
	WorkDir string
}

// NewApp returns an App bound to the current process
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ(),
	}
}

// Main runs the program named by args[0] and returns its exit status.
// SIGINT and SIGTERM cancel a running build.
func Main(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewApp().Run(ctx, args)
}

// Run dispatches on the basename of args[0] and returns the exit status
func (a *App) Run(ctx context.Context, args []string) int {
	prog := ProgRedo
	if len(args) > 0 {
		prog = filepath.Base(args[0])
	}

	env := core.FromEnviron(a.Environ)
	logging.SetupLogger(env.Verbosity, "")
	if env.Verbose {
		logger := logging.WithFields(map[string]interface{}{"program": prog})
		logger.Debug().Msgf("invoked as %s", prog)
		if env.HasParent() {
			logger.Debug().Str("parent", env.Parent).Msgf("parent target is %s", env.Parent)
		}
	}

	factory, ok := programs[prog]
	if !ok {
		fmt.Fprintf(a.Stderr, MsgUnrecognizedProgram, prog)
		return 2
	}

	s := &session{app: a, prog: prog, env: env}
	cmd := s.newRootCmd(factory)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		s.reportError(err)
	}
	return errors.ExitCode(err)
}

// NewCommand returns the command for a program name, for documentation
// and completion generation
func NewCommand(prog string, a *App) (*cobra.Command, error) {
	factory, ok := programs[prog]
	if !ok {
		return nil, errors.Newf(errors.ErrUsage, "unrecognized program name: %s", prog)
	}
	s := &session{app: a, prog: prog, env: core.FromEnviron(a.Environ)}
	return s.newRootCmd(factory), nil
}

// reportError prints a diagnostic for err on stderr
func (s *session) reportError(err error) {
	r, rerr := ui.NewRenderer(ui.FormatAuto, s.app.Stderr, s.prog)
	if rerr == nil {
		rerr = r.RenderError(err)
	}
	if rerr != nil {
		fmt.Fprintf(s.app.Stderr, "%s: %v\n", s.prog, err)
	}
}
