package cli

import (
	"os"

	"github.com/arthur-debert/redo/internal/version"
	"github.com/arthur-debert/redo/pkg/config"
	"github.com/arthur-debert/redo/pkg/core"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/filesystem"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/paths"
	"github.com/arthur-debert/redo/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// session is the state shared by the command of one invocation
type session struct {
	app  *App
	prog string
	env  core.Env
	cfg  *config.Config

	verbosity int
}

// newRootCmd wraps the program's command with the flags, logging and
// configuration every program shares
func (s *session) newRootCmd(factory commandFactory) *cobra.Command {
	cmd := factory(s)
	cmd.Version = version.Version
	cmd.SetVersionTemplate(version.String(s.prog))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.DisableAutoGenTag = true
	cmd.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}
	cmd.SetUsageTemplate(usageTemplate)

	cmd.SetIn(s.app.Stdin)
	cmd.SetOut(s.app.Stdout)
	cmd.SetErr(s.app.Stderr)

	cmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, "invalid arguments")
	})

	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		return s.setup(c)
	}
	return cmd
}

// setup applies the verbosity flag and loads the configuration
func (s *session) setup(cmd *cobra.Command) error {
	verbosity := s.env.Verbosity
	if s.verbosity > verbosity {
		verbosity = s.verbosity
	}
	if s.verbosity >= 2 {
		s.env.Verbose = true
	}

	cfg, err := config.Load(config.LoadOptions{WorkDir: s.app.WorkDir})
	if err != nil {
		logging.SetupLogger(verbosity, "")
		return err
	}
	s.cfg = cfg

	logFile := ""
	if cfg.Log.File {
		logFile = paths.LogFilePath()
	}
	logging.SetupLogger(verbosity, logFile)

	log.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.String()).
		Msg("Command started")
	return nil
}

func newRedoCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     ProgRedo + " <target>...",
		Short:   MsgRedoShort,
		Long:    MsgRedoLong,
		Example: MsgRedoExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrUsage, "missing target")
			}

			for _, target := range args {
				_, err := core.Build(cmd.Context(), core.BuildOptions{
					Target:  target,
					Env:     s.env,
					Config:  s.cfg,
					WorkDir: s.app.WorkDir,
					Stdin:   s.app.Stdin,
					Stdout:  s.app.Stdout,
					Stderr:  s.app.Stderr,
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	// flags are only read before the first target
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newIfChangeCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     ProgIfChange + " <target>...",
		Short:   MsgIfChangeShort,
		Long:    MsgIfChangeLong,
		Example: MsgIfChangeExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := core.IfChange(core.IfChangeOptions{
				Children: args,
				Env:      s.env,
				Config:   s.cfg,
				WorkDir:  s.app.WorkDir,
			})
			return err
		},
	}

	// flags are only read before the first target
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newDepsCmd(s *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     ProgDeps + " [<target>...]",
		Short:   MsgDepsShort,
		Long:    MsgDepsLong,
		Example: MsgDepsExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			ledgers, err := core.Deps(core.DepsOptions{
				Parents: args,
				Env:     s.env,
				Config:  s.cfg,
				WorkDir: s.app.WorkDir,
			})
			if err != nil {
				return err
			}

			r, err := ui.NewRenderer(f, cmd.OutOrStdout(), s.prog)
			if err != nil {
				return err
			}
			return r.RenderLedgers(ledgers)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	return cmd
}

func newConfigCmd(s *session) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     ProgConfig,
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent(s.cfg)
			if err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write([]byte(content))
				return err
			}

			path := paths.InDir(s.app.WorkDir, config.ConfigFileNames[0])
			if err := writeNewFile(path, content); err != nil {
				return err
			}

			r, err := ui.NewRenderer(ui.FormatText, cmd.OutOrStdout(), s.prog)
			if err != nil {
				return err
			}
			return r.RenderMessage("Wrote " + path)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

// writeNewFile creates path with content, failing if it already exists
func writeNewFile(path, content string) error {
	fs := filesystem.NewOS()
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Newf(errors.ErrFileCreate, "%s already exists, not overwriting", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileCreate, "create %s", path)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "close %s", path)
	}
	return nil
}
