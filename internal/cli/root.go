package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/responsive-link/internal/config"
	"github.com/rshade/responsive-link/internal/patcher"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Options holds the process-level inputs of the root command so tests can
// replace them.
type Options struct {
	// BaseDir returns the directory parts_of_const is resolved against.
	BaseDir func() (string, error)
	// LookupEnv is consulted for logging overrides only.
	LookupEnv func(string) (string, bool)
}

// NewRootCmd creates the root Cobra command for the responsive-link CLI.
// parts_of_const is resolved next to the running binary.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithOptions(ver, Options{
		BaseDir:   config.ExecutableDir,
		LookupEnv: os.LookupEnv,
	})
}

// NewRootCmdWithOptions creates the root command with explicit inputs for testability.
func NewRootCmdWithOptions(ver string, opts Options) *cobra.Command {
	if opts.BaseDir == nil {
		opts.BaseDir = config.ExecutableDir
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}

	cmd := &cobra.Command{
		Use:   "responsive-link",
		Short: "Link responsive-styles.css into the parts_of_const HTML fragments",
		Long: `Scans the parts_of_const directory next to this binary and inserts

  <link rel="stylesheet" href="../responsive-styles.css">

on the line after the Google Fonts stylesheet link of every .html file.
Files that already reference responsive-styles.css, or that do not carry the
exact Google Fonts link, are left untouched. Running it again is safe.`,
		Version:       ver,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd, opts.LookupEnv)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPatch(cmd, opts)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	return cmd
}

// runPatch resolves the target directory and patches every fragment in it.
func runPatch(cmd *cobra.Command, opts Options) error {
	ctx := cmd.Context()

	base, err := opts.BaseDir()
	if err != nil {
		logger.Debug().Ctx(ctx).Err(err).Msg("cannot resolve base directory")
		return err
	}
	dir := config.ResolveTargetDir(base)
	logger.Debug().Ctx(ctx).Str("dir", dir).Msg("target directory resolved")

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	reporter := newConsoleReporter(out, errOut, stylesFor(out, errOut, writerIsTerminal))
	if err = patcher.New(dir, reporter).Run(ctx); err != nil {
		logger.Debug().Ctx(ctx).Err(err).Str("dir", dir).Msg("patch run failed")
		return err
	}
	return nil
}

// stylesFor colors the status words of each stream only when that stream is
// a terminal. Progress lines go to out, failures to errOut.
func stylesFor(out, errOut io.Writer, tty func(io.Writer) bool) styles {
	st := plainStyles()
	color := colorStyles()
	if tty(out) {
		st.ok = color.ok
		st.skip = color.skip
	}
	if tty(errOut) {
		st.err = color.err
	}
	return st
}

// writerIsTerminal reports whether w is an *os.File attached to a terminal.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
