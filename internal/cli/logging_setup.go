package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/responsive-link/internal/config"
	"github.com/rshade/responsive-link/internal/logging"
)

// setupLogging configures logging from the environment and CLI flags and
// stores the logger and a fresh run id on the command context.
func setupLogging(cmd *cobra.Command, lookupEnv func(string) (string, bool)) {
	loggingCfg := config.GetLoggingConfig(lookupEnv)

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	runID := logging.NewRunID()
	base := logging.NewLogger(loggingCfg.ToLoggingConfig(), cmd.ErrOrStderr())
	base = base.With().Str("run_id", runID).Logger()
	logger = logging.ComponentLogger(base, "cli")

	ctx := logging.ContextWithRunID(cmd.Context(), runID)
	ctx = base.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
}
