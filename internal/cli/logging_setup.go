package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/hpicker/internal/config"
	"github.com/rshade/hpicker/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
//
// Commands that take over the terminal never log to stderr: without a configured
// file they log to the temp dir under --debug and discard otherwise.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	loggingCfg := cfg.Logging.ToLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	if cmd.Annotations[annotationTUI] != "" && loggingCfg.Output == logging.OutputStderr {
		if debug {
			loggingCfg.Output = logging.OutputFile
			loggingCfg.File = logging.DefaultLogFile()
		} else {
			loggingCfg.Output = logging.OutputDiscard
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().
		Str("trace_id", traceID).
		Str("command", cmd.Name()).
		Str("config", cfg.Path()).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

// closeLogOnError wraps the RunE of cmd and its subcommands so the log file is
// closed when a command fails. Cobra skips post-run hooks after a RunE error,
// which includes a cancelled pick.
func closeLogOnError(cmd *cobra.Command, state *rootState) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if err != nil {
				if cerr := cleanupLogging(c, state.logResult); cerr != nil {
					logger.Debug().Err(cerr).Msg("closing log file")
				}
			}
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		closeLogOnError(sub, state)
	}
}
