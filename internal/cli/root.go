package cli

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/hpicker/internal/config"
	"github.com/rshade/hpicker/internal/logging"
)

// Command annotations consulted by the root pre-run.
const (
	// annotationTUI marks commands that take over the terminal; their logs must
	// not be written to stderr.
	annotationTUI = "hpicker/tui"
	// annotationRawConfig marks commands that handle a missing or invalid config
	// file themselves.
	annotationRawConfig = "hpicker/raw-config"
)

// ErrNotTerminal is returned when an interactive command has no terminal to draw on.
var ErrNotTerminal = errors.New("an interactive terminal is required")

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// ProgramRunner runs a Bubble Tea model to completion and returns the final model.
type ProgramRunner func(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

// runProgram is the ProgramRunner used outside tests. The UI is drawn on stderr so
// stdout stays free for the result.
func runProgram(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	if !isTerminal(os.Stderr) {
		return nil, ErrNotTerminal
	}
	opts = append(opts, tea.WithContext(ctx))
	return tea.NewProgram(model, opts...).Run()
}

// rootState is shared between the root command and its subcommands.
type rootState struct {
	configPath string
	cfg        *config.Config
	logResult  *logging.Result
	run        ProgramRunner
}

// NewRootCmd creates the root Cobra command for the hpicker CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithRunner(ver, runProgram)
}

// NewRootCmdWithRunner creates the root command with an explicit program runner for
// testability. A nil runner uses the terminal.
func NewRootCmdWithRunner(ver string, run ProgramRunner) *cobra.Command {
	if run == nil {
		run = runProgram
	}
	state := &rootState{run: run}
	var configFlag string

	cmd := &cobra.Command{
		Use:           "hpicker",
		Short:         "Horizontal picker for the terminal",
		Long:          "hpicker: pick one item from a horizontally scrolling, centered strip",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			state.configPath = config.ResolvePath(configFlag)

			if cmd.Annotations[annotationRawConfig] != "" {
				state.cfg = config.New()
				state.cfg.SetPath(state.configPath)
			} else {
				cfg, err := config.Load(state.configPath)
				if err != nil {
					return err
				}
				state.cfg = cfg
			}

			result := setupLogging(cmd, state.cfg)
			state.logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, state.logResult)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file (default $HPICKER_CONFIG or ~/.hpicker/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newPickCmd(state), newDemoCmd(state), newConfigCmd(state))
	closeLogOnError(cmd, state)

	return cmd
}

const rootCmdExample = `  # Pick one of the given words
  hpicker pick red green blue

  # Pick a line from another command's output
  ls | hpicker pick

  # Pick from a YAML item list, starting at the third item
  hpicker pick --items-file items.yaml --select 2

  # Try the picker with 100 pages and live padding controls
  hpicker demo

  # Initialize configuration
  hpicker config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(state), newConfigShowCmd(state), newConfigValidateCmd(state),
	)
	return cmd
}
