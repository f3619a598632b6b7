package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/hpicker/internal/config"
	"github.com/rshade/hpicker/internal/picker"
	"github.com/rshade/hpicker/internal/tui"
)

// newPickCmd creates the pick command, which prints the chosen item to stdout.
func newPickCmd(state *rootState) *cobra.Command {
	var (
		flags      pickerFlags
		itemsFile  string
		printIndex bool
	)

	cmd := &cobra.Command{
		Use:   "pick [items...]",
		Short: "Pick one item from a horizontal strip",
		Long: `Shows the items as a horizontally scrolling strip and prints the chosen one.

Items come from the arguments, from --items-file, or one per line on stdin when
neither is given. The picker is drawn on stderr, so the result on stdout can be
captured or piped. Press enter to choose and esc to abort (exit code 130).`,
		Example: `  # Pick one of the given words
  hpicker pick red green blue

  # Pick a branch
  git branch --format='%(refname:short)' | hpicker pick

  # Print the chosen index instead of its title
  hpicker pick --print-index --items-file items.yaml`,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := collectItems(cmd, args, itemsFile)
			if err != nil {
				return err
			}
			if items.Count() == 0 {
				return ErrNoItems
			}

			mc, err := flags.modelConfig(cmd, state)
			if err != nil {
				return err
			}
			if mc.Selection >= items.Count() {
				return fmt.Errorf("--select %d with %d items: %w", mc.Selection, items.Count(), ErrInvalidSelection)
			}

			model, err := runPicker(cmd, state, tui.NewPickerModel(items, mc))
			if err != nil {
				return err
			}

			idx, ok := model.Chosen()
			if !ok {
				logger.Debug().Ctx(cmd.Context()).Msg("pick cancelled")
				return &CancelledError{Command: "pick"}
			}

			logger.Info().Ctx(cmd.Context()).Int("index", idx).Msg("item chosen")
			if printIndex {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), idx)
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), model.ChosenTitle())
			}
			return err
		},
	}

	flags.register(cmd, -1)
	cmd.Flags().StringVarP(&itemsFile, "items-file", "f", "", "YAML file listing the items")
	cmd.Flags().BoolVar(&printIndex, "print-index", false, "print the chosen index instead of its title")

	return cmd
}

// collectItems gathers items from the items file and the arguments, in that order.
// With neither, items are read from stdin unless stdin is a terminal.
func collectItems(cmd *cobra.Command, args []string, itemsFile string) (picker.Items, error) {
	var items picker.Items

	if itemsFile != "" {
		fromFile, err := config.LoadItems(itemsFile)
		if err != nil {
			return nil, err
		}
		items = append(items, fromFile...)
	}
	items = append(items, picker.Titles(args...)...)

	if itemsFile != "" || len(args) > 0 {
		return items, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return items, nil
	}
	return config.ReadItems(in)
}

// runPicker runs model full-screen and returns it once the user leaves.
func runPicker(cmd *cobra.Command, state *rootState, model *tui.PickerModel) (*tui.PickerModel, error) {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	}
	if !isTerminal(os.Stdin) {
		// Items were piped in; keys come from the controlling terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	final, err := state.run(cmd.Context(), model, opts...)
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	pm, ok := final.(*tui.PickerModel)
	if !ok {
		// This should not happen unless the TUI library changes
		return nil, fmt.Errorf("unexpected model type: %T, expected *tui.PickerModel", final)
	}
	return pm, nil
}
