package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/hpicker/internal/config"
	"github.com/rshade/hpicker/internal/logging"
	"github.com/rshade/hpicker/internal/tui"
)

// pickerFlags are the strip options shared by pick and demo. Flags that were set
// explicitly override the config file.
type pickerFlags struct {
	selection    int
	title        string
	paddingScale float64
	showAll      bool
	trackScroll  bool
	cellHeight   int
}

func (f *pickerFlags) register(cmd *cobra.Command, defaultSelection int) {
	cmd.Flags().IntVar(&f.selection, "select", defaultSelection, "index selected at startup (-1 for none)")
	cmd.Flags().StringVar(&f.title, "title", "", "title shown above the strip")
	cmd.Flags().Float64Var(&f.paddingScale, "padding-scale", 0,
		"how much of each neighbor shows around the centered cell (overrides config)")
	cmd.Flags().BoolVar(&f.showAll, "show-all", false, "lay every item out at once instead of paging")
	cmd.Flags().BoolVar(&f.trackScroll, "track-scroll", false, "update the selection continuously while scrolling")
	cmd.Flags().IntVar(&f.cellHeight, "cell-height", 0, "rows per cell (overrides config)")
}

// modelConfig merges config file values and explicit flags into a model config.
func (f *pickerFlags) modelConfig(cmd *cobra.Command, state *rootState) (tui.ModelConfig, error) {
	cfg := state.cfg
	mc := tui.DefaultModelConfig()
	mc.Options = cfg.ToOptions()
	mc.Attributes = cfg.ToTitleAttributes()
	mc.CellHeight = cfg.Picker.CellHeight
	mc.Selection = f.selection
	if state.logResult != nil {
		mc.Logger = logging.ComponentLogger(state.logResult.Logger, "picker")
	}

	flags := cmd.Flags()
	if flags.Changed("padding-scale") {
		if err := config.ValidatePaddingScale(f.paddingScale); err != nil {
			return mc, fmt.Errorf("--padding-scale: %w", err)
		}
		mc.Options.PaddingScale = f.paddingScale
	}
	if flags.Changed("show-all") {
		mc.Options.ShowAllItems = f.showAll
	}
	if flags.Changed("track-scroll") {
		mc.Options.AllowSelectionWhileScrolling = f.trackScroll
	}
	if flags.Changed("cell-height") {
		if f.cellHeight <= 0 {
			return mc, fmt.Errorf("--cell-height %d: %w", f.cellHeight, ErrInvalidCellHeight)
		}
		mc.CellHeight = f.cellHeight
	}
	if f.title != "" {
		mc.Title = f.title
	}
	return mc, nil
}
