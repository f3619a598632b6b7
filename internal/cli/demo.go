package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rshade/hpicker/internal/tui"
)

const defaultDemoCount = 100

// newDemoCmd creates the demo command: a strip of numbered pages with live layout
// controls and a status line reporting every selection event.
func newDemoCmd(state *rootState) *cobra.Command {
	var (
		flags  pickerFlags
		count  int
		locale string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explore the picker with a strip of numbered pages",
		Long: `Shows a strip of numbered pages. Besides the usual keys, + and - change the
padding scale, a toggles show-all layout and t toggles selection tracking while
scrolling. The status line shows the will-select and did-select events.`,
		Example: `  # 100 pages
  hpicker demo

  # 5000 pages with German number formatting
  hpicker demo --count 5000 --locale de`,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("--locale %q: %w", locale, err)
			}

			mc, err := flags.modelConfig(cmd, state)
			if err != nil {
				return err
			}
			mc.Demo = true
			if flags.title == "" {
				mc.Title = "hpicker demo"
			}

			src := tui.NewPageSource(count, tag)
			model, err := runPicker(cmd, state, tui.NewPickerModel(src, mc))
			if err != nil {
				return err
			}

			if idx, ok := model.Chosen(); ok {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Selected item: %d\n", idx+1)
			}
			return err
		},
	}

	flags.register(cmd, 0)
	cmd.Flags().IntVar(&count, "count", defaultDemoCount, "number of pages")
	cmd.Flags().StringVar(&locale, "locale", "en", "BCP 47 tag used to format page numbers")

	return cmd
}
