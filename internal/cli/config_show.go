package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigShowCmd prints the effective configuration: file values over defaults
// with environment overrides applied.
func newConfigShowCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(state.cfg)
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "# %s\n", state.cfg.Path()); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
