package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/hpicker/internal/config"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration file",
		Annotations: map[string]string{annotationRawConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := config.Load(state.configPath); err != nil {
				return err
			}
			cmd.Printf("Configuration is valid: %s\n", state.configPath)
			return nil
		},
	}
}
