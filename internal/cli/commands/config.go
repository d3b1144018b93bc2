package commands

import (
	"fmt"

	"github.com/leapstack-labs/arffkit/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, arffkit.yaml,
ARFFKIT_* environment variables and command-line flags. The output is valid
arffkit.yaml content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())
			w := cmd.OutOrStdout()

			if path := config.GetConfigFileUsed(); path != "" {
				_, _ = fmt.Fprintf(w, "# config file: %s\n", path)
			}

			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}

	return cmd
}
