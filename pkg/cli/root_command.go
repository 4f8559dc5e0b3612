package cli

import (
	"github.com/spf13/cobra"

	"github.com/scaffoldnext/preflight/pkg/constants"
)

// NewRootCommand creates the preflight root command with all subcommands
// attached. Errors are printed by the caller, so cobra's own reporting is
// silenced.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Pre-generation guard for pipeline project scaffolding",
		Long: `preflight validates pipeline configuration files before a templated
project is generated. Every JSON file in the configuration directory must
match one of the pipeline schemas (MLPipeline or AgenticPipeline), or
generation is aborted.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewSchemaCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
