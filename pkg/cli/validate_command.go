package cli

import (
	"github.com/spf13/cobra"

	"github.com/scaffoldnext/preflight/pkg/constants"
	"github.com/scaffoldnext/preflight/pkg/logger"
	"github.com/scaffoldnext/preflight/pkg/validator"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate pipeline configuration files before project generation",
		Long: `Validate every JSON file in the configuration directory against the
pipeline configuration schemas (MLPipeline, then AgenticPipeline).

A file is accepted if it fully matches either schema variant. The run stops
at the first file that fails to parse or to validate; a directory with no
configuration files passes vacuously.

Examples:
  ` + constants.CLIName + ` validate                      # Validate ./` + constants.DefaultConfigDir + `
  ` + constants.CLIName + ` validate --dir configs        # Validate a custom directory
  ` + constants.CLIName + ` validate --json               # Machine-readable report
  ` + constants.CLIName + ` validate --parallel           # Validate files concurrently
  ` + constants.CLIName + ` validate --watch              # Revalidate on file changes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			parallel, _ := cmd.Flags().GetBool("parallel")
			watch, _ := cmd.Flags().GetBool("watch")

			validateLog.Printf("Running validate command: dir=%s, json=%v, parallel=%v, watch=%v",
				dir, jsonOutput, parallel, watch)

			opts := validator.Options{Dir: dir, Parallel: parallel}

			if watch {
				return watchAndValidate(cmd.Context(), opts, jsonOutput)
			}
			return RunValidation(cmd.Context(), opts, jsonOutput)
		},
	}

	cmd.Flags().StringP("dir", "d", constants.DefaultConfigDir, "Configuration directory to validate")
	cmd.Flags().BoolP("json", "j", false, "Output the validation report in JSON format")
	cmd.Flags().Bool("parallel", false, "Validate files concurrently (report is unchanged)")
	cmd.Flags().BoolP("watch", "w", false, "Watch the configuration directory and revalidate on changes")

	return cmd
}
