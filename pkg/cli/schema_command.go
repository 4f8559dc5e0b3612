package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scaffoldnext/preflight/pkg/console"
	"github.com/scaffoldnext/preflight/pkg/constants"
	"github.com/scaffoldnext/preflight/pkg/logger"
	"github.com/scaffoldnext/preflight/pkg/schema"
)

var schemaLog = logger.New("cli:schema_command")

// NewSchemaCommand creates the schema command
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the pipeline configuration schemas",
		Long: `Show the constraint tables of the two pipeline configuration schema
variants (MLPipeline and AgenticPipeline).

With --json, emit the schemas as a single JSON Schema document (draft
2020-12, an anyOf of the two variants) suitable for editor integration.
The document is compiled before being emitted so a broken export can
never be published.

Examples:
  ` + constants.CLIName + ` schema            # Constraint tables
  ` + constants.CLIName + ` schema --json     # JSON Schema document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			if jsonOutput {
				return printJSONSchema()
			}
			printConstraintTables()
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Emit the schemas as a JSON Schema document")

	return cmd
}

// printConstraintTables prints one table per schema variant.
func printConstraintTables() {
	for _, variant := range schema.Variants {
		rows := make([][]string, 0, len(variant.Fields))
		for _, field := range variant.Fields {
			required := "no"
			if field.Required {
				required = "yes"
			}
			constraint := field.Rule.Describe()
			if field.ListOK {
				constraint += " (single value or list)"
			}
			rows = append(rows, []string{field.Name, required, constraint})
		}

		fmt.Println(console.RenderTable(console.TableConfig{
			Title:   variant.Name,
			Headers: []string{"Field", "Required", "Constraint"},
			Rows:    rows,
		}))
	}
}

// printJSONSchema compile-checks and prints the exported JSON Schema.
func printJSONSchema() error {
	if _, err := schema.CompileExportedSchema(); err != nil {
		return fmt.Errorf("exported schema does not compile: %w", err)
	}

	raw, err := json.MarshalIndent(schema.ExportJSONSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}

	schemaLog.Printf("Emitting JSON Schema document: %d bytes", len(raw))
	fmt.Println(string(raw))
	return nil
}
