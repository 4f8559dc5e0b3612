package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/scaffoldnext/preflight/pkg/console"
	"github.com/scaffoldnext/preflight/pkg/constants"
	"github.com/scaffoldnext/preflight/pkg/fileutil"
	"github.com/scaffoldnext/preflight/pkg/logger"
	"github.com/scaffoldnext/preflight/pkg/schema"
)

var initLog = logger.New("cli:init_command")

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a pipeline configuration file interactively",
		Long: `Walk through the pipeline configuration fields interactively and write
the result as a JSON file into the configuration directory.

Every prompt is validated with the same field rules the validate command
applies, and the finished document is validated against the schema union
before it is written.

Examples:
  ` + constants.CLIName + ` init                    # Write into ./` + constants.DefaultConfigDir + `
  ` + constants.CLIName + ` init --dir configs      # Write into a custom directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			force, _ := cmd.Flags().GetBool("force")
			return runInit(dir, force)
		},
	}

	cmd.Flags().StringP("dir", "d", constants.DefaultConfigDir, "Configuration directory to write into")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

// initAnswers collects the raw form inputs before they are assembled into
// a configuration document.
type initAnswers struct {
	kind           string
	projectName    string
	appName        string
	description    string
	adminAccounts  string
	viewerAccounts string
	cpu            string
	ram            string
	storage        string
	gpuCores       string
	gpuType        string
	sources        string
	modelTypes     []string
	sourceSizeKB   string
	modelSizeKB    string
	runtimeBase    string
}

func runInit(dir string, force bool) error {
	initLog.Printf("Running init command: dir=%s, force=%v", dir, force)

	answers := initAnswers{}
	if err := runInitForm(&answers); err != nil {
		return err
	}

	doc := buildConfigDocument(&answers)

	kind, violations := schema.ValidateDocument(doc)
	if len(violations) > 0 {
		// Per-prompt validation should make this unreachable.
		raw, _ := json.MarshalIndent(violations, "", "  ")
		fmt.Println(console.FormatErrorMessage("Assembled configuration does not validate:"))
		fmt.Println(string(raw))
		return errors.New("assembled configuration does not validate")
	}

	path := filepath.Join(dir, answers.appName+".json")
	if fileutil.FileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("Wrote %s configuration to %s", kind, path)))
	return nil
}

// runInitForm walks the user through the configuration prompts.
func runInitForm(a *initAnswers) error {
	base := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pipeline kind").
				Options(
					huh.NewOption("Machine learning", "ml"),
					huh.NewOption("Agentic", "agentic"),
				).
				Value(&a.kind),
			huh.NewInput().
				Title("Project name").
				Validate(ruleValidator(schema.NameRule, "projectName")).
				Value(&a.projectName),
			huh.NewInput().
				Title("Application name").
				Validate(ruleValidator(schema.NameRule, "applicationName")).
				Value(&a.appName),
			huh.NewText().
				Title("Project description").
				Validate(ruleValidator(schema.DescriptionRule, "projectDescription")).
				Value(&a.description),
			huh.NewInput().
				Title("Admin accounts (comma-separated emails)").
				Validate(listValidator(schema.EmailRule, "adminAccounts")).
				Value(&a.adminAccounts),
			huh.NewInput().
				Title("Viewer accounts (comma-separated emails)").
				Validate(listValidator(schema.EmailRule, "viewerAccounts")).
				Value(&a.viewerAccounts),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("vCPUs (1-96)").
				Validate(intValidator(schema.CPURule, "ComputeResourcesCPU")).
				Value(&a.cpu),
			huh.NewInput().
				Title("RAM in GB (1-624)").
				Validate(intValidator(schema.RAMRule, "ComputeResourcesRAM")).
				Value(&a.ram),
			huh.NewInput().
				Title("Storage in GB (10-65536)").
				Validate(intValidator(schema.StorageRule, "ComputeResourcesStorage")).
				Value(&a.storage),
			huh.NewInput().
				Title("GPU cores (0-128)").
				Validate(intValidator(schema.GPUCoresRule, "ComputeResourcesGPUCores")).
				Value(&a.gpuCores),
			huh.NewSelect[string]().
				Title("GPU type").
				Options(huh.NewOptions(schema.GPUTypeRule.Allowed...)...).
				Value(&a.gpuType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Data sources (comma-separated paths)").
				Validate(listValidator(schema.SourcePathRule, "Sources")).
				Value(&a.sources),
			huh.NewInput().
				Title("Source size estimation in KB").
				Validate(intValidator(schema.SizeKBRule, "SourceSizeEstimationKB")).
				Value(&a.sourceSizeKB),
			huh.NewSelect[string]().
				Title("Runtime base").
				Options(huh.NewOptions(schema.RuntimeBaseRule.Allowed...)...).
				Value(&a.runtimeBase),
		),
	)

	if err := base.Run(); err != nil {
		return err
	}

	if a.kind != "ml" {
		return nil
	}

	ml := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Model type(s)").
				Options(huh.NewOptions(schema.ModelTypeRule.Allowed...)...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return errors.New("select at least one model type")
					}
					return nil
				}).
				Value(&a.modelTypes),
			huh.NewInput().
				Title("Model size estimation in KB").
				Validate(intValidator(schema.SizeKBRule, "ModelSizeEstimationKB")).
				Value(&a.modelSizeKB),
		),
	)
	return ml.Run()
}

// buildConfigDocument assembles the answers into a document shaped like a
// parsed configuration file (numbers as float64, lists as []any), so it can
// be validated with the same routine the validate command uses.
func buildConfigDocument(a *initAnswers) map[string]any {
	doc := map[string]any{
		"projectName":              a.projectName,
		"applicationName":          a.appName,
		"projectDescription":       a.description,
		"adminAccounts":            splitList(a.adminAccounts),
		"viewerAccounts":           splitList(a.viewerAccounts),
		"ComputeResourcesCPU":      mustFloat(a.cpu),
		"ComputeResourcesRAM":      mustFloat(a.ram),
		"ComputeResourcesStorage":  mustFloat(a.storage),
		"ComputeResourcesGPUCores": mustFloat(a.gpuCores),
		"ComputeResourcesGPUType":  a.gpuType,
		"Sources":                  splitList(a.sources),
		"InferenceSchema":          map[string]any{},
		"SourceSizeEstimationKB":   mustFloat(a.sourceSizeKB),
		"runtimeBase":              a.runtimeBase,
	}

	if a.kind == "ml" {
		types := make([]any, len(a.modelTypes))
		for i, t := range a.modelTypes {
			types[i] = t
		}
		doc["ModelType"] = types
		doc["ModelSizeEstimationKB"] = mustFloat(a.modelSizeKB)
	}

	return doc
}

// ruleValidator adapts a schema rule into a huh input validator.
func ruleValidator(rule schema.Rule, field string) func(string) error {
	return func(value string) error {
		if v := rule.Check(field, value); v != nil {
			return errors.New(v.Message)
		}
		return nil
	}
}

// intValidator validates a numeric text input against an integer rule.
func intValidator(rule *schema.IntRule, field string) func(string) error {
	return func(value string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return errors.New("enter a whole number")
		}
		if v := rule.Check(field, float64(n)); v != nil {
			return errors.New(v.Message)
		}
		return nil
	}
}

// listValidator validates a comma-separated input, applying the element
// rule to every entry.
func listValidator(rule schema.Rule, field string) func(string) error {
	return func(value string) error {
		entries := splitList(value)
		if len(entries) == 0 {
			return errors.New("enter at least one entry")
		}
		for _, entry := range entries {
			if v := rule.Check(field, entry); v != nil {
				return fmt.Errorf("%q: %s", entry, v.Message)
			}
		}
		return nil
	}
}

// mustFloat converts a prompt-validated numeric input. The form validator
// already rejected anything unparsable.
func mustFloat(value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		initLog.Printf("Unexpected unparsable numeric input: %q", value)
		return 0
	}
	return n
}

// splitList splits a comma-separated input into trimmed entries, shaped as
// []any to match parsed JSON.
func splitList(value string) []any {
	var entries []any
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}
