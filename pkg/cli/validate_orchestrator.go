package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/scaffoldnext/preflight/pkg/console"
	"github.com/scaffoldnext/preflight/pkg/logger"
	"github.com/scaffoldnext/preflight/pkg/schema"
	"github.com/scaffoldnext/preflight/pkg/validator"
)

var orchestratorLog = logger.New("cli:validate_orchestrator")

// RunValidation runs one validation pass and prints the outcome.
// Status lines go to stdout; the returned error is non-nil when any file
// failed, which the root command maps to exit code 1.
func RunValidation(ctx context.Context, opts validator.Options, jsonOutput bool) error {
	report, err := validator.Run(ctx, opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSONReport(report)
	}

	PrintReport(report)

	if failure := report.FirstFailure(); failure != nil {
		return fmt.Errorf("validation failed for %s", failure.Path)
	}
	return nil
}

// PrintReport prints the human-readable outcome of a validation run to stdout.
func PrintReport(report *validator.Report) {
	if len(report.Files) == 0 {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("No JSON configuration files found in %s", report.Dir)))
		return
	}

	failure := report.FirstFailure()
	if failure == nil {
		fmt.Println(console.FormatSuccessMessage(fmt.Sprintf(
			"All %d configuration file(s) match the pipeline schemas", len(report.Files))))
		return
	}

	switch failure.Kind {
	case validator.ResultParseError:
		fmt.Println(console.FormatErrorMessage(fmt.Sprintf(
			"%s is not valid JSON: %s", failure.Path, failure.Error)))
	case validator.ResultSchemaError:
		fmt.Println(console.FormatErrorMessage(fmt.Sprintf(
			"%s does not match any pipeline schema:", failure.Path)))
		printViolations(failure.Violations)
	}
}

// printViolations prints the violation list as indented JSON, the
// machine-readable part of a schema failure diagnostic.
func printViolations(violations []schema.Violation) {
	raw, err := json.MarshalIndent(violations, "", "  ")
	if err != nil {
		orchestratorLog.Printf("Failed to marshal violations: %v", err)
		for _, v := range violations {
			fmt.Printf("  %s: %s (%s)\n", v.Field, v.Message, v.Constraint)
		}
		return
	}
	fmt.Println(string(raw))
}

// printJSONReport writes the full report as indented JSON to stdout and
// returns an error if the report contains a failure.
func printJSONReport(report *validator.Report) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(raw))

	if failure := report.FirstFailure(); failure != nil {
		return fmt.Errorf("validation failed for %s", failure.Path)
	}
	return nil
}
