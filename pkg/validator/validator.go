// Package validator drives pipeline configuration validation over a
// directory of JSON files.
//
// Each file moves through a single-step pipeline: read, parse as JSON,
// validate against the schema union. A run stops at the first failing
// file; validation of later files never changes the outcome of an
// earlier one, so the optional parallel mode produces the same report.
package validator

import (
	"context"
	"encoding/json"
	"os"

	"github.com/sourcegraph/conc/iter"

	"github.com/scaffoldnext/preflight/pkg/fileutil"
	"github.com/scaffoldnext/preflight/pkg/logger"
	"github.com/scaffoldnext/preflight/pkg/schema"
)

var log = logger.New("validator:validator")

// ResultKind classifies the outcome of validating one file.
type ResultKind int

const (
	// ResultValid means the file parsed and matched a schema variant.
	ResultValid ResultKind = iota

	// ResultParseError means the file is not syntactically valid JSON.
	ResultParseError

	// ResultSchemaError means the file parsed but matched no variant.
	ResultSchemaError
)

// String returns the status label used in reports.
func (k ResultKind) String() string {
	switch k {
	case ResultValid:
		return "valid"
	case ResultParseError:
		return "parse_error"
	case ResultSchemaError:
		return "schema_error"
	default:
		return "unknown"
	}
}

// FileResult is the outcome of validating a single configuration file.
type FileResult struct {
	Path       string             `json:"path"`
	Kind       ResultKind         `json:"-"`
	Status     string             `json:"status"`
	Variant    string             `json:"variant,omitempty"`
	Error      string             `json:"error,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// OK reports whether the file validated.
func (r FileResult) OK() bool {
	return r.Kind == ResultValid
}

// Report is the aggregate outcome of one validation run.
type Report struct {
	Dir   string       `json:"dir"`
	Files []FileResult `json:"files"`
}

// OK reports whether every processed file validated. An empty report
// (no files discovered) is a vacuous pass.
func (r *Report) OK() bool {
	for _, f := range r.Files {
		if !f.OK() {
			return false
		}
	}
	return true
}

// FirstFailure returns the first failing file result, or nil.
func (r *Report) FirstFailure() *FileResult {
	for i := range r.Files {
		if !r.Files[i].OK() {
			return &r.Files[i]
		}
	}
	return nil
}

// Options configures a validation run.
type Options struct {
	// Dir is the directory searched for *.json configuration files.
	Dir string

	// Parallel validates all files concurrently instead of sequentially.
	// The report is identical either way: results keep discovery order
	// and the run is truncated after the first failure.
	Parallel bool
}

// Discover lists the configuration files a run would validate.
func Discover(dir string) ([]string, error) {
	return fileutil.ListJSONFiles(dir)
}

// ValidateFile validates a single configuration file.
func ValidateFile(path string) FileResult {
	result := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Read failed: path=%s err=%v", path, err)
		result.Kind = ResultParseError
		result.Status = ResultParseError.String()
		result.Error = err.Error()
		return result
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Parse failed: path=%s err=%v", path, err)
		result.Kind = ResultParseError
		result.Status = ResultParseError.String()
		result.Error = err.Error()
		return result
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		result.Kind = ResultSchemaError
		result.Status = ResultSchemaError.String()
		result.Violations = []schema.Violation{{
			Field:      "(document)",
			Got:        "non-object",
			Constraint: "object",
			Message:    "top-level JSON value is not an object",
		}}
		return result
	}

	kind, violations := schema.ValidateDocument(obj)
	if len(violations) > 0 {
		result.Kind = ResultSchemaError
		result.Status = ResultSchemaError.String()
		result.Violations = violations
		return result
	}

	result.Kind = ResultValid
	result.Status = ResultValid.String()
	result.Variant = kind
	return result
}

// Run validates every configuration file under opts.Dir and returns the
// report. Processing stops at the first failing file; files after it do
// not appear in the report. Zero discovered files is a success.
func Run(ctx context.Context, opts Options) (*Report, error) {
	files, err := Discover(opts.Dir)
	if err != nil {
		return nil, err
	}

	log.Printf("Starting validation run: dir=%s files=%d parallel=%v", opts.Dir, len(files), opts.Parallel)

	report := &Report{Dir: opts.Dir}
	if len(files) == 0 {
		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var results []FileResult
	if opts.Parallel {
		results = iter.Map(files, func(path *string) FileResult {
			return ValidateFile(*path)
		})
	} else {
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res := ValidateFile(path)
			results = append(results, res)
			if !res.OK() {
				break
			}
		}
	}

	// Truncate after the first failure so the parallel report matches the
	// sequential one.
	for _, res := range results {
		report.Files = append(report.Files, res)
		if !res.OK() {
			break
		}
	}

	return report, nil
}
