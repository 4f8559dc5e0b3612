package schema

import (
	"fmt"
	"regexp"

	"github.com/scaffoldnext/preflight/pkg/logger"
)

var pipelineLog = logger.New("schema:pipeline")

// Reusable rules shared by both pipeline variants. The patterns mirror the
// naming restrictions of the cloud resources each field maps to.
var (
	// NameRule covers project and application names.
	NameRule = &StringRule{
		MinLen:      3,
		MaxLen:      30,
		Pattern:     regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$`),
		PatternDesc: "alphanumeric with inner hyphens",
	}

	// DescriptionRule covers the free-text project description.
	DescriptionRule = &StringRule{MinLen: 3, MaxLen: 250}

	// EmailRule covers admin and viewer account entries.
	EmailRule = &StringRule{
		MinLen:      6,
		MaxLen:      254,
		Pattern:     regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`),
		PatternDesc: "email address",
	}

	// ServiceAccountRule covers service account short names.
	ServiceAccountRule = &StringRule{
		MinLen:      6,
		MaxLen:      30,
		Pattern:     regexp.MustCompile(`^[a-z][a-z0-9\-]{4,28}[a-z0-9]$`),
		PatternDesc: "lowercase alphanumeric with hyphens",
	}

	// BucketRule covers storage bucket names.
	BucketRule = &StringRule{
		MinLen:      3,
		MaxLen:      63,
		Pattern:     regexp.MustCompile(`^[a-z0-9][a-z0-9\-_.]{1,61}[a-z0-9]$`),
		PatternDesc: "bucket name",
	}

	// DatasetRule covers dataset names.
	DatasetRule = &StringRule{
		MinLen:      1,
		MaxLen:      1024,
		// Go's regexp caps a single repeat count at 1000, so the 1..1024
		// length range is split across two adjacent quantifiers.
		Pattern:     regexp.MustCompile(`^[a-zA-Z0-9_]{1,1000}[a-zA-Z0-9_]{0,24}$`),
		PatternDesc: "alphanumeric with underscores",
	}

	// SourcePathRule covers data source path entries.
	SourcePathRule = &StringRule{MinLen: 3, MaxLen: 200}

	// Compute resource bounds follow Compute Engine and Vertex AI limits.
	CPURule      = &IntRule{Min: 1, Max: 96}
	RAMRule      = &IntRule{Min: 1, Max: 624}
	StorageRule  = &IntRule{Min: 10, Max: 65536}
	GPUCoresRule = &IntRule{Min: 0, Max: 128}

	// SizeKBRule covers size estimations, 1 KB to 1 TB.
	SizeKBRule = &IntRule{Min: 1, Max: 1_000_000_000}

	GPUTypeRule = &EnumRule{Allowed: []string{
		"T4", "V100", "P100", "P4", "L4", "A100", "H100", "H200",
	}}

	ModelTypeRule = &EnumRule{Allowed: []string{
		"classification", "regression", "clustering", "gen-ai", "time-series",
	}}

	RuntimeBaseRule = &EnumRule{Allowed: []string{
		"Python3.9", "Python3.10", "ApacheBeam", "R", "Dataproc", "TF", "Pytorch",
	}}
)

// Field is one row of a variant's constraint table.
type Field struct {
	Name     string
	Required bool

	// ListOK allows the value to be either a single value or a JSON array
	// whose elements each satisfy Rule.
	ListOK bool

	Rule Rule
}

// Variant is a named schema: the full constraint table for one member of
// the pipeline configuration union.
type Variant struct {
	Name   string
	Fields []Field

	// Forbidden lists fields that must not appear in documents of this
	// variant. The union members are mutually exclusive: the agentic
	// variant forbids the ML-only fields instead of silently ignoring
	// them, so a document with a broken ModelType cannot slip through
	// as an agentic pipeline.
	Forbidden []string
}

// MLPipeline is the machine-learning variant of the configuration schema.
var MLPipeline = &Variant{
	Name: "MLPipeline",
	Fields: []Field{
		{Name: "projectName", Required: true, Rule: NameRule},
		{Name: "applicationName", Required: true, Rule: NameRule},
		{Name: "projectDescription", Required: true, Rule: DescriptionRule},
		{Name: "adminAccounts", Required: true, ListOK: true, Rule: EmailRule},
		{Name: "viewerAccounts", Required: true, ListOK: true, Rule: EmailRule},
		{Name: "serviceAccountMaasName", ListOK: true, Rule: ServiceAccountRule},
		{Name: "serviceAccountExplorationName", ListOK: true, Rule: ServiceAccountRule},
		{Name: "serviceAccountDiscoveryName", ListOK: true, Rule: ServiceAccountRule},
		{Name: "bucketMaasName", Rule: BucketRule},
		{Name: "bucketExplorationName", Rule: BucketRule},
		{Name: "bucketDiscoveryName", Rule: BucketRule},
		{Name: "datasetMaasName", Rule: DatasetRule},
		{Name: "datasetExplorationName", Rule: DatasetRule},
		{Name: "datasetDiscoveryName", Rule: DatasetRule},
		{Name: "ComputeResourcesCPU", Required: true, Rule: CPURule},
		{Name: "ComputeResourcesRAM", Required: true, Rule: RAMRule},
		{Name: "ComputeResourcesStorage", Required: true, Rule: StorageRule},
		{Name: "ComputeResourcesGPUCores", Required: true, Rule: GPUCoresRule},
		{Name: "ComputeResourcesGPUType", Required: true, Rule: GPUTypeRule},
		{Name: "Sources", Required: true, ListOK: true, Rule: SourcePathRule},
		{Name: "ModelType", Required: true, ListOK: true, Rule: ModelTypeRule},
		{Name: "InferenceSchema", Required: true, Rule: &ObjectRule{}},
		{Name: "SourceSizeEstimationKB", Required: true, Rule: SizeKBRule},
		{Name: "ModelSizeEstimationKB", Required: true, Rule: SizeKBRule},
		{Name: "runtimeBase", Required: true, Rule: RuntimeBaseRule},
	},
}

// AgenticPipeline is the agentic variant: the ML field set minus the
// model-specific fields.
var AgenticPipeline = newAgenticVariant()

// agenticExcludedFields are the ML fields that do not apply to agentic
// pipelines.
var agenticExcludedFields = map[string]bool{
	"ModelType":             true,
	"ModelSizeEstimationKB": true,
}

func newAgenticVariant() *Variant {
	v := &Variant{Name: "AgenticPipeline"}
	for _, f := range MLPipeline.Fields {
		if agenticExcludedFields[f.Name] {
			v.Forbidden = append(v.Forbidden, f.Name)
			continue
		}
		v.Fields = append(v.Fields, f)
	}
	return v
}

// Validate checks a parsed JSON document against the variant's constraint
// table. It returns the full list of field-level violations: every missing
// required field and every present field (required or optional) whose value
// breaks its rule. An empty result means the document matches the variant.
// Fields outside the table are ignored.
func (v *Variant) Validate(doc map[string]any) []Violation {
	var violations []Violation

	for _, name := range v.Forbidden {
		if _, present := doc[name]; present {
			violations = append(violations, Violation{
				Field:      name,
				Got:        valueClass(doc[name]),
				Constraint: "absent",
				Message:    fmt.Sprintf("field is not allowed in %s documents", v.Name),
			})
		}
	}

	for _, field := range v.Fields {
		value, present := doc[field.Name]
		if !present {
			if field.Required {
				violations = append(violations, Violation{
					Field:      field.Name,
					Got:        "missing",
					Constraint: field.Rule.Describe(),
					Message:    "required field is missing",
				})
			}
			continue
		}

		violations = append(violations, checkField(field, value)...)
	}

	pipelineLog.Printf("Validated against %s: %d violation(s)", v.Name, len(violations))
	return violations
}

// checkField applies a field's rule to its value, expanding list-or-scalar
// fields element by element.
func checkField(field Field, value any) []Violation {
	list, isList := value.([]any)
	if !isList {
		if v := field.Rule.Check(field.Name, value); v != nil {
			return []Violation{*v}
		}
		return nil
	}

	if !field.ListOK {
		return []Violation{{
			Field:      field.Name,
			Got:        "array",
			Constraint: field.Rule.Describe(),
			Message:    "field does not accept a list",
		}}
	}

	var violations []Violation
	for i, elem := range list {
		path := fmt.Sprintf("%s[%d]", field.Name, i)
		if v := field.Rule.Check(path, elem); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}
