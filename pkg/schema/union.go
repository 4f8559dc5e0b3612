package schema

import (
	"github.com/scaffoldnext/preflight/pkg/logger"
)

var unionLog = logger.New("schema:union")

// Variants lists the union members in the order they are tried.
// The order is part of the validation contract: when a document matches
// neither variant, the violations of the first variant are surfaced so
// diagnostics stay reproducible.
var Variants = []*Variant{MLPipeline, AgenticPipeline}

// ValidateDocument checks a parsed JSON document against the schema union.
// A document is accepted if it fully matches at least one variant; the
// returned kind names the matching variant. On rejection the violation set
// of the first variant tried (MLPipeline) is returned.
func ValidateDocument(doc map[string]any) (kind string, violations []Violation) {
	var firstViolations []Violation

	for i, variant := range Variants {
		vs := variant.Validate(doc)
		if len(vs) == 0 {
			unionLog.Printf("Document matches variant: %s", variant.Name)
			return variant.Name, nil
		}
		if i == 0 {
			firstViolations = vs
		}
	}

	unionLog.Printf("Document matches no variant, surfacing %d violation(s) from %s",
		len(firstViolations), Variants[0].Name)
	return "", firstViolations
}
