package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/scaffoldnext/preflight/pkg/logger"
)

var exportLog = logger.New("schema:export")

// exportSchemaURL is the resource name the exported document is compiled under.
const exportSchemaURL = "https://scaffoldnext.github.io/preflight/pipeline-config.schema.json"

// ExportJSONSchema renders the schema union as a draft 2020-12 JSON Schema
// document: an anyOf of the two variant object schemas. The export exists
// for editor integration and CI tooling; the native constraint tables stay
// the source of truth.
func ExportJSONSchema() map[string]any {
	variants := make([]any, 0, len(Variants))
	for _, v := range Variants {
		variants = append(variants, variantJSONSchema(v))
	}

	return map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         exportSchemaURL,
		"title":       "Pipeline configuration",
		"description": "A machine-learning or agentic pipeline configuration document.",
		"anyOf":       variants,
	}
}

// variantJSONSchema renders one variant as a JSON Schema object schema.
// Unknown fields stay permitted, matching the native validator.
func variantJSONSchema(v *Variant) map[string]any {
	properties := make(map[string]any, len(v.Fields))
	var required []string

	for _, field := range v.Fields {
		elem := field.Rule.jsonSchema()
		if field.ListOK {
			properties[field.Name] = map[string]any{
				"anyOf": []any{
					elem,
					map[string]any{"type": "array", "items": elem},
				},
			}
		} else {
			properties[field.Name] = elem
		}
		if field.Required {
			required = append(required, field.Name)
		}
	}

	// Forbidden fields become boolean false schemas: present means invalid.
	for _, name := range v.Forbidden {
		properties[name] = false
	}

	return map[string]any{
		"type":       "object",
		"title":      v.Name,
		"properties": properties,
		"required":   required,
	}
}

// CompileExportedSchema compiles the exported document with a JSON Schema
// validator and returns the compiled schema. An export bug that produces a
// document that does not compile is caught here, before anything is emitted.
func CompileExportedSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(ExportJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshaling exported schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("re-reading exported schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(exportSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding exported schema resource: %w", err)
	}

	compiled, err := compiler.Compile(exportSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling exported schema: %w", err)
	}

	exportLog.Print("Exported schema compiled successfully")
	return compiled, nil
}
