// Package schema implements the pipeline configuration schemas as
// declarative, per-field constraint tables.
//
// Each field of a pipeline configuration is described by a Field row
// holding a Rule (string pattern/length, integer range, enumeration,
// free-form object). Rules are plain values checked by a general
// validation routine, so every constraint is independently testable:
// given a JSON value, does it satisfy the rule.
//
// Values are the result of encoding/json unmarshaling into any, so the
// possible input kinds are: nil, bool, float64, string, []any and
// map[string]any.
package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Violation describes a single field-level constraint failure.
// The slice of violations for a document is the machine-readable
// diagnostic emitted when a file fails schema validation.
type Violation struct {
	Field      string `json:"field"`
	Got        string `json:"got"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// Rule checks one JSON value against a field constraint.
type Rule interface {
	// Check returns nil if value satisfies the rule, or a violation for
	// the named field.
	Check(field string, value any) *Violation

	// Describe returns a short human-readable statement of the constraint.
	Describe() string

	// jsonSchema renders the rule as a JSON Schema fragment.
	jsonSchema() map[string]any
}

// valueClass reports the JSON type class of an unmarshaled value.
func valueClass(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// describeValue summarizes a value for diagnostics. Short scalars are
// shown verbatim; everything else is reported by type class only.
func describeValue(value any) string {
	switch v := value.(type) {
	case string:
		if utf8.RuneCountInString(v) <= 64 {
			return fmt.Sprintf("%q", v)
		}
		return fmt.Sprintf("string (%d chars)", utf8.RuneCountInString(v))
	case float64:
		if v == math.Trunc(v) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return valueClass(value)
	}
}

// StringRule constrains string length and, optionally, a full-match pattern.
// Lengths are measured in Unicode code points.
type StringRule struct {
	MinLen      int
	MaxLen      int
	Pattern     *regexp.Regexp
	PatternDesc string
}

func (r *StringRule) Check(field string, value any) *Violation {
	s, ok := value.(string)
	if !ok {
		return &Violation{
			Field:      field,
			Got:        valueClass(value),
			Constraint: r.Describe(),
			Message:    "value is not a string",
		}
	}

	n := utf8.RuneCountInString(s)
	if n < r.MinLen || n > r.MaxLen {
		return &Violation{
			Field:      field,
			Got:        describeValue(s),
			Constraint: r.Describe(),
			Message:    fmt.Sprintf("string length %d is outside the range %d-%d", n, r.MinLen, r.MaxLen),
		}
	}

	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		return &Violation{
			Field:      field,
			Got:        describeValue(s),
			Constraint: r.Describe(),
			Message:    fmt.Sprintf("string does not match pattern %s", r.Pattern.String()),
		}
	}

	return nil
}

func (r *StringRule) Describe() string {
	desc := fmt.Sprintf("string, %d-%d chars", r.MinLen, r.MaxLen)
	if r.PatternDesc != "" {
		desc += ", " + r.PatternDesc
	}
	return desc
}

func (r *StringRule) jsonSchema() map[string]any {
	s := map[string]any{
		"type":      "string",
		"minLength": r.MinLen,
		"maxLength": r.MaxLen,
	}
	if r.Pattern != nil {
		s["pattern"] = r.Pattern.String()
	}
	return s
}

// IntRule constrains an integer to an inclusive range. JSON numbers with
// a fractional part are rejected: pipeline resource bounds are counts.
type IntRule struct {
	Min int64
	Max int64
}

func (r *IntRule) Check(field string, value any) *Violation {
	f, ok := value.(float64)
	if !ok {
		return &Violation{
			Field:      field,
			Got:        valueClass(value),
			Constraint: r.Describe(),
			Message:    "value is not a number",
		}
	}

	if f != math.Trunc(f) {
		return &Violation{
			Field:      field,
			Got:        describeValue(value),
			Constraint: r.Describe(),
			Message:    "value is not an integer",
		}
	}

	n := int64(f)
	if n < r.Min || n > r.Max {
		return &Violation{
			Field:      field,
			Got:        describeValue(value),
			Constraint: r.Describe(),
			Message:    fmt.Sprintf("value %d is outside the range %d-%d", n, r.Min, r.Max),
		}
	}

	return nil
}

func (r *IntRule) Describe() string {
	return fmt.Sprintf("integer, %d-%d", r.Min, r.Max)
}

func (r *IntRule) jsonSchema() map[string]any {
	return map[string]any{
		"type":    "integer",
		"minimum": r.Min,
		"maximum": r.Max,
	}
}

// EnumRule constrains a string to a fixed set of allowed values.
type EnumRule struct {
	Allowed []string
}

func (r *EnumRule) Check(field string, value any) *Violation {
	s, ok := value.(string)
	if !ok {
		return &Violation{
			Field:      field,
			Got:        valueClass(value),
			Constraint: r.Describe(),
			Message:    "value is not a string",
		}
	}

	for _, allowed := range r.Allowed {
		if s == allowed {
			return nil
		}
	}

	return &Violation{
		Field:      field,
		Got:        describeValue(s),
		Constraint: r.Describe(),
		Message:    fmt.Sprintf("value is not one of: %s", strings.Join(r.Allowed, ", ")),
	}
}

func (r *EnumRule) Describe() string {
	return "one of {" + strings.Join(r.Allowed, ", ") + "}"
}

func (r *EnumRule) jsonSchema() map[string]any {
	enum := make([]any, len(r.Allowed))
	for i, v := range r.Allowed {
		enum[i] = v
	}
	return map[string]any{"enum": enum}
}

// ObjectRule accepts any JSON object. Used for free-form mappings such as
// the inference schema, which carries no structural constraint.
type ObjectRule struct{}

func (r *ObjectRule) Check(field string, value any) *Violation {
	if _, ok := value.(map[string]any); !ok {
		return &Violation{
			Field:      field,
			Got:        valueClass(value),
			Constraint: r.Describe(),
			Message:    "value is not an object",
		}
	}
	return nil
}

func (r *ObjectRule) Describe() string {
	return "object"
}

func (r *ObjectRule) jsonSchema() map[string]any {
	return map[string]any{"type": "object"}
}
