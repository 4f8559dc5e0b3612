//go:build !integration

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRule(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{name: "minimum length passes", value: "abc", valid: true},
		{name: "below minimum length fails", value: "ab", valid: false},
		{name: "leading hyphen fails", value: "-abc", valid: false},
		{name: "trailing hyphen fails", value: "abc-", valid: false},
		{name: "inner hyphen passes", value: "my-project", valid: true},
		{name: "maximum length passes", value: "a23456789012345678901234567890", valid: true},
		{name: "over maximum length fails", value: "a234567890123456789012345678901", valid: false},
		{name: "non-string fails", value: 42.0, valid: false},
		{name: "null fails", value: nil, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NameRule.Check("projectName", tt.value)
			if tt.valid {
				assert.Nil(t, v, "Value should satisfy the name rule")
			} else {
				require.NotNil(t, v, "Value should violate the name rule")
				assert.Equal(t, "projectName", v.Field, "Violation should name the field")
			}
		})
	}
}

func TestEmailRule(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{name: "plain email passes", value: "a@b.co", valid: true},
		{name: "no at sign fails", value: "not-an-email", valid: false},
		{name: "no dot after at fails", value: "user@host", valid: false},
		{name: "too short fails", value: "a@b.c", valid: false},
		{name: "number fails", value: 1.0, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := EmailRule.Check("adminAccounts", tt.value)
			if tt.valid {
				assert.Nil(t, v, "Value should satisfy the email rule")
			} else {
				assert.NotNil(t, v, "Value should violate the email rule")
			}
		})
	}
}

func TestServiceAccountRule(t *testing.T) {
	assert.Nil(t, ServiceAccountRule.Check("serviceAccountMaasName", "svc-account"), "Lowercase name with hyphen should pass")
	assert.NotNil(t, ServiceAccountRule.Check("serviceAccountMaasName", "Svc-account"), "Uppercase start should fail")
	assert.NotNil(t, ServiceAccountRule.Check("serviceAccountMaasName", "svc-a"), "Five characters should fail the minimum length")
	assert.Nil(t, ServiceAccountRule.Check("serviceAccountMaasName", "svc-a1"), "Six characters should pass")
}

func TestBucketAndDatasetRules(t *testing.T) {
	assert.Nil(t, BucketRule.Check("bucketMaasName", "my-bucket.backup_1"), "Bucket-shaped name should pass")
	assert.NotNil(t, BucketRule.Check("bucketMaasName", "My-Bucket"), "Uppercase bucket name should fail")
	assert.NotNil(t, BucketRule.Check("bucketMaasName", "ab"), "Two characters should fail")

	assert.Nil(t, DatasetRule.Check("datasetMaasName", "analytics_2024"), "Underscore dataset name should pass")
	assert.NotNil(t, DatasetRule.Check("datasetMaasName", "bad-name"), "Hyphen in dataset name should fail")
	assert.NotNil(t, DatasetRule.Check("datasetMaasName", ""), "Empty dataset name should fail")
}

func TestCPURuleBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{name: "below minimum fails", value: 0.0, valid: false},
		{name: "minimum passes", value: 1.0, valid: true},
		{name: "maximum passes", value: 96.0, valid: true},
		{name: "above maximum fails", value: 97.0, valid: false},
		{name: "fractional number fails", value: 1.5, valid: false},
		{name: "string fails", value: "4", valid: false},
		{name: "bool fails", value: true, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CPURule.Check("ComputeResourcesCPU", tt.value)
			if tt.valid {
				assert.Nil(t, v, "Value should satisfy the CPU rule")
			} else {
				require.NotNil(t, v, "Value should violate the CPU rule")
				assert.Equal(t, "ComputeResourcesCPU", v.Field, "Violation should name the field")
				assert.NotEmpty(t, v.Message, "Violation should carry a message")
			}
		})
	}
}

func TestIntRuleRanges(t *testing.T) {
	tests := []struct {
		name  string
		rule  *IntRule
		value float64
		valid bool
	}{
		{name: "RAM maximum", rule: RAMRule, value: 624, valid: true},
		{name: "RAM above maximum", rule: RAMRule, value: 625, valid: false},
		{name: "storage minimum", rule: StorageRule, value: 10, valid: true},
		{name: "storage below minimum", rule: StorageRule, value: 9, valid: false},
		{name: "GPU cores zero allowed", rule: GPUCoresRule, value: 0, valid: true},
		{name: "GPU cores maximum", rule: GPUCoresRule, value: 128, valid: true},
		{name: "GPU cores above maximum", rule: GPUCoresRule, value: 129, valid: false},
		{name: "size estimation 1 TB", rule: SizeKBRule, value: 1_000_000_000, valid: true},
		{name: "size estimation above 1 TB", rule: SizeKBRule, value: 1_000_000_001, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.rule.Check("field", tt.value)
			if tt.valid {
				assert.Nil(t, v, "Value should be in range")
			} else {
				assert.NotNil(t, v, "Value should be out of range")
			}
		})
	}
}

func TestEnumRules(t *testing.T) {
	assert.Nil(t, ModelTypeRule.Check("ModelType", "classification"), "Known model type should pass")
	assert.NotNil(t, ModelTypeRule.Check("ModelType", "invalid-type"), "Unknown model type should fail")
	assert.NotNil(t, ModelTypeRule.Check("ModelType", 3.0), "Non-string model type should fail")

	assert.Nil(t, GPUTypeRule.Check("ComputeResourcesGPUType", "A100"), "Known GPU type should pass")
	assert.NotNil(t, GPUTypeRule.Check("ComputeResourcesGPUType", "K80"), "Unknown GPU type should fail")

	assert.Nil(t, RuntimeBaseRule.Check("runtimeBase", "Python3.10"), "Known runtime should pass")
	assert.NotNil(t, RuntimeBaseRule.Check("runtimeBase", "Python2.7"), "Unknown runtime should fail")
}

func TestObjectRule(t *testing.T) {
	rule := &ObjectRule{}
	assert.Nil(t, rule.Check("InferenceSchema", map[string]any{}), "Empty object should pass")
	assert.Nil(t, rule.Check("InferenceSchema", map[string]any{"out": "float"}), "Any object content should pass")
	assert.NotNil(t, rule.Check("InferenceSchema", []any{}), "Array should fail")
	assert.NotNil(t, rule.Check("InferenceSchema", "schema"), "String should fail")
}

func TestViolationReportsValueClass(t *testing.T) {
	v := CPURule.Check("ComputeResourcesCPU", "many")
	require.NotNil(t, v, "String for an integer field should fail")
	assert.Equal(t, "string", v.Got, "Violation should report the offending value class")

	v = NameRule.Check("projectName", []any{"a"})
	require.NotNil(t, v, "Array for a string field should fail")
	assert.Equal(t, "array", v.Got, "Violation should report the offending value class")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "integer, 1-96", CPURule.Describe(), "Integer rule description should state the range")
	assert.Contains(t, NameRule.Describe(), "3-30 chars", "String rule description should state the length bounds")
	assert.Contains(t, GPUTypeRule.Describe(), "A100", "Enum rule description should list the values")
}
