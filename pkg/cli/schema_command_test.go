//go:build !integration

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCommandTables(t *testing.T) {
	cmd := NewSchemaCommand()
	cmd.SetArgs([]string{})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute(), "Schema command should succeed")
	})

	assert.Contains(t, out, "MLPipeline", "Both variants should be listed")
	assert.Contains(t, out, "AgenticPipeline", "Both variants should be listed")
	assert.Contains(t, out, "ComputeResourcesGPUType", "Fields should be listed")
	assert.Contains(t, out, "(single value or list)", "List-capable fields should be marked")
}

func TestSchemaCommandJSON(t *testing.T) {
	cmd := NewSchemaCommand()
	cmd.SetArgs([]string{"--json"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute(), "Schema command should succeed")
	})

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), "Output should be well-formed JSON")

	variants, ok := doc["anyOf"].([]any)
	require.True(t, ok, "Document should be an anyOf union")
	assert.Len(t, variants, 2, "Union should cover both variants")
}
