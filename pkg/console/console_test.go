//go:build !integration

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Styling degrades to plain text when stdout is not a terminal, so
// assertions check symbols and content rather than escape sequences.
func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		symbol string
	}{
		{"error", FormatErrorMessage, "✗"},
		{"warning", FormatWarningMessage, "⚠"},
		{"success", FormatSuccessMessage, "✓"},
		{"info", FormatInfoMessage, "ℹ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("something happened")
			assert.Contains(t, out, tt.symbol, "Formatted message should carry its symbol")
			assert.Contains(t, out, "something happened", "Formatted message should carry the text")
		})
	}
}

func TestFormatTitle(t *testing.T) {
	assert.Contains(t, FormatTitle("Pipeline"), "Pipeline", "Title should carry the text")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(TableConfig{
		Title:   "Fields",
		Headers: []string{"Field", "Required"},
		Rows: [][]string{
			{"ProjectName", "yes"},
			{"ComputeResourcesGPUType", "no"},
		},
	})

	assert.Contains(t, out, "Fields", "Table should include its title")
	assert.Contains(t, out, "Field", "Table should include headers")
	assert.Contains(t, out, "ProjectName", "Table should include row cells")
	assert.Contains(t, out, "ComputeResourcesGPUType", "Table should include row cells")

	lines := strings.Split(out, "\n")
	var separator string
	for _, line := range lines {
		if strings.HasPrefix(line, "-") {
			separator = line
			break
		}
	}
	assert.NotEmpty(t, separator, "Table should include a separator line")
	assert.Contains(t, separator, strings.Repeat("-", len("ComputeResourcesGPUType")),
		"Separator should span the widest cell in each column")
}

func TestRenderTableNoTitle(t *testing.T) {
	out := RenderTable(TableConfig{
		Headers: []string{"A"},
		Rows:    [][]string{{"x"}},
	})
	assert.False(t, strings.HasPrefix(out, "\n"), "Untitled table should not start with a blank line")
	assert.Contains(t, out, "x", "Table should include row cells")
}
