package console

import (
	"fmt"
	"strings"

	"github.com/scaffoldnext/preflight/pkg/logger"
)

var tableLog = logger.New("console:table")

// TableConfig describes a table to render to the console.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a column-aligned text table.
// Column widths are computed from the widest cell in each column.
func RenderTable(config TableConfig) string {
	tableLog.Printf("Rendering table: title=%q, rows=%d", config.Title, len(config.Rows))

	var out strings.Builder

	if config.Title != "" {
		out.WriteString(FormatTitle(config.Title))
		out.WriteString("\n\n")
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = len(h)
	}
	for _, row := range config.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	for i, h := range config.Headers {
		fmt.Fprintf(&header, "%-*s", widths[i]+2, h)
	}
	out.WriteString(headerStyle.Render(strings.TrimRight(header.String(), " ")))
	out.WriteString("\n")

	for i, w := range widths {
		out.WriteString(strings.Repeat("-", w))
		if i < len(widths)-1 {
			out.WriteString("  ")
		}
	}
	out.WriteString("\n")

	for _, row := range config.Rows {
		var line strings.Builder
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(&line, "%-*s", widths[i]+2, cell)
			}
		}
		out.WriteString(strings.TrimRight(line.String(), " "))
		out.WriteString("\n")
	}

	return out.String()
}
