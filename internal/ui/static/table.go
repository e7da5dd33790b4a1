// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the script listing
// and the doctor report table.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/rpc/internal/manifest"
	"github.com/raphi011/rpc/internal/ui/styles"
)

// RenderTable creates a borderless table with aligned columns.
// Headers are optional; the first column is rendered bold.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow || col == 0 {
				s = s.Bold(true)
			}
			return s
		})
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}

	var output strings.Builder
	output.WriteString(t.String())
	output.WriteString("\n")
	return output.String()
}

// ScriptRows returns one "name, → command" row per script in manifest order.
func ScriptRows(scripts []manifest.Script) [][]string {
	rows := make([][]string, len(scripts))
	for i, s := range scripts {
		rows[i] = []string{"  " + s.Name, styles.MutedStyle.Render("→ " + s.Command)}
	}
	return rows
}

// RenderScripts renders the "Available scripts" listing.
func RenderScripts(scripts []manifest.Script) string {
	if len(scripts) == 0 {
		return styles.MutedStyle.Render("No scripts defined") + "\n"
	}
	return styles.HeadingStyle.Render("Available scripts:") + "\n" + RenderTable(nil, ScriptRows(scripts))
}
