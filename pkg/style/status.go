package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/dotsync/pkg/state"
)

// RenderStatus formats the three reconciliation partitions for display. With
// color disabled every style collapses to plain text.
func RenderStatus(st *state.FileState, color bool) string {
	var b strings.Builder

	delSym, delTpl := st.DeletedFiles()
	newSym, newTpl := st.NewFiles()
	oldSym, oldTpl := st.OldFiles()

	renderSection(&b, "To delete", DeletedStyle, color, descriptionLines(delSym, delTpl))
	renderSection(&b, "To create", NewStyle, color, descriptionLines(newSym, newTpl))
	renderSection(&b, "Up to date", OldStyle, color, descriptionLines(oldSym, oldTpl))

	if len(delSym)+len(delTpl)+len(newSym)+len(newTpl) == 0 {
		b.WriteString("Everything is in sync.\n")
	}

	return b.String()
}

func renderSection(b *strings.Builder, title string, itemStyle lipgloss.Style, color bool, lines []string) {
	if len(lines) == 0 {
		return
	}

	heading := fmt.Sprintf("%s (%d)", title, len(lines))
	if color {
		heading = TitleStyle.Render(heading)
	}
	b.WriteString(heading)
	b.WriteString("\n")

	for _, line := range lines {
		if color {
			line = ListItemStyle.Render(itemStyle.Render(line))
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func descriptionLines(symlinks []state.SymlinkDescription, templates []state.TemplateDescription) []string {
	lines := make([]string, 0, len(symlinks)+len(templates))
	for _, d := range symlinks {
		lines = append(lines, d.String())
	}
	for _, d := range templates {
		lines = append(lines, d.String())
	}
	return lines
}
