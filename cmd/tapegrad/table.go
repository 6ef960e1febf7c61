package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/tapegrad/internal/scenario"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

// renderTable renders the tape of g with one row per node.
func renderTable(g scenario.Graph) string {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	rightAlignedStyle := cellStyle.Align(lipgloss.Right)
	headerStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return headerStyle
			case col <= 2:
				return rightAlignedStyle
			default:
				return cellStyle
			}
		}).
		Headers("Idx", "Data", "Grad", "Op", "Parents")

	for i, node := range g.Tape.Nodes() {
		parents := make([]string, 0, 2)
		for _, p := range node.Op.Parents() {
			parents = append(parents, fmt.Sprint(p))
		}
		table.Row(
			fmt.Sprint(i),
			fmt.Sprintf("%.6g", node.Data),
			fmt.Sprintf("%.6g", node.Grad),
			node.Op.Kind.String(),
			strings.Join(parents, ", "),
		)
	}
	return table.Render()
}
