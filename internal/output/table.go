package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/wordforge/wordforge/internal/wordlist"
)

// ProviderRow is one line of the providers listing.
type ProviderRow struct {
	Name         string
	EnvVar       string
	DefaultModel string
	Configured   bool
}

// WriteTypesTable renders the wordlist type catalog as a styled table.
func WriteTypesTable(w io.Writer, types []wordlist.Type, noColor bool) {
	headers := []string{"Type", "Description", "Default file"}
	var rows [][]string
	for _, t := range types {
		rows = append(rows, []string{t.Name, t.Description, t.DefaultFilename})
	}
	writeTable(w, headers, rows, noColor)
}

// WriteProvidersTable renders the provider listing as a styled table.
func WriteProvidersTable(w io.Writer, providers []ProviderRow, noColor bool) {
	headers := []string{"Provider", "Key env var", "Default model", "Key"}
	var rows [][]string
	for _, p := range providers {
		key := "missing"
		if p.Configured {
			key = "set"
		}
		model := p.DefaultModel
		if model == "" {
			model = "(required)"
		}
		rows = append(rows, []string{p.Name, p.EnvVar, model, key})
	}
	writeTable(w, headers, rows, noColor)
}

func writeTable(w io.Writer, headers []string, rows [][]string, noColor bool) {
	fmt.Fprintln(w)

	if noColor {
		writeSimpleTable(w, headers, rows)
		return
	}

	t := table.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		})

	for _, row := range rows {
		t.Row(row...)
	}

	fmt.Fprintln(w, t.Render())
}

func writeSimpleTable(w io.Writer, headers []string, rows [][]string) {
	// Calculate column widths.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print header.
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, " | ")
		}
		fmt.Fprintf(w, "%-*s", widths[i], h)
	}
	fmt.Fprintln(w)

	// Separator.
	for i, width := range widths {
		if i > 0 {
			fmt.Fprint(w, "-+-")
		}
		fmt.Fprint(w, strings.Repeat("-", width))
	}
	fmt.Fprintln(w)

	// Rows.
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, " | ")
			}
			fmt.Fprintf(w, "%-*s", widths[i], cell)
		}
		fmt.Fprintln(w)
	}
}
