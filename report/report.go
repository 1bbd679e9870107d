// SPDX-License-Identifier: MIT
// Package report renders ledger statistics and relation clusters for the
// console. Styling goes through a lipgloss renderer bound to the destination
// writer, so output written to a file or pipe is plain text.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/layoffgraph/ledger"
)

const separator = "-------------------"

// styles holds the lipgloss styles bound to one writer.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	faint lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}),
		label: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"}),
		value: r.NewStyle().Bold(true),
		faint: r.NewStyle().Faint(true),
	}
}

// Industries writes one block per industry row followed by the per-year
// average block. Years are listed ascending; the overall average (key 0) is
// printed last as "All years". Floats use two decimals.
func Industries(w io.Writer, rows []ledger.IndustryStats, perYear map[uint32]float64) error {
	st := newStyles(w)
	var b strings.Builder

	for _, row := range rows {
		s := row.Summary
		b.WriteString(st.title.Render("Industry: "+row.Industry) + "\n")
		st.field(&b, "Companies", fmt.Sprintf("%d", s.CompanyCount))
		st.field(&b, "Total layoffs", fmt.Sprintf("%d", s.TotalLayoffs))
		st.field(&b, "Average layoffs", fmt.Sprintf("%.2f", s.AverageLayoffs))
		st.field(&b, "Average year", fmt.Sprintf("%.2f", s.AverageYear))
		st.field(&b, "Median", fmt.Sprintf("%.2f", row.Median))
		st.field(&b, "Mode", fmt.Sprintf("%d", row.Mode))
		st.field(&b, "Std deviation", fmt.Sprintf("%.2f", row.StdDeviation))
		b.WriteString(st.faint.Render(separator) + "\n")
	}

	if len(perYear) > 0 {
		b.WriteString(st.title.Render("Average layoffs per year") + "\n")
		years := make([]uint32, 0, len(perYear))
		for y := range perYear {
			if y != 0 {
				years = append(years, y)
			}
		}
		sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
		for _, y := range years {
			st.field(&b, fmt.Sprintf("%d", y), fmt.Sprintf("%.2f", perYear[y]))
		}
		if overall, ok := perYear[0]; ok {
			st.field(&b, "All years", fmt.Sprintf("%.2f", overall))
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Clusters writes a numbered listing of clusters with their size and members.
// When degrees is non-nil each member is followed by its degree.
func Clusters(w io.Writer, clusters [][]string, degrees map[string]int) error {
	st := newStyles(w)
	var b strings.Builder

	for i, c := range clusters {
		b.WriteString(st.title.Render(fmt.Sprintf("Cluster %d:", i+1)) + "\n")
		st.field(&b, "Companies", fmt.Sprintf("%d", len(c)))
		for _, id := range c {
			if degrees != nil {
				fmt.Fprintf(&b, "  %s %s\n", id, st.faint.Render(fmt.Sprintf("(degree %d)", degrees[id])))
				continue
			}
			fmt.Fprintf(&b, "  %s\n", id)
		}
		b.WriteString(st.faint.Render(separator) + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// field writes one indented "label: value" line with a padded label column.
func (st styles) field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", st.label.Render(fmt.Sprintf("%-16s", label+":")), st.value.Render(value))
}
