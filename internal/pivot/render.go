// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package pivot

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	cellSep      = " | "
	separatorSep = "-+-"
)

// Render lays out table as a text grid with one row per xAxis label and one
// column per yAxis label. The first row is a header (blank corner followed by
// the y labels) and the second a dash separator. Cells absent from the table
// render as "0". Every column is right-aligned to its widest cell. Rows are
// joined by newlines with no trailing newline.
func Render(xAxis, yAxis []string, table *Table) string {
	rows := make([][]string, 0, len(xAxis)+1)

	header := make([]string, 0, len(yAxis)+1)
	header = append(header, "")
	header = append(header, yAxis...)
	rows = append(rows, header)

	for _, x := range xAxis {
		row := make([]string, 0, len(yAxis)+1)
		row = append(row, x)
		for _, y := range yAxis {
			v, _ := table.Get(x, y)
			row = append(row, strconv.FormatInt(v, 10))
		}
		rows = append(rows, row)
	}

	widths := columnWidths(rows)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(rows[0], widths))
	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	lines = append(lines, strings.Join(dashes, separatorSep))
	for _, row := range rows[1:] {
		lines = append(lines, formatRow(row, widths))
	}
	return strings.Join(lines, "\n")
}

// columnWidths returns, per column, the largest character count of any cell.
func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = padLeft(cell, widths[i])
	}
	return strings.Join(parts, cellSep)
}

// padLeft right-aligns s in a field of width characters.
func padLeft(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
