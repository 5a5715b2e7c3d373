// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package pivot

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/paulkoerbitz/git-pivot/internal/category"
	"github.com/paulkoerbitz/git-pivot/internal/commit"
	"github.com/paulkoerbitz/git-pivot/internal/statistic"
)

// Pivot is a per-commit statistic that sums a statistic into a table keyed by
// two categories.
type Pivot struct {
	X, Y      category.Selector
	Statistic statistic.Selector

	table *Table
	title *color.Color
}

// New returns a Pivot with an empty table.
func New(x, y category.Selector, stat statistic.Selector) *Pivot {
	return &Pivot{X: x, Y: y, Statistic: stat, table: NewTable(), title: color.New(color.Bold)}
}

// Name returns "pivot".
func (p *Pivot) Name() string { return "pivot" }

// Table exposes the accumulated cells.
func (p *Pivot) Table() *Table { return p.table }

// DisableColor prints the title without escape codes even when color is
// globally enabled.
func (p *Pivot) DisableColor() { p.title.DisableColor() }

// ProcessCommit adds the contribution of rec to its (x, y) cell.
func (p *Pivot) ProcessCommit(rec commit.Record) {
	p.table.Accumulate(
		category.Extract(rec, p.X),
		category.Extract(rec, p.Y),
		statistic.Evaluate(rec, p.Statistic),
	)
}

// Axes resolves the row and column labels for the current table.
func (p *Pivot) Axes() (xAxis, yAxis []string) {
	return ResolveAxis(p.X, p.table, X), ResolveAxis(p.Y, p.table, Y)
}

// PrintResult writes the title line followed by the rendered table.
func (p *Pivot) PrintResult(w io.Writer) error {
	if _, err := p.title.Fprintf(w, "Statistic for %s\n", p.Statistic); err != nil {
		return fmt.Errorf("print pivot: %w", err)
	}
	xAxis, yAxis := p.Axes()
	if _, err := fmt.Fprintln(w, Render(xAxis, yAxis, p.table)); err != nil {
		return fmt.Errorf("print pivot: %w", err)
	}
	return nil
}
