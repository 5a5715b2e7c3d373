// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/paulkoerbitz/git-pivot/internal/commit"
)

func init() {
	Register("punchcard", func() PerCommitStatistic { return NewPunchcard() })
}

// punchWidth is the fixed width of every punchcard cell.
const punchWidth = 5

var punchDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Punchcard counts commits per local weekday and hour.
type Punchcard struct {
	punches [7][24]uint32
	title   *color.Color
}

// NewPunchcard returns an all-zero punchcard.
func NewPunchcard() *Punchcard {
	return &Punchcard{title: color.New(color.Bold)}
}

// Name returns "punchcard".
func (p *Punchcard) Name() string { return "punchcard" }

// DisableColor prints the title without escape codes even when color is
// globally enabled.
func (p *Punchcard) DisableColor() { p.title.DisableColor() }

// ProcessCommit increments the cell for the commit's local weekday and hour.
func (p *Punchcard) ProcessCommit(rec commit.Record) {
	t := rec.LocalTime()
	p.punches[mondayIndex(t.Weekday())][t.Hour()]++
}

// At returns the count for weekday and hour.
func (p *Punchcard) At(day time.Weekday, hour int) uint32 {
	return p.punches[mondayIndex(day)][hour]
}

// Total returns the sum over all 168 cells.
func (p *Punchcard) Total() uint64 {
	var total uint64
	for _, hours := range p.punches {
		for _, n := range hours {
			total += uint64(n)
		}
	}
	return total
}

// mondayIndex maps Monday to 0 and Sunday to 6.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// PrintResult writes the title block and the 7x24 grid.
func (p *Punchcard) PrintResult(w io.Writer) error {
	var b strings.Builder

	cells := make([]string, 24)
	for h := range cells {
		cells[h] = leftPad(uint64(h), punchWidth)
	}
	fmt.Fprintf(&b, "    | %s |\n", strings.Join(cells, " | "))

	dashes := make([]string, 24)
	for i := range dashes {
		dashes[i] = strings.Repeat("-", punchWidth)
	}
	fmt.Fprintf(&b, "----+-%s-+\n", strings.Join(dashes, "-+-"))

	for i, day := range punchDays {
		for h, n := range p.punches[i] {
			cells[h] = leftPad(uint64(n), punchWidth)
		}
		fmt.Fprintf(&b, "%s | %s |\n", day, strings.Join(cells, " | "))
	}

	if _, err := p.title.Fprintln(w, "Punchcard"); err != nil {
		return fmt.Errorf("print punchcard: %w", err)
	}
	if _, err := fmt.Fprintf(w, "=========\n\n%s", b.String()); err != nil {
		return fmt.Errorf("print punchcard: %w", err)
	}
	return nil
}

// leftPad right-aligns n in a field of size characters. Wider values are not
// truncated.
func leftPad(n uint64, size int) string {
	s := strconv.FormatUint(n, 10)
	if len(s) >= size {
		return s
	}
	return strings.Repeat(" ", size-len(s)) + s
}
