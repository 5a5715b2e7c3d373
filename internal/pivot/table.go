// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

// Package pivot accumulates commit contributions into a sparse
// two-dimensional table and renders it as an aligned text grid.
package pivot

// Side selects one dimension of a Table.
type Side int

const (
	// X is the row dimension.
	X Side = iota
	// Y is the column dimension.
	Y
)

type key struct {
	x, y string
}

// Table is a sparse mapping from (x, y) label pairs to running sums.
// It only grows; there is no removal.
type Table struct {
	cells map[key]int64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cells: make(map[key]int64)}
}

// Accumulate adds delta to the cell at (x, y), starting absent cells at 0.
func (t *Table) Accumulate(x, y string, delta int64) {
	t.cells[key{x, y}] += delta
}

// Get returns the sum at (x, y) and whether the cell was ever touched.
func (t *Table) Get(x, y string) (int64, bool) {
	v, ok := t.cells[key{x, y}]
	return v, ok
}

// Len returns the number of distinct label pairs.
func (t *Table) Len() int {
	return len(t.cells)
}

// Sum returns the total over all cells.
func (t *Table) Sum() int64 {
	var total int64
	for _, v := range t.cells {
		total += v
	}
	return total
}

// Labels returns every label observed on side, in no particular order and
// possibly with duplicates.
func (t *Table) Labels(side Side) []string {
	out := make([]string, 0, len(t.cells))
	for k := range t.cells {
		if side == X {
			out = append(out, k.x)
		} else {
			out = append(out, k.y)
		}
	}
	return out
}
