// Copyright 2026 The git-pivot Authors
// SPDX-License-Identifier: MIT

package pivot

import (
	"slices"
	"strconv"

	"github.com/paulkoerbitz/git-pivot/internal/category"
)

// Weekdays is the fixed Monday-first order used by weekday axes.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var hours = func() []string {
	out := make([]string, 24)
	for h := range out {
		out[h] = strconv.Itoa(h)
	}
	return out
}()

// ResolveAxis returns the ordered labels to display for sel on the given side
// of table. Bounded categories are enumerated statically, None is the single
// wildcard, and every other category shows the sorted distinct labels
// observed in the table.
func ResolveAxis(sel category.Selector, table *Table, side Side) []string {
	switch sel {
	case category.Hour:
		return slices.Clone(hours)
	case category.DayOfWeek:
		return slices.Clone(Weekdays)
	case category.None:
		return []string{category.Wildcard}
	}

	labels := table.Labels(side)
	slices.Sort(labels)
	return slices.Compact(labels)
}
