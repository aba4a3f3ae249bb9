package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout fixes the table's column headers and widths. Widths are measured
// in terminal cells, so wide (CJK) characters count double.
type Layout struct {
	Headers [3]string
	Widths  [3]int
}

// DefaultLayout returns the standard Product/Shop/Cost table layout.
func DefaultLayout() Layout {
	return Layout{
		Headers: [3]string{"Product", "Shop", "Cost"},
		Widths:  [3]int{25, 15, 14},
	}
}

// Render writes c as a bordered table: a header block, then one row per
// product in catalog order, each followed by a border line. Nothing is
// written for an empty catalog.
func Render(w io.Writer, c Catalog, layout Layout) error {
	if len(c) == 0 {
		return nil
	}

	border := borderLine(layout.Widths)

	var b strings.Builder
	b.WriteString(border)
	b.WriteString(row(layout.Widths, layout.Headers))
	b.WriteString(border)

	for _, p := range c {
		b.WriteString(row(layout.Widths, [3]string{p.Name, p.Shop, FormatCost(p.Cost)}))
		b.WriteString(border)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// FormatCost renders a cost with the fewest digits that round-trip.
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}

func borderLine(widths [3]int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	return "+-" + strings.Join(parts, "-+-") + "-+\n"
}

func row(widths [3]int, cells [3]string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = center(cell, widths[i])
	}
	return "| " + strings.Join(parts, " | ") + " |\n"
}

// displayWidth measures text in terminal cells. Ambiguous-width runes (Cyrillic,
// Greek) count as one cell whatever the locale.
var displayWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// center pads s to width cells, putting the odd cell of padding on the
// right. Text wider than the column is left as is.
func center(s string, width int) string {
	gap := width - displayWidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
