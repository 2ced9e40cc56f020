package ui

// Layout constants.
const (
	// headerLines and footerLines frame the content area.
	headerLines = 2
	footerLines = 2

	// minListRows keeps lists usable on tiny terminals.
	minListRows = 3

	// detailLabelWidth aligns labels in the detail view.
	detailLabelWidth = 12

	// searchCharLimit bounds the search box.
	searchCharLimit = 120
)

// contentHeight returns the rows available between header and footer.
func (m Model) contentHeight() int {
	h := m.height - headerLines - footerLines
	if h < minListRows {
		return minListRows
	}
	return h
}

// visibleWindow returns the [start, end) slice of n rows to draw so that
// selected stays visible within rows lines.
func visibleWindow(n, selected, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := selected - rows/2
	start = clamp(start, 0, n-rows)
	return start, start + rows
}
