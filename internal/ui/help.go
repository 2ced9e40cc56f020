package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	// Help content
	sections := []helpSection{
		{
			title: "Search",
			items: []helpItem{
				{"/", "Focus search box"},
				{"enter", "Run search"},
				{"up/down", "Recall recent searches"},
				{"esc", "Leave search box"},
			},
		},
		{
			title: "Results",
			items: []helpItem{
				{"j/k", "Move down/up"},
				{"g/G", "Go to top/bottom"},
				{"enter", "Open details"},
				{"l", "Like/unlike"},
				{"n/p", "Next/previous page"},
			},
		},
		{
			title: "Views",
			items: []helpItem{
				{"w", "Watchlist"},
				{"esc", "Back"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	// Build help content
	var b strings.Builder

	// Title
	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for _, section := range sections {
		// Section title
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			// Key
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			// Description
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	b.WriteString(styles.AccentText.Bold(true).Render("Themes"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Join(ThemeNames(), " · ")))

	// Build the modal
	content := b.String()

	// Calculate modal dimensions
	modalWidth := 40

	modal := styles.Panel.Width(modalWidth)

	// Center the modal
	modalContent := modal.Render(content)

	// Create overlay
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
