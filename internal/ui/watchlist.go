package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleWatchlistKey processes keys for the watchlist view.
func (m Model) handleWatchlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.currentView = ViewSearch
		return m, nil
	}

	items := m.watchlist.Items()
	if len(items) == 0 {
		return m, nil
	}
	last := len(items) - 1
	m.watchRow = clamp(m.watchRow, 0, last)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.watchRow < last {
			m.watchRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.watchRow > 0 {
			m.watchRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.watchRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.watchRow = last
	case key.Matches(msg, m.keys.Open):
		return m.openDetail(items[m.watchRow].ID)
	case key.Matches(msg, m.keys.Like):
		m.toggleLike(items[m.watchRow])
		m.watchRow = clamp(m.watchRow, 0, m.watchlist.Len()-1)
	}
	return m, nil
}

func (m Model) renderWatchlist() string {
	styles := m.theme.Styles()
	items := m.watchlist.Items()
	if len(items) == 0 {
		return styles.FaintText.Render("Your watchlist is empty. Press l on a movie to like it.")
	}

	var b strings.Builder
	start, end := visibleWindow(len(items), m.watchRow, m.contentHeight())
	for i := start; i < end; i++ {
		b.WriteString(m.renderMovieRow(items[i], i == m.watchRow))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) watchlistStatus() (string, statusKind) {
	switch n := m.watchlist.Len(); n {
	case 0:
		return "No liked movies yet.", statusIdle
	case 1:
		return "1 movie in your watchlist.", statusFound
	default:
		return fmt.Sprintf("%d movies in your watchlist.", n), statusFound
	}
}
