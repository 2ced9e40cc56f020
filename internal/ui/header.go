package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar: logo, view name and watchlist count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("FilmFinder", styles.Logo) + bg.Spaces(2) +
		bg.Render(m.currentView.String(), styles.AccentText)
	right := bg.Render(fmt.Sprintf("♥ %d", m.watchlist.Len()), styles.Heart) + bg.Spaces(2) +
		bg.Render(m.theme.Name, styles.FaintText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := bg.Spaces(1) + left + bg.Spaces(gap) + right + bg.Spaces(1)
	return bg.FillLine(line, m.width)
}

// renderFooter renders the status line and key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	text, kind := m.status()
	var status string
	if text != "" {
		badge := styles.StatusStyle(kind).Render(statusLabel(kind))
		if kind == statusLoading {
			badge = m.spinner.View() + " " + badge
		}
		status = badge + " " + statusTextStyle(styles, kind).Render(text)
	}

	bindings := m.keys.ShortHelp()
	if m.currentView == ViewSearch && m.input.Focused() {
		bindings = m.keys.inputHelp()
	}
	hints := m.help.ShortHelpView(bindings)

	return strings.Join([]string{status, hints}, "\n")
}

// status returns the status line for the active view.
func (m Model) status() (string, statusKind) {
	switch m.currentView {
	case ViewDetail:
		return m.detailStatus()
	case ViewWatchlist:
		return m.watchlistStatus()
	default:
		return searchStatus(m.searches.Snapshot())
	}
}

func statusTextStyle(styles Styles, kind statusKind) lipgloss.Style {
	switch kind {
	case statusFound:
		return styles.SuccessText
	case statusError:
		return styles.DangerText
	default:
		return styles.Text
	}
}

func statusLabel(kind statusKind) string {
	switch kind {
	case statusLoading:
		return "BUSY"
	case statusFound:
		return "OK"
	case statusEmpty:
		return "EMPTY"
	case statusError:
		return "ERROR"
	default:
		return "READY"
	}
}
