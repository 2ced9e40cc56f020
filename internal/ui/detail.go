package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/filmfinder/internal/omdb"
)

// handleDetailKey processes keys for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = m.previousView
		if m.currentView == ViewDetail {
			m.currentView = ViewSearch
		}
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if m.detail.loaded {
			m.toggleLike(m.detail.detail.Summary())
			m.updateDetailViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleDetailResult applies a detail response unless the user has since
// opened another movie.
func (m Model) handleDetailResult(msg detailResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.detail.seq {
		m.logger.Debug("discarded stale details", "id", msg.id)
		return m, nil
	}
	m.detail.loading = false
	if msg.err != nil {
		m.detail.err = msg.err
		m.logger.Warn("details failed",
			"id", msg.id,
			"kind", omdb.KindOf(msg.err).String(),
			"error", msg.err)
	} else {
		m.detail.detail = msg.detail
		m.detail.loaded = true
	}
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
	return m, nil
}

func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.SetContent(m.detailContent())
}

func (m Model) renderDetail() string {
	return m.detailViewport.View()
}

// detailContent renders the detail body for the viewport.
func (m Model) detailContent() string {
	styles := m.theme.Styles()

	switch {
	case m.detail.loading:
		return m.spinner.View() + " " + styles.MutedText.Render("Loading details for "+m.detail.id+"...")
	case m.detail.err != nil:
		return styles.DangerText.Render(ErrorText(m.detail.err))
	case !m.detail.loaded:
		return styles.FaintText.Render("Select a movie to see its details.")
	}

	d := m.detail.detail
	var b strings.Builder

	title := styles.Text.Bold(true).Render(d.Title)
	if d.Year != "" {
		title += styles.MutedText.Render(" (" + d.Year + ")")
	}
	if m.watchlist.Contains(d.IMDbID) {
		title = styles.Heart.Render("♥") + " " + title
	}
	b.WriteString(title)
	b.WriteString("\n")
	if line := joinNonEmpty(" · ", d.Rated, d.Runtime, d.Genre); line != "" {
		b.WriteString(styles.AccentText.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(styles.Text.Render(orDash(d.Plot))))
	b.WriteString("\n\n")

	rating := orDash(d.IMDbRating)
	if votes := orDash(d.IMDbVotes); votes != "-" {
		rating = fmt.Sprintf("%s (%s votes)", rating, votes)
	}
	fields := []struct {
		label string
		value string
	}{
		{"Director", d.Director},
		{"Writer", d.Writer},
		{"Actors", d.Actors},
		{"Released", d.Released},
		{"Language", d.Language},
		{"Country", d.Country},
		{"Awards", d.Awards},
		{"Rating", rating},
		{"Type", d.Type},
		{"IMDb ID", d.IMDbID},
		{"Poster", d.Poster},
	}
	for _, f := range fields {
		b.WriteString(styles.Label.Render(f.label))
		b.WriteString(styles.Text.Render(orDash(f.value)))
		b.WriteString("\n")
	}
	return b.String()
}

// detailStatus describes the detail view for the status line.
func (m Model) detailStatus() (string, statusKind) {
	switch {
	case m.detail.loading:
		return "Loading details...", statusLoading
	case m.detail.err != nil:
		return ErrorText(m.detail.err), statusError
	case !m.detail.loaded:
		return "", statusIdle
	case m.watchlist.Contains(m.detail.detail.IMDbID):
		return "In your watchlist. Press l to remove it.", statusFound
	default:
		return "Press l to add this movie to your watchlist.", statusIdle
	}
}
