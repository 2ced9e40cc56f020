package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/filmfinder/internal/omdb"
)

// handleInputKey processes keys while the search box has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		query := strings.TrimSpace(m.input.Value())
		if m.history != nil {
			// Failures are logged by the history itself.
			_ = m.history.Record(query)
		}
		m.historyIdx = -1
		m.input.Blur()
		return m.startSearch(query, 1)

	case key.Matches(msg, m.keys.Escape):
		m.historyIdx = -1
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrev):
		m.recallHistory(1)
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.recallHistory(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recallHistory moves through recent searches, shell style: +1 is older.
func (m *Model) recallHistory(step int) {
	if m.history == nil {
		return
	}
	terms := m.history.Terms()
	if len(terms) == 0 {
		return
	}
	next := m.historyIdx + step
	if next < 0 {
		m.historyIdx = -1
		m.input.SetValue("")
		return
	}
	next = clamp(next, 0, len(terms)-1)
	m.historyIdx = next
	m.input.SetValue(terms[next])
	m.input.CursorEnd()
}

// handleResultsKey processes keys for the result list.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.searches.Snapshot()
	movies := snap.Result.Movies
	last := len(movies) - 1

	switch {
	case key.Matches(msg, m.keys.NextPage):
		if snap.HasResult && snap.Result.HasNext() {
			return m.startSearch(snap.Result.Query, snap.Result.Page+1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if snap.HasResult && snap.Result.HasPrev() {
			return m.startSearch(snap.Result.Query, snap.Result.Page-1)
		}
		return m, nil
	}

	if len(movies) == 0 {
		return m, nil
	}
	m.selectedRow = clamp(m.selectedRow, 0, last)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < last {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = last
	case key.Matches(msg, m.keys.Open):
		return m.openDetail(movies[m.selectedRow].ID)
	case key.Matches(msg, m.keys.Like):
		m.toggleLike(movies[m.selectedRow])
	}
	return m, nil
}

// startSearch issues a request for query and page. Earlier requests are
// left running; the state store's policy decides which result is shown.
func (m Model) startSearch(query string, page int) (tea.Model, tea.Cmd) {
	ticket := m.searches.Begin(query, page)
	m.logger.Debug("search started", "query", query, "page", page, "seq", ticket.Seq)
	return m, tea.Batch(searchCmd(m.ctx, m.catalog, ticket), m.spinner.Tick)
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("search failed",
			"query", msg.ticket.Query,
			"page", msg.ticket.Page,
			"kind", omdb.KindOf(msg.err).String(),
			"error", msg.err)
	}
	if !m.searches.Resolve(msg.ticket, msg.page, msg.err) {
		m.logger.Debug("discarded stale search result", "query", msg.ticket.Query, "seq", msg.ticket.Seq)
		return m, nil
	}
	if msg.err == nil {
		m.selectedRow = 0
	}
	return m, nil
}

// renderSearch renders the search box, recent searches and results.
func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	snap := m.searches.Snapshot()

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// input, blank line and pager
	rows := m.contentHeight() - 3
	if (m.input.Focused() && m.input.Value() == "") || m.historyIdx >= 0 {
		if recent := m.renderRecent(); recent != "" {
			b.WriteString(recent)
			return b.String()
		}
	}

	movies := snap.Result.Movies
	if len(movies) == 0 {
		return b.String()
	}

	start, end := visibleWindow(len(movies), m.selectedRow, rows)
	for i := start; i < end; i++ {
		b.WriteString(m.renderMovieRow(movies[i], i == m.selectedRow && !m.input.Focused()))
		b.WriteString("\n")
	}
	if pager := pagerText(snap); pager != "" {
		hint := ""
		if snap.Result.HasPrev() {
			hint += "  p prev"
		}
		if snap.Result.HasNext() {
			hint += "  n next"
		}
		b.WriteString(styles.AccentText.Render(pager))
		b.WriteString(styles.FaintText.Render(hint))
	}
	return b.String()
}

// renderRecent lists recent search terms, newest first.
func (m Model) renderRecent() string {
	if m.history == nil {
		return ""
	}
	terms := m.history.Terms()
	if len(terms) == 0 {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("Recent searches"))
	b.WriteString("\n")
	for i, term := range terms {
		line := fmt.Sprintf(" %d  %s", i+1, term)
		if i == m.historyIdx {
			b.WriteString(styles.Selected.Render(padRight(line, 30)))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMovieRow renders one summary as "♥ Title (Year)  id".
func (m Model) renderMovieRow(movie omdb.MovieSummary, selected bool) string {
	styles := m.theme.Styles()

	marker := "  "
	if m.watchlist.Contains(movie.ID) {
		marker = styles.Heart.Render("♥") + " "
	}

	titleWidth := m.width - 24
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := padRight(truncate(movie.Title, titleWidth), titleWidth)
	text := fmt.Sprintf("%s  %s  %s", title, movie.Year, movie.ID)
	if selected {
		return marker + styles.Selected.Render(text)
	}
	return marker + styles.Text.Render(title) + "  " +
		styles.MutedText.Render(movie.Year) + "  " +
		styles.FaintText.Render(movie.ID)
}
