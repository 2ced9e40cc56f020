package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/filmfinder/internal/history"
	"github.com/five82/filmfinder/internal/kv"
	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/prefs"
	"github.com/five82/filmfinder/internal/state"
	"github.com/five82/filmfinder/internal/watchlist"
)

// View represents the current active view.
type View int

const (
	ViewSearch View = iota
	ViewDetail
	ViewWatchlist
)

func (v View) String() string {
	switch v {
	case ViewDetail:
		return "Details"
	case ViewWatchlist:
		return "Watchlist"
	default:
		return "Search"
	}
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   omdb.Service
	Searches  *state.Store
	History   *history.History
	Watchlist *watchlist.Store
	Prefs     kv.Store // theme persistence; nil disables saving
	ThemeName string
	Logger    *slog.Logger
}

// detailState holds the detail view's request and result.
type detailState struct {
	seq     uint64
	id      string
	loading bool
	detail  omdb.MovieDetail
	loaded  bool
	err     error
}

// Model is the root application state for Bubble Tea. Update is the only
// place the watchlist, history and search state are mutated from the UI.
type Model struct {
	// Dependencies
	ctx       context.Context
	catalog   omdb.Service
	searches  *state.Store
	history   *history.History
	watchlist *watchlist.Store
	prefs     kv.Store
	logger    *slog.Logger

	// UI state
	keys         keyMap
	help         help.Model
	theme        Theme
	currentView  View
	previousView View
	width        int
	height       int
	ready        bool
	showHelp     bool
	spinner      spinner.Model

	// Search state
	input       textinput.Model
	historyIdx  int // -1 when not browsing history
	selectedRow int

	// Watchlist state
	watchRow int

	// Detail state
	detailViewport viewport.Model
	detail         detailState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	searches := opts.Searches
	if searches == nil {
		searches = &state.Store{}
	}
	list := opts.Watchlist
	if list == nil {
		list = watchlist.New()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	input := textinput.New()
	input.Placeholder = "Search movies by title"
	input.Prompt = "/ "
	input.CharLimit = searchCharLimit
	input.Focus()

	m := Model{
		ctx:         ctx,
		catalog:     opts.Catalog,
		searches:    searches,
		history:     opts.History,
		watchlist:   list,
		prefs:       opts.Prefs,
		logger:      logger.With("component", "ui"),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewSearch,
		input:       input,
		historyIdx:  -1,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.applyTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.detailViewport.Width = msg.Width
		m.detailViewport.Height = m.contentHeight()
		m.updateDetailViewport()
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case detailResultMsg:
		return m.handleDetailResult(msg)

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.detail.loading {
			m.updateDetailViewport()
		}
		return m, cmd
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewSearch && m.input.Focused() {
		return m.handleInputKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		m.currentView = ViewSearch
		m.historyIdx = -1
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.ViewWatchlist):
		m.currentView = ViewWatchlist
		m.watchRow = clamp(m.watchRow, 0, m.watchlist.Len()-1)
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewSearch:
		return m.handleResultsKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewWatchlist:
		return m.handleWatchlistKey(msg)
	}
	return m, nil
}

// openDetail switches to the detail view and requests id.
func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	m.previousView = m.currentView
	m.currentView = ViewDetail
	m.detail = detailState{seq: m.detail.seq + 1, id: id, loading: true}
	m.updateDetailViewport()
	return m, tea.Batch(detailCmd(m.ctx, m.catalog, m.detail.seq, id), m.spinner.Tick)
}

// toggleLike flips movie's watchlist membership.
func (m *Model) toggleLike(movie omdb.MovieSummary) {
	liked := m.watchlist.Toggle(movie)
	m.logger.Debug("watchlist toggled", "id", movie.ID, "liked", liked, "entries", m.watchlist.Len())
}

func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	if m.prefs == nil {
		return
	}
	if err := prefs.Save(m.prefs, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("failed to save theme", "theme", m.theme.Name, "error", err)
	}
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.InfoText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.updateDetailViewport()
}

func (m Model) loading() bool {
	return m.searches.Snapshot().Loading() || m.detail.loading
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewSearch:
		return m.renderSearch()
	case ViewDetail:
		return m.renderDetail()
	case ViewWatchlist:
		return m.renderWatchlist()
	default:
		return ""
	}
}

// Messages

type searchResultMsg struct {
	ticket state.Ticket
	page   omdb.SearchPage
	err    error
}

type detailResultMsg struct {
	seq    uint64
	id     string
	detail omdb.MovieDetail
	err    error
}

// Commands

func searchCmd(ctx context.Context, catalog omdb.Service, ticket state.Ticket) tea.Cmd {
	return func() tea.Msg {
		if catalog == nil {
			return searchResultMsg{ticket: ticket, err: errNoCatalog}
		}
		page, err := catalog.Search(ctx, ticket.Query, ticket.Page)
		return searchResultMsg{ticket: ticket, page: page, err: err}
	}
}

func detailCmd(ctx context.Context, catalog omdb.Service, seq uint64, id string) tea.Cmd {
	return func() tea.Msg {
		if catalog == nil {
			return detailResultMsg{seq: seq, id: id, err: errNoCatalog}
		}
		detail, err := catalog.Details(ctx, id)
		return detailResultMsg{seq: seq, id: id, detail: detail, err: err}
	}
}

var errNoCatalog = errors.New("no movie catalog configured")

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
