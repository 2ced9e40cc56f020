package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View switching
	FocusSearch   key.Binding
	ViewWatchlist key.Binding

	// Results
	Open     key.Binding
	Like     key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Search input
	Submit      key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),

		// View switching
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ViewWatchlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Watchlist"),
		),

		// Results
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open details"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Like/unlike"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Previous page"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Search input
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "Older search"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "Newer search"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.Open, k.Like, k.NextPage, k.PrevPage, k.ViewWatchlist, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Search
		{k.FocusSearch, k.Submit, k.HistoryPrev, k.HistoryNext},
		// Results
		{k.Open, k.Like, k.NextPage, k.PrevPage},
		// Navigation
		{k.Up, k.Down, k.Top, k.Bottom, k.ViewWatchlist, k.Escape},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// inputHelp is shown while the search box has focus.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.HistoryPrev, k.HistoryNext, k.Escape}
}
