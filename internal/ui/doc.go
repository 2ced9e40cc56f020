// Package ui provides the FilmFinder terminal interface, built on Bubble Tea.
//
// # Views
//
//   - Search: the search box, recent searches while the box is empty, the
//     result list and a "Page x/y" pager
//   - Details: one movie's full record in a scrollable viewport
//   - Watchlist: liked movies in the order they were liked
//
// A help overlay (?) lists every binding.
//
// # Data Flow
//
// Remote calls never run inside Update. Starting a search takes a ticket
// from state.Store and returns a tea.Cmd that calls the catalog on Bubble
// Tea's goroutine pool; the result comes back as searchResultMsg and is
// handed to Store.Resolve, whose policy decides whether a late response may
// replace a newer one. Detail requests carry a sequence number and a
// response for a movie the user has already left is dropped.
//
// Update is the single place the UI mutates the watchlist, the search
// history and the search state, so no UI code needs its own locking.
//
// # Status Line
//
// The footer shows one line per outcome: a found count, the no-results
// hint, or a message per catalog error kind (invalid request, network,
// unreadable response, incomplete details).
//
// # Themes
//
// Three palettes (Nightfox, Kanagawa, Slate) cycle with T. The choice is
// saved through the prefs slot when a store is configured.
package ui
