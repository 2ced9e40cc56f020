// Package state tracks in-flight searches and the result currently shown.
//
// Every search is started with Begin, which hands out a Ticket carrying a
// monotonically increasing sequence number, and finished with Resolve. The
// Store's Policy decides what happens when responses arrive out of order:
//
//	LastResolvedWins  every response is applied in arrival order
//	DiscardStale      a response older than the last applied one is dropped
//
// A failed request keeps the previous result and records LastError, so the
// UI can keep showing the last good page next to an error line.
//
// Snapshot returns a value copy with its own movie slice; callers may hold it
// across renders without locking. The zero Store is ready to use.
package state
