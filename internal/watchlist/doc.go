// Package watchlist holds the user's liked movies.
//
// Store is an ordered set keyed by the external catalog id: Add ignores an id
// that is already present, Remove drops every entry with the id, and entries
// keep insertion order for display. Mutations that change nothing do not
// notify.
//
// Observers register with Subscribe and are called synchronously after each
// effective mutation with a copy of the contents and the new Version. Pull
// based consumers can instead compare Version between reads.
//
// The application constructs one Store at startup and hands the pointer to
// every consumer; there is no package-level instance. Mutations are expected
// to come from the UI's update loop, though the store is also safe for
// concurrent use.
//
// Persist wires a Store to a kv slot so the list survives restarts.
package watchlist
