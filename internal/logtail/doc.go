// Package logtail reads the tail of the application log and renders its JSON
// records for people.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded no
// matter how large the file grows. It returns lines oldest first and treats a
// missing file as empty. Files are opened through afero so tests can use an
// in-memory filesystem.
//
// FormatLine turns a slog JSON record into
//
//	2026-01-02 15:04:05 INFO  search resolved page=1 query=alien
//
// with attributes sorted by key. Anything that is not a JSON record passes
// through unchanged, so rotated plain-text logs still display.
package logtail
