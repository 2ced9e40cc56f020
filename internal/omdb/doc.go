// Package omdb provides an HTTP client for the OMDb movie catalog API.
//
// # Overview
//
// The client covers the two read-only endpoints the application needs:
//
//   - Search: GET {base}?apikey={key}&s={query}&page={page}
//   - Details: GET {base}?apikey={key}&i={id}
//
// Both are issued once per call. There is no caching, retrying or
// request deduplication; callers decide when to ask again.
//
// # Client Usage
//
//	client, err := omdb.NewClient(omdb.Options{APIKey: key})
//	if err != nil {
//		return err
//	}
//
//	page, err := client.Search(ctx, "batman", 1)
//	switch {
//	case err != nil:
//		// *omdb.Error, see below
//	case page.NoResults():
//		// upstream had nothing usable; page.Message may explain why
//	default:
//		// page.Movies, page.PageCount
//	}
//
//	detail, err := client.Details(ctx, page.Movies[0].ID)
//
// # Search Mapping
//
// Search results are mapped defensively. Missing or non-string fields fall
// back to DefaultTitle, DefaultYear, DefaultPoster and DefaultID and no item
// is ever dropped. PageCount is ceil(totalResults/10) when totalResults is a
// non-negative integer and 1 otherwise. A body without a "Search" array
// (zero matches, "Too many results.", a bad API key) is reported as
// StatusNoResults rather than an error.
//
// # Detail Decoding
//
// Details decode strictly: each of the 19 documented keys must be present
// with a string value. The Response flag is not consulted, so a record with
// Response "False" still decodes when its fields are all there.
//
// # Error Handling
//
// Every failure is an *Error carrying a Kind:
//
//   - KindInvalidRequest: page < 1, invalid UTF-8 query, blank id
//   - KindTransport: DNS, refused connection, timeout, body read, HTTP 5xx
//   - KindMalformedResponse: body is not JSON
//   - KindDecoding: detail body is JSON of the wrong shape
//
// Use errors.Is with ErrInvalidRequest, ErrTransport, ErrMalformedResponse
// or ErrDecoding, or KindOf to switch on the kind.
//
// # Thread Safety
//
// A Client is safe for concurrent use.
package omdb
