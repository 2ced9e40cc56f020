package omdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"
)

const opSearch = "search"

// Search runs a keyword query for the given 1-based page. A response without
// a usable result list yields a page with StatusNoResults and a nil error.
func (c *Client) Search(ctx context.Context, query string, page int) (SearchPage, error) {
	if c == nil {
		return SearchPage{}, fmt.Errorf("client is nil")
	}
	if page < 1 {
		return SearchPage{}, newError(opSearch, KindInvalidRequest, fmt.Errorf("page %d out of range", page))
	}
	if !utf8.ValidString(query) {
		return SearchPage{}, newError(opSearch, KindInvalidRequest, fmt.Errorf("query is not valid UTF-8"))
	}

	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, opSearch, params)
	if err != nil {
		return SearchPage{}, err
	}
	result, err := parseSearch(body)
	if err != nil {
		return SearchPage{}, err
	}
	result.Query = query
	result.Page = page
	c.logger.Debug("search resolved",
		"query", query,
		"page", page,
		"status", result.Status.String(),
		"results", len(result.Movies))
	return result, nil
}

// parseSearch maps a raw search body. Only a body that is not JSON at all is
// an error; every other shape degrades to defaults or StatusNoResults.
func parseSearch(body []byte) (SearchPage, error) {
	if !json.Valid(body) {
		return SearchPage{}, newError(opSearch, KindMalformedResponse, fmt.Errorf("body is not valid JSON"))
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil || top == nil {
		return SearchPage{Status: StatusNoResults, PageCount: 1}, nil
	}

	var message string
	if raw, ok := top["Error"]; ok {
		_ = json.Unmarshal(raw, &message)
	}

	rawList, ok := top["Search"]
	if !ok || bytes.Equal(bytes.TrimSpace(rawList), []byte("null")) {
		return SearchPage{Status: StatusNoResults, PageCount: 1, Message: message}, nil
	}
	var items []map[string]any
	if err := json.Unmarshal(rawList, &items); err != nil {
		return SearchPage{Status: StatusNoResults, PageCount: 1, Message: message}, nil
	}

	total, known := parseTotal(top["totalResults"])
	pageCount := 1
	if known {
		pageCount = pagesFor(total)
	}

	movies := make([]MovieSummary, 0, len(items))
	for _, item := range items {
		movies = append(movies, summaryFromItem(item))
	}

	return SearchPage{
		Movies:       movies,
		TotalResults: total,
		PageCount:    pageCount,
		Status:       StatusFound,
		Message:      message,
	}, nil
}

// pagesFor is ceil(total/resultsPerPage) without overflowing near MaxInt.
func pagesFor(total int) int {
	pages := total / resultsPerPage
	if total%resultsPerPage != 0 {
		pages++
	}
	return pages
}

func summaryFromItem(item map[string]any) MovieSummary {
	return MovieSummary{
		ID:        stringOr(item, "imdbID", DefaultID),
		Title:     stringOr(item, "Title", DefaultTitle),
		Year:      stringOr(item, "Year", DefaultYear),
		PosterURL: stringOr(item, "Poster", DefaultPoster),
	}
}

func stringOr(item map[string]any, key, fallback string) string {
	if v, ok := item[key].(string); ok {
		return v
	}
	return fallback
}

// parseTotal accepts the upstream numeric string and, leniently, a JSON
// integer. ok is false when the value is missing, negative or non-numeric.
func parseTotal(raw json.RawMessage) (int, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}
	var n int
	if err := json.Unmarshal(trimmed, &n); err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
