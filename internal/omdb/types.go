package omdb

import "fmt"

// Defaults applied when a search result omits a field.
const (
	DefaultTitle  = "No Title"
	DefaultYear   = "0000"
	DefaultPoster = ""
	DefaultID     = "tt-------"
)

// resultsPerPage is the fixed page size of the upstream search endpoint.
const resultsPerPage = 10

// MovieSummary is the list-view representation of a catalog entry.
// Identity is ID; the remaining fields are display data only.
type MovieSummary struct {
	ID        string `json:"id" toml:"id"`
	Title     string `json:"title" toml:"title"`
	Year      string `json:"year" toml:"year"`
	PosterURL string `json:"posterUrl" toml:"poster_url"`
}

// SearchStatus distinguishes a populated page from an empty one.
type SearchStatus int

const (
	StatusFound SearchStatus = iota
	StatusNoResults
)

func (s SearchStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s SearchStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText.
func (s *SearchStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "found":
		*s = StatusFound
	case "no_results":
		*s = StatusNoResults
	default:
		return fmt.Errorf("unknown search status %q", text)
	}
	return nil
}

// SearchPage is one page of search results.
type SearchPage struct {
	Query        string         `json:"query"`
	Page         int            `json:"page"`
	Movies       []MovieSummary `json:"movies"`
	TotalResults int            `json:"totalResults"`
	PageCount    int            `json:"pageCount"`
	Status       SearchStatus   `json:"status"`
	// Message carries the upstream Error field, if any.
	Message string `json:"message,omitempty"`
}

// NoResults reports whether the upstream returned no usable result list.
func (p SearchPage) NoResults() bool {
	return p.Status == StatusNoResults
}

// HasNext reports whether a page after this one exists.
func (p SearchPage) HasNext() bool {
	return p.Page < p.PageCount
}

// HasPrev reports whether a page before this one exists.
func (p SearchPage) HasPrev() bool {
	return p.Page > 1
}

// MovieDetail mirrors the detail endpoint payload. Every field is a string by
// upstream convention, including the numeric-looking ones.
type MovieDetail struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	IMDbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Response   string `json:"Response"`
}

// Summary returns the watchlist representation of the detail record.
func (d MovieDetail) Summary() MovieSummary {
	return MovieSummary{
		ID:        d.IMDbID,
		Title:     d.Title,
		Year:      d.Year,
		PosterURL: d.Poster,
	}
}

// detailFields lists the required detail keys in upstream order, each paired
// with the struct field it populates.
func detailFields(d *MovieDetail) []struct {
	key  string
	dest *string
} {
	return []struct {
		key  string
		dest *string
	}{
		{"Title", &d.Title},
		{"Year", &d.Year},
		{"Rated", &d.Rated},
		{"Released", &d.Released},
		{"Runtime", &d.Runtime},
		{"Genre", &d.Genre},
		{"Director", &d.Director},
		{"Writer", &d.Writer},
		{"Actors", &d.Actors},
		{"Plot", &d.Plot},
		{"Language", &d.Language},
		{"Country", &d.Country},
		{"Awards", &d.Awards},
		{"Poster", &d.Poster},
		{"imdbRating", &d.IMDbRating},
		{"imdbVotes", &d.IMDbVotes},
		{"imdbID", &d.IMDbID},
		{"Type", &d.Type},
		{"Response", &d.Response},
	}
}
