package omdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const opDetails = "details"

// Details fetches the full record for one catalog id. Decoding is strict and
// structural: every field must be present as a string, whatever the upstream
// Response flag says.
func (c *Client) Details(ctx context.Context, id string) (MovieDetail, error) {
	if c == nil {
		return MovieDetail{}, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return MovieDetail{}, newError(opDetails, KindInvalidRequest, fmt.Errorf("id is required"))
	}

	params := url.Values{}
	params.Set("i", id)

	body, err := c.get(ctx, opDetails, params)
	if err != nil {
		return MovieDetail{}, err
	}
	detail, err := decodeDetail(body)
	if err != nil {
		c.logger.Debug("details rejected", "id", id, "error", err)
		return MovieDetail{}, err
	}
	return detail, nil
}

func decodeDetail(body []byte) (MovieDetail, error) {
	if !json.Valid(body) {
		return MovieDetail{}, newError(opDetails, KindMalformedResponse, fmt.Errorf("body is not valid JSON"))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return MovieDetail{}, newError(opDetails, KindDecoding, fmt.Errorf("expected a JSON object"))
	}

	var detail MovieDetail
	for _, field := range detailFields(&detail) {
		value, ok := raw[field.key]
		if !ok {
			return MovieDetail{}, newError(opDetails, KindDecoding, fmt.Errorf("missing field %q", field.key))
		}
		trimmed := bytes.TrimSpace(value)
		if len(trimmed) == 0 || trimmed[0] != '"' || json.Unmarshal(trimmed, field.dest) != nil {
			return MovieDetail{}, newError(opDetails, KindDecoding, fmt.Errorf("field %q: expected string", field.key))
		}
	}
	return detail, nil
}
