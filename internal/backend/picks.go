package backend

import (
	"context"
	"net/url"
)

// Picks lists the authenticated user's picks, optionally filtered.
// The query string is part of the cache key, so differently-filtered listings
// are cached independently.
func (c *Client) Picks(ctx context.Context, token string, filter PickFilter) Result[[]Pick] {
	path := "/api/picks"

	q := url.Values{}
	if filter.Season != "" {
		q.Add("season", filter.Season)
	}
	if filter.Week != "" {
		q.Add("week", filter.Week)
	}
	if filter.Status != "" {
		q.Add("status", filter.Status)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	return Get[[]Pick](ctx, c, path, token)
}

// SubmitPick records a new pick for the authenticated user
func (c *Client) SubmitPick(ctx context.Context, token string, submission PickSubmission) Result[Pick] {
	return Post[Pick](ctx, c, "/api/picks", token, submission)
}
