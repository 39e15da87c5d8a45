package backend

import (
	"context"
	"fmt"
	"net/url"
)

// Leaderboard fetches the standings for a season. The season value is
// caller-supplied, so it is escaped to stay a single path segment.
func (c *Client) Leaderboard(ctx context.Context, token string, season string) Result[Leaderboard] {
	return Get[Leaderboard](ctx, c, fmt.Sprintf("/api/leaderboard/season/%s", url.PathEscape(season)), token)
}
