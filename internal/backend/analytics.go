package backend

import "context"

// ROITrends fetches the per-week return-on-investment series
func (c *Client) ROITrends(ctx context.Context, token string) Result[[]ROITrendPoint] {
	return Get[[]ROITrendPoint](ctx, c, "/api/analytics/roi-trends", token)
}

// StreakLeaders fetches the current and all-time longest win streaks
func (c *Client) StreakLeaders(ctx context.Context, token string) Result[[]StreakLeader] {
	return Get[[]StreakLeader](ctx, c, "/api/analytics/streaks", token)
}
