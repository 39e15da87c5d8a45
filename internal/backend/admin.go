package backend

import "context"

// BatchGrade marks a batch of picks against actual game outcomes.
// Commissioner-only on the backend side.
func (c *Client) BatchGrade(ctx context.Context, token string, req BatchGradeRequest) Result[BatchGradeResult] {
	return Post[BatchGradeResult](ctx, c, "/api/admin/batch-grade", token, req)
}
