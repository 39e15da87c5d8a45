package auth

import (
	"context"

	"github.com/pickem-crew/pickem-dashboard/internal/backend"
)

type contextKey struct {
	name string
}

var accessTokenDetailsKey = contextKey{"access_token_details"}

// ContextWithAccessTokenDetails stores the authenticated session details for
// downstream handlers. Set by RequireAuth.
func ContextWithAccessTokenDetails(ctx context.Context, details *backend.AccessTokenDetails) context.Context {
	return context.WithValue(ctx, accessTokenDetailsKey, details)
}

func ContextAccessTokenDetails(ctx context.Context) (*backend.AccessTokenDetails, bool) {
	details, ok := ctx.Value(accessTokenDetailsKey).(*backend.AccessTokenDetails)
	return details, ok
}
