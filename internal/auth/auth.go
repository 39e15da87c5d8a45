package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/config"
)

// AuthService provides authentication and authorization services for the
// dashboard. Token issuance is owned by the backend API; the dashboard only
// stores the opaque token details in a session cookie and forwards the bearer
// token on every backend call.
type AuthService struct {
	backend     *backend.Client
	environment string
}

func NewAuthService(backendClient *backend.Client, environment string) *AuthService {
	return &AuthService{
		backend:     backendClient,
		environment: environment,
	}
}

// AccessTokenStatus represents the status of the access token attached to a
// dashboard request
type AccessTokenStatus int

const (
	TokenMissing AccessTokenStatus = iota // no session cookie, e.g. before login
	TokenInvalid
	TokenExpired
	TokenValid
)

var tokenStatusNames = []string{"TokenMissing", "TokenInvalid", "TokenExpired", "TokenValid"}

func (t AccessTokenStatus) String() string {
	if t < 0 || int(t) >= len(tokenStatusNames) {
		return fmt.Sprintf("TokenStatus(%d)", int(t))
	}
	return tokenStatusNames[t]
}

// SessionFromRequest decodes the access token details stored in the session cookie
func (a *AuthService) SessionFromRequest(r *http.Request) (*backend.AccessTokenDetails, error) {
	cookie, err := r.Cookie(config.SessionCookieName)
	if err != nil {
		return nil, err
	}

	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session cookie: %w", err)
	}

	var details backend.AccessTokenDetails
	if err := json.Unmarshal(decoded, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session cookie: %w", err)
	}

	return &details, nil
}

// CheckTokenStatus inspects the session cookie and classifies the access token
func (a *AuthService) CheckTokenStatus(r *http.Request) AccessTokenStatus {
	details, err := a.SessionFromRequest(r)
	if err != nil {
		return TokenMissing
	}
	return a.CheckAccessTokenStatus(details)
}

// CheckAccessTokenStatus classifies already-decoded access token details
func (a *AuthService) CheckAccessTokenStatus(details *backend.AccessTokenDetails) AccessTokenStatus {
	if details == nil {
		return TokenMissing
	}

	if details.AccessToken == "" {
		return TokenInvalid
	}

	// Parse token without validation to check expiry; signature verification is
	// the backend's job
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	_, _, err := parser.ParseUnverified(details.AccessToken, claims)
	if err != nil {
		return TokenInvalid
	}

	if claims.ExpiresAt == nil {
		return TokenInvalid
	}

	if claims.ExpiresAt.Before(time.Now()) {
		return TokenExpired
	}

	return TokenValid
}

// SetAuthCookies sets the authentication cookies in the dashboard response.
//
// Two cookies are set:
//   - the session cookie, holding the base64-encoded access token details
//   - the refresh token cookie, forwarded verbatim from the backend API
func (a *AuthService) SetAuthCookies(w http.ResponseWriter, details *backend.AccessTokenDetails, refreshTokenCookie *http.Cookie) error {
	isProd := a.environment == "prod"

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal access token details: %w", err)
	}

	// Base64 encode to avoid cookie encoding issues
	encodedDetails := base64.StdEncoding.EncodeToString(detailsJSON)

	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    encodedDetails,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   details.ExpiresIn,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     config.RefreshTokenCookieName,
		Value:    refreshTokenCookie.Value,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   refreshTokenCookie.MaxAge,
	})

	return nil
}

// ClearAuthCookies clears all authentication-related cookies
func (a *AuthService) ClearAuthCookies(w http.ResponseWriter) {
	isProd := a.environment == "prod"

	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     config.RefreshTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
	})
}
