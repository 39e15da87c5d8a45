package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pickem-crew/pickem-dashboard/internal/config"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user with the backend API.
// Returns the access token details plus the refresh token cookie set by the
// backend, which the dashboard forwards to the browser.
func (c *Client) Login(ctx context.Context, email, password string) (*AccessTokenDetails, *http.Cookie, error) {
	jsonData, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, nil, &RequestError{Message: fmt.Sprintf("marshaling login request: %v", err)}
	}

	res, err := c.attempt(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/login", "", jsonData)
	if err != nil {
		return nil, nil, &RequestError{Message: fmt.Sprintf("network error: %v", err)}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, nil, &RequestError{Message: "Request failed", Status: res.StatusCode}
	}

	var details AccessTokenDetails
	if err := json.NewDecoder(res.Body).Decode(&details); err != nil {
		return nil, nil, &RequestError{Message: fmt.Sprintf("decoding access token response: %v", err)}
	}

	refreshTokenCookie := findCookie(res.Cookies(), config.RefreshTokenCookieName)
	if refreshTokenCookie == nil {
		return nil, nil, &RequestError{Message: "refresh token cookie not found in backend response"}
	}

	return &details, refreshTokenCookie, nil
}

// RefreshToken exchanges a refresh token cookie for fresh access token details
// and a rotated refresh token cookie.
func (c *Client) RefreshToken(ctx context.Context, refreshTokenCookie *http.Cookie) (*AccessTokenDetails, *http.Cookie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/refresh", nil)
	if err != nil {
		return nil, nil, &RequestError{Message: fmt.Sprintf("creating refresh request: %v", err)}
	}

	// forward the refresh token cookie from the browser's request
	req.AddCookie(refreshTokenCookie)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &RequestError{Message: fmt.Sprintf("network error: %v", err)}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&errorResp); err != nil || errorResp.Message == "" {
			return nil, nil, &RequestError{Message: "Request failed", Status: res.StatusCode}
		}
		return nil, nil, &RequestError{Message: errorResp.Message, Status: res.StatusCode}
	}

	var details AccessTokenDetails
	if err := json.NewDecoder(res.Body).Decode(&details); err != nil {
		return nil, nil, &RequestError{Message: fmt.Sprintf("decoding access token response: %v", err)}
	}

	newRefreshTokenCookie := findCookie(res.Cookies(), config.RefreshTokenCookieName)
	if newRefreshTokenCookie == nil {
		return nil, nil, &RequestError{Message: "refresh token cookie not found in backend response"}
	}

	return &details, newRefreshTokenCookie, nil
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
