package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Get performs a GET against the backend and decodes the JSON response into T.
// A live cache entry for the URL is returned without a network call; on a
// cache miss the successful response body is stored for the client's TTL.
func Get[T any](ctx context.Context, c *Client, path string, token string) Result[T] {
	url := c.baseURL + path

	if payload, ok := c.cache.get(url); ok {
		var data T
		if err := json.Unmarshal(payload, &data); err == nil {
			return success(data)
		}
		// undecodable entry: fall through to the network, which replaces it
	}

	payload, reqErr := c.do(ctx, http.MethodGet, url, token, nil)
	if reqErr != nil {
		return failure[T](reqErr)
	}

	var data T
	if err := json.Unmarshal(payload, &data); err != nil {
		return failure[T](&RequestError{Message: fmt.Sprintf("decoding response: %v", err)})
	}

	c.cache.put(url, payload)
	return success(data)
}

// Post performs a POST against the backend and decodes the JSON response into T.
// Mutations always hit the network; the response cache is never consulted or
// written.
func Post[T any](ctx context.Context, c *Client, path string, token string, body any) Result[T] {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return failure[T](&RequestError{Message: fmt.Sprintf("marshaling request body: %v", err)})
	}

	payload, reqErr := c.do(ctx, http.MethodPost, c.baseURL+path, token, jsonData)
	if reqErr != nil {
		return failure[T](reqErr)
	}

	var data T
	if err := json.Unmarshal(payload, &data); err != nil {
		return failure[T](&RequestError{Message: fmt.Sprintf("decoding response: %v", err)})
	}

	return success(data)
}

// do issues the request and normalizes the outcome.
//
// Exactly one network attempt is made for non-5xx outcomes; when the first
// response is a 5xx the request is retried exactly once and the second
// outcome is final, whatever it is.
func (c *Client) do(ctx context.Context, method, url, token string, body []byte) ([]byte, *RequestError) {
	res, err := c.attempt(ctx, method, url, token, body)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("network error: %v", err)}
	}

	if res.StatusCode >= http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()

		res, err = c.attempt(ctx, method, url, token, body)
		if err != nil {
			return nil, &RequestError{Message: fmt.Sprintf("network error: %v", err)}
		}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, &RequestError{Message: "Request failed", Status: res.StatusCode}
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("reading response body: %v", err)}
	}

	return payload, nil
}

// attempt builds and sends one request. The body is re-read from the buffered
// bytes on each attempt so retries resend the full payload.
func (c *Client) attempt(ctx context.Context, method, url, token string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	// forward the dashboard request id for correlation in the backend logs
	if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	} else {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	return c.httpClient.Do(req)
}

// Ping reports whether the backend is reachable. Bypasses the response cache.
func (c *Client) Ping(ctx context.Context) error {
	if _, reqErr := c.do(ctx, http.MethodGet, c.baseURL+"/api/health", "", nil); reqErr != nil {
		return reqErr
	}
	return nil
}
