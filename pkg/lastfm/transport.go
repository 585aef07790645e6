package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// apiErrorBody is the JSON error envelope Last.fm returns in place of a result.
type apiErrorBody struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Call makes a single GET request to the Last.fm API and returns the raw
// JSON body.
//
// The method, user, api_key and format=json parameters are injected and take
// precedence over caller-supplied params. A non-2xx status yields an
// *HTTPError without parsing the body. A successful response that is not
// JSON yields ErrInvalidResponse, and one carrying a Last.fm error envelope
// yields an *Error. Otherwise the body is returned unmodified; shape
// validation is left to Normalize.
func (c *Client) Call(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set("method", method)
	query.Set("user", c.username)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	reqURL.RawQuery = query.Encode()

	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "fmnotes/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logDebugf("lastfm: %s returned status %d", method, resp.StatusCode)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Method: method}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if !json.Valid(body) {
		c.logDebugf("lastfm: %s returned a non-JSON body", method)
		return nil, fmt.Errorf("invalid JSON response from %s: %w", method, ErrInvalidResponse)
	}

	var apiErr apiErrorBody
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != 0 {
		return nil, &Error{Code: apiErr.Error, Message: apiErr.Message}
	}

	c.logDebugf("lastfm: %s succeeded (%d bytes)", method, len(body))
	return body, nil
}
