package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vidsense/types"
)

// errorBody is the structured error payload the service attaches to non-2xx
// responses. FastAPI-style services use "detail", others use "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// doJSONRequest performs a JSON request with the given method, path, payload, and result.
// It handles marshaling the payload, creating the request, executing it, and unmarshaling
// the response. If result is nil, the response body is not decoded.
func (c *AnalysisClient) doJSONRequest(ctx context.Context, method, path string, payload, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &types.TransportError{Err: err}
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &types.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &types.ParseError{Err: err}
		}
	}

	return nil
}

// errorFromResponse builds a TransportError from a non-2xx response,
// preferring the service-supplied error body over a generic message.
func errorFromResponse(resp *http.Response) error {
	message := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err == nil && len(bodyBytes) > 0 {
		var eb errorBody
		if json.Unmarshal(bodyBytes, &eb) == nil {
			if eb.Detail != "" {
				message = eb.Detail
			} else if eb.Message != "" {
				message = eb.Message
			}
		}
	}

	return &types.TransportError{StatusCode: resp.StatusCode, Message: message}
}
