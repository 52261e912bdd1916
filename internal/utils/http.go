package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Shuflduf/gemini-rs/types"
)

// maxErrorBodySize caps error-body reads to prevent unbounded memory
// allocation from rogue responses.
const maxErrorBodySize int64 = 10 * 1024 * 1024

// HeaderOption is a custom header applied to an outgoing request.
type HeaderOption struct {
	Key   string
	Value string
}

// CloseWithLog closes the given closer and logs a warning on failure. Close
// errors never override the primary error of the surrounding operation.
func CloseWithLog(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}

// DoPost performs a synchronous HTTP POST with a JSON body and returns the
// raw response bytes. The response body is always closed before returning.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - Connection failures return the transport error as-is
//   - Non-2xx bodies that decode to the service's error envelope are returned
//     as a *types.APIError; otherwise a generic status error with a body
//     preview is returned
//
// Decoding the success body into a typed value is the caller's concern.
func DoPost(ctx context.Context, client *http.Client, url string, body any, headers ...HeaderOption) (*http.Response, []byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	return doRequest(client, req)
}

// DoGet performs a synchronous HTTP GET and returns the raw response bytes,
// with the same error handling strategy as DoPost.
func DoGet(ctx context.Context, client *http.Client, url string, headers ...HeaderOption) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	return doRequest(client, req)
}

func doRequest(client *http.Client, req *http.Request) (*http.Response, []byte, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, respBody, statusError(res.StatusCode, respBody)
	}

	return res, respBody, nil
}

// statusError converts a non-2xx body into a *types.APIError when it carries
// the service's error envelope, or a generic error with a truncated preview
// otherwise.
func statusError(statusCode int, body []byte) error {
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error
	}
	return fmt.Errorf("non-2xx status %d: %s", statusCode, TruncateString(string(body), 500))
}
