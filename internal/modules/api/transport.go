package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// transport performs GET requests against the backend base URL. Paths are
// appended verbatim, so callers supply the leading slash.
type transport struct {
	baseURL    string
	httpClient *http.Client
}

func newTransport(baseURL string, httpClient *http.Client) *transport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &transport{baseURL: baseURL, httpClient: httpClient}
}

// get returns the raw JSON body of a successful response. The default JSON
// content type is applied first and caller headers last, so a caller can
// override it. Every request carries a fresh X-Request-ID for correlation
// with backend logs.
func (t *transport) get(ctx context.Context, path string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("building request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for key, values := range header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode, Err: decodeAPIError(body)}
	}

	if !json.Valid(body) {
		return nil, &TransportError{Err: fmt.Errorf("decoding response: body is not valid JSON")}
	}
	return body, nil
}

// decodeAPIError pulls the backend's error envelope out of a failure body so
// the fallback diagnostic can say more than a bare status code. A body that
// isn't the envelope is fine; the status code alone is enough.
func decodeAPIError(body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return nil
	}
	if apiErr.Code != "" {
		return fmt.Errorf("backend error %s: %s", apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("backend error: %s", apiErr.Message)
}
