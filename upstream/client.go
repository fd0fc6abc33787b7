package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/go-playground/validator/v10"
)

// Client talks to the pageant backend REST API. All calls are per-request
// bearer authenticated; the client itself holds no credentials.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// the view navigated away, the result must be discarded anyway
			return ctx.Err()
		}
		logging.Log.Errorf("UPSTREAM: %s %s failed: %v", method, path, err)
		return &RemoteError{Message: "could not reach the backend"}
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &RemoteError{StatusCode: res.StatusCode, Message: "could not read backend response"}
	}

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode >= 400 {
		logging.Log.Warnf("UPSTREAM: %s %s returned %d", method, path, res.StatusCode)
		return &RemoteError{StatusCode: res.StatusCode, Message: errorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			logging.Log.Errorf("UPSTREAM: %s %s returned malformed payload: %v", method, path, err)
			return &RemoteError{StatusCode: res.StatusCode, Message: "malformed backend response"}
		}
	}
	return nil
}

// errorMessage extracts the backend's human-readable error text, which shows
// up under either "error" or "detail" depending on the endpoint.
func errorMessage(data []byte) string {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return ""
}
