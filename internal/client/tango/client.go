package tango

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kurochkinivan/tango_form/internal/domain"
)

const Path = "/tango"

// maxErrorBody bounds how much of a failed response is kept as error text.
const maxErrorBody = 64 << 10

type Client struct {
	endpoint string
	client   *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	endpoint, err := url.JoinPath(baseURL, Path)
	if err != nil {
		return nil, fmt.Errorf("failed to build endpoint url from %q: %w", baseURL, err)
	}

	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Send(ctx context.Context, payload *domain.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// the *url.Error text is shown to the user as is
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			return fmt.Errorf("failed to read error response with status %d: %w", resp.StatusCode, err)
		}

		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
