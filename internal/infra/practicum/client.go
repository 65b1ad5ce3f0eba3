// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultEndpoint is the homework statuses endpoint of the Practicum API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const maxResponseBodySize = 1 << 20 // 1MB

// ErrUnavailable is returned when the API answers with a status other than 200.
var ErrUnavailable = errors.New("API unavailability")

// ErrAPI is returned when the request to the endpoint fails before a usable answer is read.
var ErrAPI = errors.New("endpoint request failed")

// Client queries the homework statuses endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	timeout    time.Duration
}

// NewClient creates a Client. A zero timeout leaves the request bounded only by ctx.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		endpoint:   endpoint,
		token:      token,
		timeout:    timeout,
	}
}

// GetAPIAnswer requests homework statuses changed since fromDate (unix seconds)
// and returns the decoded JSON body.
func (c *Client) GetAPIAnswer(ctx context.Context, fromDate int64) (any, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrAPI, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAPI, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUnavailable, c.endpoint, resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize))
	dec.UseNumber()
	var answer any
	if err := dec.Decode(&answer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response body: %w", ErrAPI, err)
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON body", ErrAPI)
	}
	return answer, nil
}

// Close releases idle connections. Safe on a nil Client.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
}
