// Package api provides the types and a client for the fuelcalc HTTP API,
// which runs fuel efficiency calculations in server-side sessions.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

const (
	DefaultTimeout = 30 * time.Second
	DefaultBaseURL = "http://127.0.0.1:8080"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps status codes to the errors callers test for.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnprocessableEntity:
		return fuel.ErrInvalidInput
	case http.StatusNotFound:
		return ErrSessionNotFound
	default:
		return nil
	}
}

// Client talks to a fuelcalc server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Client with default settings.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Units lists the selectable units with labels in lang.
func (c *Client) Units(ctx context.Context, lang string) (*UnitsResponse, error) {
	var out UnitsResponse
	path := "/units?lang=" + url.QueryEscape(lang)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Convert converts value between two units of the same family.
func (c *Client) Convert(ctx context.Context, value float64, from, to fuel.Unit) (float64, error) {
	q := url.Values{}
	q.Set("value", strconv.FormatFloat(value, 'f', -1, 64))
	q.Set("from", string(from))
	q.Set("to", string(to))

	var out ConvertResponse
	if err := c.do(ctx, http.MethodGet, "/convert?"+q.Encode(), nil, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

func (c *Client) CreateSession(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Session(ctx context.Context, id string) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodGet, sessionPath(id, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EndSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id, ""), nil, nil)
}

func (c *Client) SetDistanceUnit(ctx context.Context, id string, u fuel.Unit) (*SessionResponse, error) {
	return c.setUnit(ctx, id, "distance", string(u))
}

func (c *Client) SetFuelUnit(ctx context.Context, id string, u fuel.Unit) (*SessionResponse, error) {
	return c.setUnit(ctx, id, "fuel", string(u))
}

func (c *Client) SetEfficiencyUnit(ctx context.Context, id string, u fuel.EfficiencyUnit) (*SessionResponse, error) {
	return c.setUnit(ctx, id, "efficiency", string(u))
}

func (c *Client) setUnit(ctx context.Context, id, selector, unit string) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPut, sessionPath(id, "/units/"+selector), UnitRequest{Unit: unit}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Calculate runs a calculation in the session with its selected units.
func (c *Client) Calculate(ctx context.Context, id string, in fuel.Inputs) (*fuel.Result, error) {
	var out fuel.Result
	if err := c.do(ctx, http.MethodPost, sessionPath(id, "/calculate"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset clears the last result of the session. The history is kept.
func (c *Client) Reset(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, sessionPath(id, "/reset"), nil, nil)
}

func (c *Client) History(ctx context.Context, id string) ([]fuel.Record, error) {
	var out HistoryResponse
	if err := c.do(ctx, http.MethodGet, sessionPath(id, "/history"), nil, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

func (c *Client) ClearHistory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id, "/history"), nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func sessionPath(id, suffix string) string {
	return "/sessions/" + url.PathEscape(id) + suffix
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error fetching data: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error unmarshaling JSON: %w", err)
	}
	return nil
}
