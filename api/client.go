// Package api is the HTTP consumer of the client service. The TUI treats it
// as a fire-and-forget collaborator: a failed fetch is logged by the caller
// and the previous list is kept.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adviceworks/casedesk/clients"
)

// Page is the decoded client-list envelope.
type Page struct {
	Status bool             `json:"status"`
	Data   []clients.Record `json:"data"`
	Total  int              `json:"total"`
}

// Client talks to a casedeskd instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption mutates client configuration.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a consumer for the service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// GetClients fetches one page of the client list.
func (c *Client) GetClients(ctx context.Context, page, pageSize int) (Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var out Page
	if err := c.do(ctx, http.MethodGet, "/v1/clients?"+q.Encode(), nil, &out); err != nil {
		return Page{}, err
	}
	return out, nil
}

// CreateClient stores a new client record.
func (c *Client) CreateClient(ctx context.Context, rec clients.Record) (clients.Record, error) {
	var out clients.Record
	if err := c.do(ctx, http.MethodPost, "/v1/clients", rec, &out); err != nil {
		return clients.Record{}, err
	}
	return out, nil
}

// UpdateClient replaces a client record wholesale.
func (c *Client) UpdateClient(ctx context.Context, rec clients.Record) (clients.Record, error) {
	var out clients.Record
	if err := c.do(ctx, http.MethodPut, "/v1/clients/"+rec.ID.String(), rec, &out); err != nil {
		return clients.Record{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
