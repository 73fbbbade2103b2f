package aqualedger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Client implements Service over the AquaLedger HTTP API. Every request
// carries the session's bearer token; bodies are JSON both ways. The
// client defines no timeout policy beyond the transport's: a request, once
// sent, runs to completion and the caller reflects whichever outcome
// resolves.
type Client struct {
	base    string
	session *Session
	http    *http.Client
}

// NewClient returns a client for the service at the given base URL,
// authenticating with the given session.
func NewClient(base string, session *Session) *Client {
	return &Client{
		base:    base,
		session: session,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Service = (*Client)(nil)

// List fetches the server's current record listing.
func (c *Client) List(ctx context.Context) ([]CatchRecord, error) {
	var payload struct {
		Catches []CatchRecord `json:"catches"`
	}
	if err := c.do(ctx, http.MethodGet, "/catches", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Catches, nil
}

// Create persists a new record; the response carries the server-assigned
// id and date.
func (c *Client) Create(ctx context.Context, fields RecordFields) (CatchRecord, error) {
	var created CatchRecord
	if err := c.do(ctx, http.MethodPost, "/catches", fields, &created); err != nil {
		return CatchRecord{}, err
	}
	return created, nil
}

// Update submits a full editable-field body for the record. A success body
// is optional and ignored.
func (c *Client) Update(ctx context.Context, id int64, fields RecordFields) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/catches/%d", id), fields, nil)
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/catches/%d", id), nil, nil)
}

// ServerSummary is the server's own today/week aggregate.
type ServerSummary struct {
	TodayQty  Quantity `json:"today_qty"`
	TodayEarn Money    `json:"today_earnings"`
	WeekQty   Quantity `json:"week_qty"`
	WeekEarn  Money    `json:"week_earnings"`
}

// Summary fetches the server-side today/week totals.
func (c *Client) Summary(ctx context.Context) (ServerSummary, error) {
	var s ServerSummary
	err := c.do(ctx, http.MethodGet, "/summary", nil, &s)
	return s, err
}

// do performs one JSON round trip. A non-2xx response becomes a
// RequestError carrying the server's message; a network or decode failure
// becomes a TransportError. Nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	token := c.session.BearerToken()
	if token == "" {
		return ErrNoSession
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", method, req.URL.Host, req.URL.Path, resp.Status)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{StatusCode: resp.StatusCode, Msg: extractMsg(raw)}
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &TransportError{Err: fmt.Errorf("decode %s %s response: %w", method, path, err)}
		}
	}
	return nil
}

// extractMsg pulls the server's "msg" out of a failure body without
// assuming anything else about its shape.
func extractMsg(raw []byte) string {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get("$.msg", jobj)
	if err != nil {
		return ""
	}
	msg, _ := jval.(string)
	return msg
}
