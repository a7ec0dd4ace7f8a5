// Package pqrsapi is the HTTP client for the remote PQRS/omnichannel API.
// Every screen of the console reads and writes through it; it owns no state
// beyond the resty client and the token source.
package pqrsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/pqrsdesk/omnidesk/internal/config"
	"github.com/pqrsdesk/omnidesk/internal/models"
)

// TokenProvider supplies the session token attached to every request.
type TokenProvider interface {
	Token() string
}

type Client struct {
	http     *resty.Client
	tokens   TokenProvider
	pageSize int
}

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

// NewClient builds the API client. Failed requests are never retried here;
// the operator re-triggers the action.
func NewClient(cfg *config.Config, tokens TokenProvider) *Client {
	c := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout).
		SetLogger(nopLogger{}).
		SetHeader("Content-Type", "application/json")
	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal
	return &Client{http: c, tokens: tokens, pageSize: cfg.Inbox.PageSize}
}

// Get issues an authenticated GET and decodes the 2xx body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Post issues an authenticated POST and decodes the 2xx body into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Patch issues an authenticated PATCH and decodes the 2xx body into out.
func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPatch, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if tok := c.tokens.Token(); tok != "" {
		req.SetHeader("Authorization", "Token "+tok)
	}
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if in != nil {
		req.SetBody(in)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return nil, &models.RequestError{
			Status:  resp.StatusCode(),
			Message: errorMessage(resp.Body()),
		}
	}
	return resp.Body(), nil
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage digs the human-readable message out of the API's error body.
// The server is inconsistent about the key it uses.
func errorMessage(body []byte) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
		Msg    string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Error != "":
		return payload.Error
	case payload.Detail != "":
		return payload.Detail
	default:
		return payload.Msg
	}
}

// decodeList accepts both a bare JSON array and the paginated
// {"results": [...]} envelope.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}
	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode paginated list: %w", err)
	}
	return envelope.Results, nil
}
