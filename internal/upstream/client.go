// Package upstream is the REST client for the backend this dashboard
// consumes. All data access goes through here: base-URL resolution, the
// /api/v1 prefix, bearer-token injection and response decoding.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
)

// ErrUnauthorized marks a 401 from the upstream: the stored token is stale
// and the caller must drop the session.
var ErrUnauthorized = errors.New("upstream: unauthorized")

const apiPrefix = "/api/v1"

type Client struct {
	rc  *resty.Client
	log *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
	return &Client{rc: rc, log: log}
}

func (c *Client) Close() error { return c.rc.Close() }

// normalizePath prefixes paths with /api/v1 unless the caller already did.
func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if strings.HasPrefix(p, apiPrefix) {
		return p
	}
	return apiPrefix + p
}

func (c *Client) do(ctx context.Context, token, method, path string, query map[string]string, body any) ([]byte, error) {
	req := c.rc.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	res, err := req.Execute(method, normalizePath(path))
	if err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream %s %s: %w", method, path, err))
	}
	if res.StatusCode() == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if res.IsError() {
		c.log.Warn("upstream_error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", res.StatusCode()),
		)
		return nil, apperr.UpstreamErr(errorMessage(res.Bytes()),
			fmt.Errorf("upstream %s %s: status %d", method, path, res.StatusCode()))
	}
	return res.Bytes(), nil
}

func (c *Client) get(ctx context.Context, token, path string, query map[string]string) ([]byte, error) {
	return c.do(ctx, token, http.MethodGet, path, query, nil)
}

func (c *Client) postJSON(ctx context.Context, token, path string, body any) ([]byte, error) {
	return c.do(ctx, token, http.MethodPost, path, nil, body)
}

func (c *Client) putJSON(ctx context.Context, token, path string, body any) ([]byte, error) {
	return c.do(ctx, token, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, token, path string) ([]byte, error) {
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}

// errorMessage digs a user-facing message out of an error body. The
// upstream answers sometimes with {"detail": ...}, sometimes {"message": ...}.
func errorMessage(b []byte) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Message
}

// ListResult is a decoded list response.
type ListResult struct {
	Items []map[string]any
	Total int
}

// decodeList accepts both response shapes the upstream produces: the
// {"data": [...], "total": N} envelope and a bare array.
func decodeList(b []byte) (ListResult, error) {
	var env struct {
		Data  []map[string]any `json:"data"`
		Total *int             `json:"total"`
	}
	if err := json.Unmarshal(b, &env); err == nil && env.Data != nil {
		total := len(env.Data)
		if env.Total != nil {
			total = *env.Total
		}
		return ListResult{Items: env.Data, Total: total}, nil
	}
	var arr []map[string]any
	if err := json.Unmarshal(b, &arr); err != nil {
		return ListResult{}, apperr.Wrap(fmt.Errorf("upstream: unexpected list payload: %w", err))
	}
	return ListResult{Items: arr, Total: len(arr)}, nil
}

// decodeObject decodes a single-record response, unwrapping a {"data": {...}}
// envelope when present.
func decodeObject(b []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream: unexpected object payload: %w", err))
	}
	if data, ok := obj["data"].(map[string]any); ok {
		return data, nil
	}
	return obj, nil
}

func pageQuery(skip, limit int, search string) map[string]string {
	q := map[string]string{
		"skip":  fmt.Sprint(skip),
		"limit": fmt.Sprint(limit),
	}
	if search != "" {
		q["search"] = search
	}
	return q
}

// decodeMessage extracts the human message from a mutation response.
func decodeMessage(b []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fallback
}
