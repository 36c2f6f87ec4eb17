package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
)

// LoginResult is the login response. UserInfo is kept raw: the upstream
// serializes it as a JSON string inside the JSON body, so it arrives
// double-encoded and is only unpacked at read time.
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	UserInfo    json.RawMessage `json:"userinfo"`
}

// Login submits credentials as a form-encoded body, the OAuth2 password
// flow shape the upstream expects.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	res, err := c.rc.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post(normalizePath("/login"))
	if err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream login: %w", err))
	}
	if res.StatusCode() == http.StatusUnauthorized || res.StatusCode() == http.StatusBadRequest {
		msg := errorMessage(res.Bytes())
		if msg == "" {
			msg = "用户名或密码错误"
		}
		return nil, apperr.UnauthorizedErr(msg)
	}
	if res.IsError() {
		return nil, apperr.UpstreamErr(errorMessage(res.Bytes()),
			fmt.Errorf("upstream login: status %d", res.StatusCode()))
	}

	var out LoginResult
	if err := json.Unmarshal(res.Bytes(), &out); err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream login: decode: %w", err))
	}
	if out.AccessToken == "" {
		return nil, apperr.Wrap(fmt.Errorf("upstream login: empty access_token"))
	}
	return &out, nil
}

// Logout tells the upstream the token is done. Best effort: local session
// teardown matters more than this call succeeding.
func (c *Client) Logout(ctx context.Context, token string) {
	if _, err := c.postJSON(ctx, token, "/logout", nil); err != nil {
		c.log.Debug("upstream_logout_failed", "err", err)
	}
}

// Me fetches the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (map[string]any, error) {
	b, err := c.get(ctx, token, "/users/me", nil)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream me: decode: %w", err))
	}
	return out, nil
}
