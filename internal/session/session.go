// Package session persists the signed-in state: the upstream bearer token
// and the userinfo payload returned by the login endpoint. Exactly two
// values, no refresh and no expiry timer; a stale token is only discovered
// when the next upstream call answers 401.
package session

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Session is the persisted pair. UserInfo keeps the raw payload as stored;
// depending on the login response it may be plain JSON or double-encoded.
type Session struct {
	Token    string `json:"token"`
	UserInfo string `json:"userinfo,omitempty"`
}

// Store abstracts where the session pair lives so handlers and middleware
// never touch cookies directly.
type Store interface {
	Get(c *gin.Context) (Session, bool)
	Set(c *gin.Context, s Session)
	Clear(c *gin.Context)
}

// DecodeUserInfo parses the stored userinfo payload. It tolerates the
// double-encoded form ("\"{...}\"") by re-parsing when the first pass
// yields a string. Returns nil when nothing usable is stored.
func DecodeUserInfo(raw string) map[string]any {
	if raw == "" || raw == "undefined" {
		return nil
	}
	for i := 0; i < 2; i++ {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil
		}
		switch t := v.(type) {
		case map[string]any:
			return t
		case string:
			raw = t
		default:
			return nil
		}
	}
	return nil
}

// DisplayName picks a human label out of the userinfo payload.
func DisplayName(info map[string]any) string {
	for _, k := range []string{"username", "name", "email"} {
		if s, ok := info[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
