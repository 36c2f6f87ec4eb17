package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/session"
)

const (
	ctxKeyToken = "session_token"
	ctxKeyUser  = "session_user"
)

// SessionMiddleware decodes the signed session cookie and puts the bearer
// token plus the (possibly absent) userinfo into the request context. A
// token with no readable userinfo is still a signed-in session.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := store.Get(c)
		if !ok {
			c.Next()
			return
		}
		c.Set(ctxKeyToken, s.Token)
		if info := session.DecodeUserInfo(s.UserInfo); info != nil {
			c.Set(ctxKeyUser, info)
		}
		c.Next()
	}
}

// Token returns the upstream bearer token, or "" when anonymous.
func Token(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyToken); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentUser returns the decoded userinfo payload and whether a session
// exists. The map may be nil even for a live session.
func CurrentUser(c *gin.Context) (map[string]any, bool) {
	if Token(c) == "" {
		return nil, false
	}
	if v, ok := c.Get(ctxKeyUser); ok {
		if m, ok := v.(map[string]any); ok {
			return m, true
		}
	}
	return nil, true
}

// UserName is the display name for the header, "" when unknown.
func UserName(c *gin.Context) string {
	info, ok := CurrentUser(c)
	if !ok {
		return ""
	}
	return session.DisplayName(info)
}
