package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := http.Response{Header: w.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestCookieStoreRoundtrip(t *testing.T) {
	store := NewCookieStore(testSecret, "jst_session", false, time.Hour)

	c, w := newTestContext(t)
	store.Set(c, Session{Token: "tok-123", UserInfo: `{"username":"admin"}`})

	ck := sessionCookie(t, w, "jst_session")
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	// 用写出的 cookie 重新读取
	c2, _ := newTestContext(t)
	c2.Request.AddCookie(&http.Cookie{Name: "jst_session", Value: ck.Value})

	got, ok := store.Get(c2)
	require.True(t, ok)
	assert.Equal(t, "tok-123", got.Token)
	assert.Equal(t, `{"username":"admin"}`, got.UserInfo)
}

func TestCookieStoreRejectsTampering(t *testing.T) {
	store := NewCookieStore(testSecret, "jst_session", false, time.Hour)

	c, w := newTestContext(t)
	store.Set(c, Session{Token: "tok-123"})
	ck := sessionCookie(t, w, "jst_session")
	require.NotNil(t, ck)

	t.Run("flipped payload", func(t *testing.T) {
		parts := strings.SplitN(ck.Value, ".", 2)
		require.Len(t, parts, 2)
		forged := "x" + parts[0][1:] + "." + parts[1]

		c2, w2 := newTestContext(t)
		c2.Request.AddCookie(&http.Cookie{Name: "jst_session", Value: forged})
		_, ok := store.Get(c2)
		assert.False(t, ok)
		// 坏 cookie 被清除
		cleared := sessionCookie(t, w2, "jst_session")
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewCookieStore([]byte("another-secret-another-secret-xx"), "jst_session", false, time.Hour)
		c2, _ := newTestContext(t)
		c2.Request.AddCookie(&http.Cookie{Name: "jst_session", Value: ck.Value})
		_, ok := other.Get(c2)
		assert.False(t, ok)
	})

	t.Run("garbage value", func(t *testing.T) {
		c2, _ := newTestContext(t)
		c2.Request.AddCookie(&http.Cookie{Name: "jst_session", Value: "not-a-session"})
		_, ok := store.Get(c2)
		assert.False(t, ok)
	})
}

func TestCookieStoreRequiresToken(t *testing.T) {
	store := NewCookieStore(testSecret, "jst_session", false, time.Hour)

	c, w := newTestContext(t)
	store.Set(c, Session{Token: "", UserInfo: "whatever"})
	ck := sessionCookie(t, w, "jst_session")
	require.NotNil(t, ck)

	c2, _ := newTestContext(t)
	c2.Request.AddCookie(&http.Cookie{Name: "jst_session", Value: ck.Value})
	_, ok := store.Get(c2)
	assert.False(t, ok)
}

func TestDecodeUserInfo(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		info := DecodeUserInfo(`{"username": "admin", "role": "admin"}`)
		require.NotNil(t, info)
		assert.Equal(t, "admin", info["username"])
	})

	t.Run("double encoded", func(t *testing.T) {
		info := DecodeUserInfo(`"{\"username\": \"admin\"}"`)
		require.NotNil(t, info)
		assert.Equal(t, "admin", info["username"])
	})

	t.Run("empty and undefined", func(t *testing.T) {
		assert.Nil(t, DecodeUserInfo(""))
		assert.Nil(t, DecodeUserInfo("undefined"))
	})

	t.Run("broken payload", func(t *testing.T) {
		assert.Nil(t, DecodeUserInfo("{nope"))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "admin", DisplayName(map[string]any{"username": "admin"}))
	assert.Equal(t, "张三", DisplayName(map[string]any{"name": "张三"}))
	assert.Equal(t, "a@b.c", DisplayName(map[string]any{"email": "a@b.c"}))
	assert.Equal(t, "", DisplayName(map[string]any{}))
}
