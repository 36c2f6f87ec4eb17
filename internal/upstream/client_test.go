package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
)

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(srv.URL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/api/v1/goods/", normalizePath("/goods/"))
	assert.Equal(t, "/api/v1/goods/", normalizePath("goods/"))
	assert.Equal(t, "/api/v1/login", normalizePath("/api/v1/login"))
}

func TestClientSendsBearerAndPrefix(t *testing.T) {
	var gotPath, gotAuth, gotSkip string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotSkip = r.URL.Query().Get("skip")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}, "total": 0})
	})

	_, err := c.ListPlatformProducts(context.Background(), "tok-1", 20, 10, "")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/jushuitan_products/", gotPath)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "20", gotSkip)
}

func TestDecodeListShapes(t *testing.T) {
	t.Run("envelope with total", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": [{"id": "1"}, {"id": "2"}], "total": 57}`))
		})
		list, err := c.ListGoods(context.Background(), "tok", 0, 10, "")
		require.NoError(t, err)
		assert.Len(t, list.Items, 2)
		assert.Equal(t, 57, list.Total)
	})

	t.Run("bare array", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id": "1"}, {"id": "2"}, {"id": "3"}]`))
		})
		list, err := c.ListGoods(context.Background(), "tok", 0, 10, "")
		require.NoError(t, err)
		assert.Len(t, list.Items, 3)
		assert.Equal(t, 3, list.Total)
	})

	t.Run("envelope without total falls back to length", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": [{"id": "1"}]}`))
		})
		list, err := c.ListGoods(context.Background(), "tok", 0, 10, "")
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
	})

	t.Run("junk payload errors", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`"surprise"`))
		})
		_, err := c.ListGoods(context.Background(), "tok", 0, 10, "")
		assert.Error(t, err)
	})
}

func TestClientUnauthorizedSentinel(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Not authenticated"}`))
	})

	_, err := c.ListGoods(context.Background(), "stale", 0, 10, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientUpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail": "同步任务执行失败"}`))
	})

	_, err := c.ListGoods(context.Background(), "tok", 0, 10, "")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Upstream, ae.Kind)
	assert.Equal(t, "同步任务执行失败", ae.PublicMsg)
}

func TestLogin(t *testing.T) {
	t.Run("success keeps userinfo raw", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "/api/v1/login", r.URL.Path)
			assert.Equal(t, "admin", r.PostFormValue("username"))
			// userinfo 是字符串里的 JSON，双重编码
			_, _ = w.Write([]byte(`{"access_token": "tok-9", "token_type": "bearer", "userinfo": "{\"username\": \"admin\"}"}`))
		})

		res, err := c.Login(context.Background(), "admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, "tok-9", res.AccessToken)
		assert.Equal(t, `"{\"username\": \"admin\"}"`, string(res.UserInfo))
	})

	t.Run("bad credentials", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "用户名或密码错误"}`))
		})

		_, err := c.Login(context.Background(), "admin", "nope")
		require.Error(t, err)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.Unauthorized, ae.Kind)
		assert.Equal(t, "用户名或密码错误", ae.PublicMsg)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token": "", "token_type": "bearer"}`))
		})
		_, err := c.Login(context.Background(), "admin", "admin123")
		assert.Error(t, err)
	})
}

func TestSyncCancelDataRequiresDate(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := c.SyncCancelData(context.Background(), "tok", "")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
}

func TestCancelDetailsPaths(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": [], "total": 0}`))
	})

	_, err := c.CancelDetails(context.Background(), "tok", DimensionStore, "S001")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/cancel_store_details/S001", gotPath)

	_, err = c.CancelDetails(context.Background(), "tok", DimensionProduct, "G001")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/cancel_product_details/G001", gotPath)

	_, err = c.CancelDetails(context.Background(), "tok", "warehouse", "X")
	assert.Error(t, err)
}

func TestSyncMessagePassthrough(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-01-15", body["sync_date"])
		_, _ = w.Write([]byte(`{"message": "数据同步成功"}`))
	})

	msg, err := c.SyncPlatformData(context.Background(), "tok", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "数据同步成功", msg)
}
