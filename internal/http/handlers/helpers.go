package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/flash"
	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/internal/session"
	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
	"github.com/AcebergChristian/jushuitan/internal/upstream"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

// Base carries the dependencies shared by every page handler.
type Base struct {
	Upstream *upstream.Client
	Sessions session.Store
	Flash    *flash.Codec
	Log      *slog.Logger
}

func (b *Base) page(c *gin.Context, title, active string) view.Page {
	return view.Page{
		Title:     title,
		Active:    active,
		UserName:  middleware.UserName(c),
		Flash:     middleware.GetFlash(c),
		RequestID: middleware.GetRequestID(c),
	}
}

// expired handles a stale token: drop the session and send the browser to
// the login page. Returns true when err was the 401 case.
func (b *Base) expired(c *gin.Context, err error) bool {
	if !errors.Is(err, upstream.ErrUnauthorized) {
		return false
	}
	b.Sessions.Clear(c)
	render.RedirectWithFlash(c, b.Flash, "/login", view.FlashWarning, "登录已过期，请重新登录")
	c.Abort()
	return true
}

// backWithError redirects to backTo with the error as a flash message.
func (b *Base) backWithError(c *gin.Context, backTo string, err error) {
	if b.expired(c, err) {
		return
	}
	render.RedirectWithFlash(c, b.Flash, backTo, view.FlashError, apperr.PublicMessage(err))
}

// inlineError is used by list pages: keep the page, show the message.
func inlineError(p *view.Page, err error) {
	p.Flash = &view.Flash{Kind: view.FlashError, Message: apperr.PublicMessage(err)}
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// listParams reads page/size/search from the query string, clamped into a
// sane range. Page-size changes reset to page one.
func listParams(c *gin.Context) (page, size int, search string) {
	page = queryInt(c, "page", 1)
	size = queryInt(c, "size", 10)
	if size < 1 || size > 100 {
		size = 10
	}
	if page < 1 {
		page = 1
	}
	return page, size, c.Query("search")
}

func normalizeReturnTo(v string) string {
	if v == "" {
		return ""
	}
	// 只允许站内相对路径
	if !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
		return ""
	}
	return v
}
