package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/internal/http/validation"
	"github.com/AcebergChristian/jushuitan/internal/session"
	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

type loginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	ReturnTo string `form:"return_to"`
}

type AuthHandler struct {
	Base
}

func NewAuthHandler(b Base) *AuthHandler {
	return &AuthHandler{Base: b}
}

func (h *AuthHandler) LoginGet(c *gin.Context) {
	// 已登录直接进首页
	if middleware.Token(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.renderLogin(c, http.StatusOK, view.LoginForm{}, nil, "", normalizeReturnTo(c.Query("return_to")))
}

func (h *AuthHandler) LoginPost(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderLogin(c, http.StatusBadRequest, view.LoginForm{Username: in.Username}, errs, "", normalizeReturnTo(in.ReturnTo))
		return
	}
	returnTo := normalizeReturnTo(in.ReturnTo)

	res, err := h.Upstream.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Unauthorized {
			h.renderLogin(c, http.StatusUnauthorized, view.LoginForm{Username: in.Username}, nil, ae.PublicMsg, returnTo)
			return
		}
		h.renderLogin(c, http.StatusBadGateway, view.LoginForm{Username: in.Username}, nil, apperr.PublicMessage(err), returnTo)
		return
	}

	h.Sessions.Set(c, session.Session{
		Token:    res.AccessToken,
		UserInfo: string(res.UserInfo),
	})

	dest := "/"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "登录成功")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if tok := middleware.Token(c); tok != "" {
		// 通知远端失效，失败也无所谓
		h.Upstream.Logout(c.Request.Context(), tok)
	}
	h.Sessions.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/login", view.FlashInfo, "已退出登录")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form view.LoginForm, errs map[string]string, pageErr, returnTo string) {
	render.Page(c, status, "login.tmpl", view.LoginPage{
		Page:      h.page(c, "登录", ""),
		Form:      form,
		Errors:    errs,
		PageError: pageErr,
		ReturnTo:  returnTo,
	})
}
