package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/config"
	"github.com/AcebergChristian/jushuitan/internal/http/flash"
	"github.com/AcebergChristian/jushuitan/internal/http/handlers"
	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/internal/session"
	"github.com/AcebergChristian/jushuitan/internal/upstream"
)

// NewRouter wires the gin engine: templates, middleware chain and routes.
func NewRouter(log *slog.Logger, cfg config.Config, client *upstream.Client) *gin.Engine {
	flashCodec := flash.NewCodec(cfg.CookieSecret, cfg.FlashCookie, cfg.SecureCookies)
	sessions := session.NewCookieStore(cfg.CookieSecret, cfg.SessionCookie, cfg.SecureCookies, cfg.SessionTTL)

	r := gin.New()
	r.SetFuncMap(render.FuncMap())
	r.LoadHTMLGlob("templates/html/*.tmpl")

	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.ErrorHandler(log),
		middleware.Recovery(log),
		middleware.FlashMiddleware(flashCodec),
		middleware.SessionMiddleware(sessions),
	)

	base := handlers.Base{
		Upstream: client,
		Sessions: sessions,
		Flash:    flashCodec,
		Log:      log,
	}

	auth := handlers.NewAuthHandler(base)
	r.GET("/login", auth.LoginGet)
	r.POST("/login", auth.LoginPost)
	r.POST("/logout", auth.Logout)

	authed := r.Group("/", middleware.RequireAuth(flashCodec))
	{
		authed.GET("", handlers.NewDashboardHandler(base).Index)

		platform := handlers.NewPlatformDataHandler(base)
		authed.GET("/platform-data", platform.Index)
		authed.POST("/platform-data/sync", platform.Sync)

		goods := handlers.NewGoodsHandler(base)
		authed.GET("/goods", goods.Index)
		authed.POST("/goods/sync", goods.Sync)

		users := handlers.NewUsersHandler(base)
		authed.GET("/users", users.Index)
		authed.GET("/users/new", users.New)
		authed.POST("/users", users.Create)
		authed.GET("/users/:id/edit", users.Edit)
		authed.POST("/users/:id", users.Update)
		authed.POST("/users/:id/delete", users.Delete)

		stores := handlers.NewStoresHandler(base)
		authed.GET("/stores", stores.Index)
		authed.GET("/stores/:id", stores.Detail)

		returns := handlers.NewReturnsHandler(base)
		authed.GET("/returns", returns.Index)
		authed.POST("/returns/sync", returns.Sync)
		authed.GET("/returns/:dimension/:id", returns.Detail)
	}

	r.NoRoute(func(c *gin.Context) {
		render.ErrorPage(c, http.StatusNotFound, "页面不存在")
	})

	return r
}
