package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

type GoodsHandler struct {
	Base
}

func NewGoodsHandler(b Base) *GoodsHandler {
	return &GoodsHandler{Base: b}
}

func (h *GoodsHandler) Index(c *gin.Context) {
	page, size, search := listParams(c)

	vm := view.ListPage{
		Page:     h.page(c, "商品管理", "goods"),
		Search:   search,
		SyncDate: c.Query("sync_date"),
		BasePath: "/goods",
	}

	list, err := h.Upstream.ListGoods(c.Request.Context(), middleware.Token(c), (page-1)*size, size, search)
	if err != nil {
		if h.expired(c, err) {
			return
		}
		inlineError(&vm.Page, err)
		render.Page(c, http.StatusOK, "goods.tmpl", vm)
		return
	}

	vm.Table = view.BuildTable(list.Items)
	vm.Paginator = view.NewPaginator(page, size, list.Total)
	render.Page(c, http.StatusOK, "goods.tmpl", vm)
}

func (h *GoodsHandler) Sync(c *gin.Context) {
	msg, err := h.Upstream.SyncGoods(c.Request.Context(), middleware.Token(c), c.PostForm("sync_date"))
	if err != nil {
		h.backWithError(c, "/goods", err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/goods", view.FlashSuccess, msg)
}
