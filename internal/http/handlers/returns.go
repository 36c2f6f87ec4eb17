package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/internal/upstream"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

// ReturnsHandler serves the cancellation/return aggregates, switchable
// between the store and product dimensions.
type ReturnsHandler struct {
	Base
}

func NewReturnsHandler(b Base) *ReturnsHandler {
	return &ReturnsHandler{Base: b}
}

func (h *ReturnsHandler) Index(c *gin.Context) {
	dimension := c.Query("dimension")
	if dimension != upstream.DimensionProduct {
		dimension = upstream.DimensionStore
	}
	search := c.Query("search")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	vm := view.ListPage{
		Page:      h.page(c, "退货管理", "returns"),
		Search:    search,
		Dimension: dimension,
		StartDate: startDate,
		EndDate:   endDate,
		SyncDate:  c.Query("sync_date"),
		BasePath:  "/returns",
	}

	list, err := h.Upstream.CancelData(c.Request.Context(), middleware.Token(c), startDate, endDate, search, dimension)
	if err != nil {
		if h.expired(c, err) {
			return
		}
		inlineError(&vm.Page, err)
		render.Page(c, http.StatusOK, "returns.tmpl", vm)
		return
	}

	vm.Table = view.BuildTable(list.Items)
	render.Page(c, http.StatusOK, "returns.tmpl", vm)
}

func (h *ReturnsHandler) Sync(c *gin.Context) {
	msg, err := h.Upstream.SyncCancelData(c.Request.Context(), middleware.Token(c), c.PostForm("sync_date"))
	if err != nil {
		h.backWithError(c, "/returns", err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/returns", view.FlashSuccess, msg)
}

func (h *ReturnsHandler) Detail(c *gin.Context) {
	dimension := c.Param("dimension")
	id := c.Param("id")

	list, err := h.Upstream.CancelDetails(c.Request.Context(), middleware.Token(c), dimension, id)
	if err != nil {
		h.backWithError(c, "/returns", err)
		return
	}

	render.Page(c, http.StatusOK, "store_detail.tmpl", view.StoreDetailPage{
		Page:    h.page(c, "退货详情", "returns"),
		StoreID: id,
		Table:   view.BuildTable(list.Items),
	})
}
