package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

type StoresHandler struct {
	Base
}

func NewStoresHandler(b Base) *StoresHandler {
	return &StoresHandler{Base: b}
}

func (h *StoresHandler) Index(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	vm := view.ListPage{
		Page:      h.page(c, "店铺管理", "stores"),
		StartDate: startDate,
		EndDate:   endDate,
		BasePath:  "/stores",
	}

	list, err := h.Upstream.StoresData(c.Request.Context(), middleware.Token(c), startDate, endDate)
	if err != nil {
		if h.expired(c, err) {
			return
		}
		inlineError(&vm.Page, err)
		render.Page(c, http.StatusOK, "stores.tmpl", vm)
		return
	}

	vm.Table = view.BuildTable(list.Items)
	render.Page(c, http.StatusOK, "stores.tmpl", vm)
}

func (h *StoresHandler) Detail(c *gin.Context) {
	storeID := c.Param("id")

	list, err := h.Upstream.StoreGoodsDetail(c.Request.Context(), middleware.Token(c), storeID)
	if err != nil {
		h.backWithError(c, "/stores", err)
		return
	}

	render.Page(c, http.StatusOK, "store_detail.tmpl", view.StoreDetailPage{
		Page:    h.page(c, "店铺商品详情", "stores"),
		StoreID: storeID,
		Table:   view.BuildTable(list.Items),
	})
}
