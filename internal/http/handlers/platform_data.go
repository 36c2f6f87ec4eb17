package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

const (
	tabJushuitan = "jushuitan"
	tabPinduoduo = "pinduoduo"
)

// PlatformDataHandler is the raw synced-data browser: one dynamic table per
// platform tab, columns derived from whatever the upstream returned.
type PlatformDataHandler struct {
	Base
}

func NewPlatformDataHandler(b Base) *PlatformDataHandler {
	return &PlatformDataHandler{Base: b}
}

func (h *PlatformDataHandler) Index(c *gin.Context) {
	tab := c.Query("tab")
	if tab != tabPinduoduo {
		tab = tabJushuitan
	}
	page, size, search := listParams(c)

	vm := view.ListPage{
		Page:     h.page(c, "数据管理", "platform-data"),
		Tab:      tab,
		Search:   search,
		SyncDate: c.Query("sync_date"),
		BasePath: "/platform-data",
	}

	if tab == tabPinduoduo {
		// 拼多多侧接口尚未接入，展示示例数据
		records := pinduoduoSample()
		vm.Table = view.BuildTable(records)
		vm.Paginator = view.NewPaginator(1, size, len(records))
		render.Page(c, http.StatusOK, "platform_data.tmpl", vm)
		return
	}

	list, err := h.Upstream.ListPlatformProducts(c.Request.Context(), middleware.Token(c), (page-1)*size, size, search)
	if err != nil {
		if h.expired(c, err) {
			return
		}
		inlineError(&vm.Page, err)
		render.Page(c, http.StatusOK, "platform_data.tmpl", vm)
		return
	}

	vm.Table = view.BuildTable(list.Items)
	vm.Paginator = view.NewPaginator(page, size, list.Total)
	render.Page(c, http.StatusOK, "platform_data.tmpl", vm)
}

func (h *PlatformDataHandler) Sync(c *gin.Context) {
	syncDate := c.PostForm("sync_date")
	msg, err := h.Upstream.SyncPlatformData(c.Request.Context(), middleware.Token(c), syncDate)
	if err != nil {
		h.backWithError(c, "/platform-data", err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/platform-data", view.FlashSuccess, msg)
}

func pinduoduoSample() []view.Record {
	rows := []struct {
		id, customer, date, status string
		amount                     float64
	}{
		{"ORD-001254", "张三", "2024-01-15", "completed", 15998},
		{"ORD-001255", "李四", "2024-01-15", "processing", 8999},
		{"ORD-001256", "王五", "2024-01-14", "pending", 7999},
		{"ORD-001257", "赵六", "2024-01-14", "completed", 21997},
		{"ORD-001258", "钱七", "2024-01-13", "cancelled", 1899},
	}
	out := make([]view.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, view.Record{
			"id":       r.id,
			"customer": r.customer,
			"date":     r.date,
			"amount":   r.amount,
			"status":   r.status,
			"platform": "拼多多",
		})
	}
	return out
}
