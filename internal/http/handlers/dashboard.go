package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

type DashboardHandler struct {
	Base
}

func NewDashboardHandler(b Base) *DashboardHandler {
	return &DashboardHandler{Base: b}
}

func (h *DashboardHandler) Index(c *gin.Context) {
	token := middleware.Token(c)
	ctx := c.Request.Context()
	vm := view.DashboardPage{Page: h.page(c, "仪表板", "dashboard")}

	stats, err := h.Upstream.DashboardStats(ctx, token)
	if err != nil {
		if h.expired(c, err) {
			return
		}
		inlineError(&vm.Page, err)
		render.Page(c, http.StatusOK, "dashboard.tmpl", vm)
		return
	}

	vm.Stats = []view.StatCard{
		{Title: "总用户数", Value: strconv.Itoa(stats.TotalUsers), Tone: "blue"},
		{Title: "商品总数", Value: strconv.Itoa(stats.TotalGoods), Tone: "green"},
		{Title: "店铺数量", Value: strconv.Itoa(stats.TotalStores), Tone: "purple"},
		{Title: "今日销售额", Value: view.Money(stats.TodaySales), Tone: "yellow"},
	}

	// 图表和活动失败时静默降级，统计卡片照常展示
	if chart, err := h.Upstream.DashboardChart(ctx, token); err == nil {
		for _, p := range chart {
			vm.Chart = append(vm.Chart, view.ChartPoint{
				Label:  p.Date,
				Sales:  p.Sales,
				Orders: p.Orders,
			})
		}
	}
	if acts, err := h.Upstream.RecentActivities(ctx, token); err == nil {
		for _, a := range acts {
			vm.Activities = append(vm.Activities, view.Activity{
				User:   a.User,
				Action: a.Action,
				At:     a.Time,
			})
		}
	}

	render.Page(c, http.StatusOK, "dashboard.tmpl", vm)
}
