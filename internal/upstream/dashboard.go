package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
)

// DashboardStats carries the headline numbers for the overview page.
type DashboardStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalGoods       int     `json:"total_goods"`
	TotalStores      int     `json:"total_stores"`
	TotalSalesAmount float64 `json:"total_sales_amount"`
	TodaySales       float64 `json:"today_sales"`
	WeekSales        float64 `json:"week_sales"`
	MonthSales       float64 `json:"month_sales"`
}

type ChartPoint struct {
	Date      string  `json:"date"`
	Sales     float64 `json:"sales"`
	Orders    int     `json:"orders"`
	DayOfWeek string  `json:"day_of_week"`
}

type Activity struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"`
}

func (c *Client) DashboardStats(ctx context.Context, token string) (DashboardStats, error) {
	b, err := c.get(ctx, token, "/dashboard/stats", nil)
	if err != nil {
		return DashboardStats{}, err
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	raw := b
	if err := json.Unmarshal(b, &env); err == nil && len(env.Data) > 0 {
		raw = env.Data
	}
	var out DashboardStats
	if err := json.Unmarshal(raw, &out); err != nil {
		return DashboardStats{}, apperr.Wrap(fmt.Errorf("upstream dashboard stats: decode: %w", err))
	}
	return out, nil
}

func (c *Client) DashboardChart(ctx context.Context, token string) ([]ChartPoint, error) {
	b, err := c.get(ctx, token, "/dashboard/chart-data", nil)
	if err != nil {
		return nil, err
	}
	var env struct {
		Data []ChartPoint `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream chart data: decode: %w", err))
	}
	return env.Data, nil
}

func (c *Client) RecentActivities(ctx context.Context, token string) ([]Activity, error) {
	b, err := c.get(ctx, token, "/dashboard/recent-activities", nil)
	if err != nil {
		return nil, err
	}
	var env struct {
		Data []Activity `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, apperr.Wrap(fmt.Errorf("upstream activities: decode: %w", err))
	}
	return env.Data, nil
}
