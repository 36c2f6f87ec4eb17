package upstream

import (
	"context"
	"fmt"

	"github.com/AcebergChristian/jushuitan/internal/shared/apperr"
)

// Cancel/return aggregates come in two dimensions.
const (
	DimensionStore   = "store"
	DimensionProduct = "product"
)

func (c *Client) CancelData(ctx context.Context, token, startDate, endDate, search, dimension string) (ListResult, error) {
	q := dateRangeQuery(startDate, endDate)
	if search != "" {
		q["search"] = search
	}
	if dimension == "" {
		dimension = DimensionStore
	}
	q["dimension"] = dimension

	b, err := c.get(ctx, token, "/cancel_data/", q)
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}

func (c *Client) SyncCancelData(ctx context.Context, token, syncDate string) (string, error) {
	if syncDate == "" {
		return "", apperr.InvalidErr("请先选择要同步的日期", nil)
	}
	b, err := c.postJSON(ctx, token, "/sync_cancel_data", map[string]string{"sync_date": syncDate})
	if err != nil {
		return "", err
	}
	return decodeMessage(b, "退货数据同步成功"), nil
}

// CancelDetails drills into one aggregate row, by store or by product.
func (c *Client) CancelDetails(ctx context.Context, token, dimension, id string) (ListResult, error) {
	var path string
	switch dimension {
	case DimensionStore:
		path = "/cancel_store_details/" + id
	case DimensionProduct:
		path = "/cancel_product_details/" + id
	default:
		return ListResult{}, apperr.Wrap(fmt.Errorf("upstream: unknown cancel dimension %q", dimension))
	}
	b, err := c.get(ctx, token, path, nil)
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}
