package upstream

import "context"

func dateRangeQuery(startDate, endDate string) map[string]string {
	q := map[string]string{}
	if startDate != "" && endDate != "" {
		q["start_date"] = startDate
		q["end_date"] = endDate
	}
	return q
}

// StoresData lists per-store aggregates, optionally bounded by a date range
// (both dates "2006-01-02" or neither).
func (c *Client) StoresData(ctx context.Context, token, startDate, endDate string) (ListResult, error) {
	b, err := c.get(ctx, token, "/stores_data/", dateRangeQuery(startDate, endDate))
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}

// StoreGoodsDetail drills into the goods of one store.
func (c *Client) StoreGoodsDetail(ctx context.Context, token, storeID string) (ListResult, error) {
	b, err := c.get(ctx, token, "/store_goods_detail/"+storeID, nil)
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}
