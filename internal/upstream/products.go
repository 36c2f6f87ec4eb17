package upstream

import "context"

// ListPlatformProducts pages through the synced platform order rows.
func (c *Client) ListPlatformProducts(ctx context.Context, token string, skip, limit int, search string) (ListResult, error) {
	b, err := c.get(ctx, token, "/jushuitan_products/", pageQuery(skip, limit, search))
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}

// SyncPlatformData triggers a pull from the platform API. syncDate
// ("2006-01-02") is optional; empty means the upstream picks its default.
func (c *Client) SyncPlatformData(ctx context.Context, token, syncDate string) (string, error) {
	b, err := c.postJSON(ctx, token, "/sync_jushuitan_data", map[string]string{"sync_date": syncDate})
	if err != nil {
		return "", err
	}
	return decodeMessage(b, "同步成功"), nil
}
