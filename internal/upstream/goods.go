package upstream

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Client) ListGoods(ctx context.Context, token string, skip, limit int, search string) (ListResult, error) {
	b, err := c.get(ctx, token, "/goods/", pageQuery(skip, limit, search))
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}

func (c *Client) SyncGoods(ctx context.Context, token, syncDate string) (string, error) {
	b, err := c.postJSON(ctx, token, "/sync_goods/", map[string]string{"sync_date": syncDate})
	if err != nil {
		return "", err
	}
	return decodeMessage(b, "商品数据同步成功"), nil
}

// DictEntry is one entry of the goods dictionary used by the user form's
// association picker.
type DictEntry struct {
	GoodID   string `json:"good_id"`
	GoodName string `json:"good_name"`
}

func (c *Client) GoodsDict(ctx context.Context, token string) ([]DictEntry, error) {
	b, err := c.get(ctx, token, "/goods_dict/", nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeList(b)
	if err != nil {
		return nil, err
	}
	out := make([]DictEntry, 0, len(list.Items))
	for _, it := range list.Items {
		// good_id 有时是数字有时是字符串
		id := fieldString(it, "good_id", "id")
		if id == "" {
			continue
		}
		out = append(out, DictEntry{
			GoodID:   id,
			GoodName: fieldString(it, "good_name", "goods_name", "name"),
		})
	}
	return out, nil
}

// fieldString returns the first non-empty field among keys, stringified.
func fieldString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := rec[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}
