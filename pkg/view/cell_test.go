package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCell_StatusBadges(t *testing.T) {
	cases := []struct {
		value string
		tone  string
	}{
		{"active", "green"},
		{"completed", "green"},
		{"low-stock", "yellow"},
		{"pending", "yellow"},
		{"out-of-stock", "red"},
		{"processing", "blue"},
		{"cancelled", "gray"},
		{"cancel", "gray"},
		{"vip", "purple"},
		{"somethingelse", "gray"},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			dc := RenderCell("status", tc.value)
			assert.Equal(t, ContentBadge, dc.Kind)
			assert.Equal(t, tc.value, dc.Text)
			assert.Equal(t, tc.tone, dc.Tone)
		})
	}

	t.Run("all badge keys", func(t *testing.T) {
		for _, key := range []string{"status", "platform", "isSuccess", "orderStatus", "orderType", "data_type"} {
			dc := RenderCell(key, "active")
			assert.Equal(t, ContentBadge, dc.Kind, key)
		}
	})
}

func TestRenderCell_Currency(t *testing.T) {
	t.Run("currency key wins over plain number", func(t *testing.T) {
		dc := RenderCell("amount", 1234.5)
		assert.Equal(t, ContentText, dc.Kind)
		assert.Equal(t, "¥1,234.50", dc.Text)
	})

	t.Run("price", func(t *testing.T) {
		dc := RenderCell("price", 799.5)
		assert.Equal(t, "¥799.50", dc.Text)
	})

	t.Run("zero renders placeholder", func(t *testing.T) {
		dc := RenderCell("payAmount", 0.0)
		assert.Equal(t, "-", dc.Text)
	})

	t.Run("numeric string still formats", func(t *testing.T) {
		dc := RenderCell("totalAmt", "15998")
		assert.Equal(t, "¥15,998.00", dc.Text)
	})
}

func TestRenderCell_Scalars(t *testing.T) {
	t.Run("bool true", func(t *testing.T) {
		assert.Equal(t, "是", RenderCell("enabled", true).Text)
	})
	t.Run("bool false", func(t *testing.T) {
		assert.Equal(t, "否", RenderCell("enabled", false).Text)
	})
	t.Run("plain number keeps precision", func(t *testing.T) {
		assert.Equal(t, "3", RenderCell("itemCount", 3.0).Text)
		assert.Equal(t, "3.5", RenderCell("weight", 3.5).Text)
	})
	t.Run("empty string renders placeholder", func(t *testing.T) {
		assert.Equal(t, "-", RenderCell("note", "").Text)
	})
	t.Run("nil renders placeholder", func(t *testing.T) {
		assert.Equal(t, "-", RenderCell("note", nil).Text)
	})
}

func TestRenderCell_LineItems(t *testing.T) {
	raw := "[{'supplierName': '华强供应链', 'itemCode': 'SKU-8801', 'itemName': '无线蓝牙耳机', 'properties': '黑色', 'itemCount': 2, 'price': 7999.0, 'totalPrice': 15998.0}]"

	dc := RenderCell("disInnerOrderGoodsViewList", raw)
	require.Equal(t, ContentCards, dc.Kind)
	require.Len(t, dc.Cards, 1)

	card := dc.Cards[0]
	assert.Equal(t, "华强供应链", card.Supplier)
	assert.Equal(t, "SKU-8801", card.ItemCode)
	assert.Equal(t, "无线蓝牙耳机", card.ItemName)
	assert.Equal(t, "黑色", card.Properties)
	assert.Equal(t, "2", card.Count)
	assert.Equal(t, "¥7999", card.UnitPrice)
	assert.Equal(t, "¥15998", card.TotalPrice)

	t.Run("empty list renders placeholder", func(t *testing.T) {
		assert.Equal(t, "-", RenderCell("disInnerOrderGoodsViewList", "[]").Text)
	})
}

func TestRenderCell_PythonReprStrings(t *testing.T) {
	t.Run("string array becomes chips", func(t *testing.T) {
		dc := RenderCell("tags", "['热卖', '新品']")
		require.Equal(t, ContentChips, dc.Kind)
		assert.Equal(t, []string{"热卖", "新品"}, dc.Chips)
	})

	t.Run("object array becomes summaries capped at three", func(t *testing.T) {
		dc := RenderCell("items", "[{'itemName': 'A', 'itemCount': 1}, {'itemName': 'B', 'itemCount': 2}, {'itemName': 'C', 'itemCount': 3}, {'itemName': 'D', 'itemCount': 4}, {'itemName': 'E', 'itemCount': 5}]")
		require.Equal(t, ContentSummaries, dc.Kind)
		require.Len(t, dc.Lines, 3)
		assert.Equal(t, "商品: A (1件)", dc.Lines[0])
		assert.Equal(t, "...还有2项", dc.Note)
	})

	t.Run("receiver object becomes address block", func(t *testing.T) {
		dc := RenderCell("receiverInfo", "{'ReceiverName': '张三', 'ReceiverPhone': '138****1234', 'ReceiverAddress': '广东省深圳市'}")
		require.Equal(t, ContentAddress, dc.Kind)
		assert.Equal(t, []string{"姓名: 张三", "电话: 138****1234", "地址: 广东省深圳市"}, dc.Lines)
	})

	t.Run("snake_case receiver keys", func(t *testing.T) {
		dc := RenderCell("receiverInfo", "{'receiver_name': '李四', 'receiver_phone': '139', 'receiver_address': '杭州'}")
		require.Equal(t, ContentAddress, dc.Kind)
	})

	t.Run("None becomes null", func(t *testing.T) {
		dc := RenderCell("extra", "{'a': None, 'b': True}")
		assert.Equal(t, ContentText, dc.Kind)
		assert.Contains(t, dc.Text, "null")
	})

	t.Run("malformed payload never panics", func(t *testing.T) {
		assert.NotPanics(t, func() {
			dc := RenderCell("broken", "[1, 2,")
			assert.Equal(t, ContentText, dc.Kind)
			assert.Equal(t, "[1, 2,", dc.Text)
		})
	})
}

func TestRenderCell_Dates(t *testing.T) {
	cases := []struct {
		key, in, want string
	}{
		{"created_at", "2024-01-15T10:23:00", "2024/01/15 10:23:00"},
		{"updated_at", "2024-01-15 10:23:00", "2024/01/15 10:23:00"},
		{"payTime", "2024-01-15", "2024/01/15 00:00:00"},
		{"orderDate", "not a date", "not a date"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderCell(tc.key, tc.in).Text)
		})
	}
}

func TestRenderCell_LongStrings(t *testing.T) {
	long := ""
	for i := 0; i < 60; i++ {
		long += "字"
	}
	dc := RenderCell("remark", long)
	require.Equal(t, ContentTruncated, dc.Kind)
	assert.Equal(t, 53, len([]rune(dc.Text))) // 50 + "..."
	assert.Equal(t, long, dc.Full)

	short := "刚好不超长"
	assert.Equal(t, ContentText, RenderCell("remark", short).Kind)
}

func TestRenderCell_WholeRecord(t *testing.T) {
	rec := Record{
		"id":        "G002",
		"status":    "out-of-stock",
		"price":     799.5,
		"itemCount": 3.0,
		"note":      "",
	}
	table := BuildTable([]Record{rec})
	require.Len(t, table.Rows, 1)

	byKey := map[string]DisplayContent{}
	for _, cell := range table.Rows[0].Cells {
		byKey[cell.Key] = cell.Content
	}

	assert.Equal(t, ContentBadge, byKey["status"].Kind)
	assert.Equal(t, "red", byKey["status"].Tone)
	assert.Equal(t, "¥799.50", byKey["price"].Text)
	assert.Equal(t, "3", byKey["itemCount"].Text)
	assert.Equal(t, "-", byKey["note"].Text)
	assert.Equal(t, "G002", byKey["id"].Text)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "¥1,234.50", Money(1234.5))
	assert.Equal(t, "¥0.00", Money(0))
	assert.Equal(t, "¥1,893,421.50", Money(1893421.5))
}
