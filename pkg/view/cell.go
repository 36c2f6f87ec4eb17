package view

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AcebergChristian/jushuitan/internal/shared/pyjson"
)

// ContentKind selects how a table cell is displayed.
type ContentKind string

const (
	ContentText      ContentKind = "text"
	ContentBadge     ContentKind = "badge"
	ContentCards     ContentKind = "cards"
	ContentChips     ContentKind = "chips"
	ContentSummaries ContentKind = "summaries"
	ContentAddress   ContentKind = "address"
	ContentTruncated ContentKind = "truncated"
)

// LineItemCard is one order line item rendered inside a cell.
// Empty fields are not shown.
type LineItemCard struct {
	Supplier   string
	PicURL     string
	ItemCode   string
	ItemName   string
	Properties string
	Count      string
	UnitPrice  string
	TotalPrice string
}

// DisplayContent is the result of rendering one cell. Only the fields
// relevant to Kind are populated.
type DisplayContent struct {
	Kind  ContentKind
	Text  string // text / badge label / truncated preview
	Tone  string // badge tone: green, yellow, red, blue, gray, purple
	Full  string // truncated: the complete value
	Chips []string
	Cards []LineItemCard
	Lines []string // summaries / address lines
	Note  string   // summaries: trailing "...还有N项"
}

const truncateAt = 50

// lineItemsKey carries the upstream order line item list, usually as a
// Python repr string.
const lineItemsKey = "disInnerOrderGoodsViewList"

var statusKeys = map[string]bool{
	"status":      true,
	"platform":    true,
	"isSuccess":   true,
	"orderStatus": true,
	"orderType":   true,
	"data_type":   true,
}

var currencyKeys = map[string]bool{
	"price":                         true,
	"amount":                        true,
	"totalSpent":                    true,
	"purchaseAmt":                   true,
	"totalAmt":                      true,
	"commission":                    true,
	"freight":                       true,
	"payAmount":                     true,
	"discountAmt":                   true,
	"paidAmount":                    true,
	"totalPurchasePriceGoods":       true,
	"smallProgramFreight":           true,
	"totalTransactionPurchasePrice": true,
	"smallProgramCommission":        true,
	"smallProgramPaidAmount":        true,
	"clientPaidAmt":                 true,
	"goodsAmt":                      true,
	"freeAmount":                    true,
	"drpAmount":                     true,
}

// RenderCell decides how to display one record field. It never fails: any
// value it cannot make sense of degrades to plain text or the "-"
// placeholder. Rule order matters, a key can satisfy several branches.
func RenderCell(key string, value any) DisplayContent {
	switch {
	case statusKeys[key]:
		s := stringify(value)
		if s == "" {
			return placeholder()
		}
		return DisplayContent{Kind: ContentBadge, Text: s, Tone: statusTone(s)}
	case key == lineItemsKey:
		return renderLineItems(value)
	case currencyKeys[key]:
		f, ok := asNumber(value)
		if !ok || f == 0 {
			return placeholder()
		}
		return text(Money(f))
	}

	switch v := value.(type) {
	case bool:
		if v {
			return text("是")
		}
		return text("否")
	case float64:
		return text(formatNumber(v))
	case int:
		return text(strconv.Itoa(v))
	case int64:
		return text(strconv.FormatInt(v, 10))
	case json.Number:
		return text(v.String())
	case map[string]any:
		return renderObject(v)
	case []any:
		return renderArray(v)
	}

	if s, ok := value.(string); ok && pyjson.Looks(s) {
		parsed, err := pyjson.Parse(s)
		if err == nil {
			switch pv := parsed.(type) {
			case []any:
				return renderArray(pv)
			case map[string]any:
				return renderObject(pv)
			}
		}
		// 解析失败按普通字符串显示
		return renderString(s)
	}

	if isDateKey(key) {
		s := stringify(value)
		if s == "" {
			return placeholder()
		}
		return text(formatDateTime(s))
	}

	if s, ok := value.(string); ok {
		return renderString(s)
	}
	if value == nil {
		return placeholder()
	}
	return text(fmt.Sprint(value))
}

func statusTone(v string) string {
	switch v {
	case "active", "completed", "regular":
		return "green"
	case "low-stock", "pending":
		return "yellow"
	case "out-of-stock":
		return "red"
	case "processing":
		return "blue"
	case "cancelled", "cancel", "inactive":
		return "gray"
	case "vip":
		return "purple"
	default:
		return "gray"
	}
}

func renderLineItems(value any) DisplayContent {
	var items []any
	switch v := value.(type) {
	case string:
		if !pyjson.Looks(v) {
			return placeholder()
		}
		parsed, err := pyjson.Parse(v)
		if err != nil {
			return renderString(v)
		}
		arr, ok := parsed.([]any)
		if !ok {
			return renderString(v)
		}
		items = arr
	case []any:
		items = v
	default:
		return placeholder()
	}

	cards := make([]LineItemCard, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		card := LineItemCard{
			Supplier:   stringify(obj["supplierName"]),
			PicURL:     stringify(obj["pic"]),
			ItemCode:   stringify(obj["itemCode"]),
			ItemName:   stringify(obj["itemName"]),
			Properties: stringify(obj["properties"]),
			Count:      stringify(obj["itemCount"]),
		}
		if f, ok := asNumber(obj["price"]); ok {
			card.UnitPrice = "¥" + formatNumber(f)
		}
		if f, ok := asNumber(obj["totalPrice"]); ok {
			card.TotalPrice = "¥" + formatNumber(f)
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return placeholder()
	}
	return DisplayContent{Kind: ContentCards, Cards: cards}
}

func renderArray(arr []any) DisplayContent {
	if len(arr) == 0 {
		return placeholder()
	}

	if _, ok := arr[0].(string); ok {
		chips := make([]string, 0, len(arr))
		for _, v := range arr {
			chips = append(chips, stringify(v))
		}
		return DisplayContent{Kind: ContentChips, Chips: chips}
	}

	if _, ok := arr[0].(map[string]any); ok {
		lines := make([]string, 0, 3)
		for _, v := range arr {
			if len(lines) == 3 {
				break
			}
			obj, ok := v.(map[string]any)
			if !ok {
				continue
			}
			lines = append(lines, summarizeObject(obj))
		}
		dc := DisplayContent{Kind: ContentSummaries, Lines: lines}
		if len(arr) > 3 {
			dc.Note = fmt.Sprintf("...还有%d项", len(arr)-3)
		}
		return dc
	}

	return text(rawJSON(arr))
}

// summarizeObject builds a one-line summary from a priority list of
// recognized sub-fields, falling back to raw JSON.
func summarizeObject(obj map[string]any) string {
	if name := stringify(obj["itemName"]); name != "" {
		return fmt.Sprintf("商品: %s (%s件)", name, stringify(obj["itemCount"]))
	}
	if name := stringify(obj["receiverName"]); name != "" {
		return "收件人: " + name
	}
	var fields []string
	if f, ok := asNumber(obj["price"]); ok && f != 0 {
		fields = append(fields, "价格: ¥"+formatNumber(f))
	}
	if f, ok := asNumber(obj["totalPrice"]); ok && f != 0 {
		fields = append(fields, "总价: ¥"+formatNumber(f))
	}
	if c := stringify(obj["itemCount"]); c != "" {
		fields = append(fields, "数量: "+c)
	}
	if len(fields) == 0 {
		return rawJSON(obj)
	}
	return strings.Join(fields, ", ")
}

func renderObject(obj map[string]any) DisplayContent {
	type addrField struct{ name, phone, addr string }
	for _, conv := range []addrField{
		{"ReceiverName", "ReceiverPhone", "ReceiverAddress"},
		{"receiver_name", "receiver_phone", "receiver_address"},
	} {
		name := stringify(obj[conv.name])
		phone := stringify(obj[conv.phone])
		addr := stringify(obj[conv.addr])
		if name == "" && phone == "" && addr == "" {
			continue
		}
		var lines []string
		if name != "" {
			lines = append(lines, "姓名: "+name)
		}
		if phone != "" {
			lines = append(lines, "电话: "+phone)
		}
		if addr != "" {
			lines = append(lines, "地址: "+addr)
		}
		return DisplayContent{Kind: ContentAddress, Lines: lines}
	}
	return text(rawJSON(obj))
}

func renderString(s string) DisplayContent {
	if s == "" {
		return placeholder()
	}
	r := []rune(s)
	if len(r) > truncateAt {
		return DisplayContent{
			Kind: ContentTruncated,
			Text: string(r[:truncateAt]) + "...",
			Full: s,
		}
	}
	return text(s)
}

func isDateKey(key string) bool {
	return strings.Contains(key, "Time") ||
		strings.Contains(key, "Date") ||
		strings.Contains(key, "created_at") ||
		strings.Contains(key, "updated_at")
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatDateTime(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006/01/02 15:04:05")
		}
	}
	return s
}

func text(s string) DisplayContent {
	return DisplayContent{Kind: ContentText, Text: s}
}

func placeholder() DisplayContent {
	return DisplayContent{Kind: ContentText, Text: "-"}
}

// stringify renders scalars for display; nil and "" both come out empty.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return formatNumber(t)
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func rawJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
