// mockupstream is a fake backend API for local development: it answers the
// same routes the dashboard consumes, with canned data in the same shapes
// the real service produces (Python repr strings included).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	api := r.Group("/api/v1")
	api.POST("/login", login)
	api.POST("/logout", func(c *gin.Context) { c.JSON(200, gin.H{"message": "ok"}) })

	authed := api.Group("", requireBearer)
	authed.GET("/dashboard/stats", dashboardStats)
	authed.GET("/dashboard/chart-data", dashboardChart)
	authed.GET("/dashboard/recent-activities", activities)
	authed.GET("/jushuitan_products/", listRecords(products))
	authed.POST("/sync_jushuitan_data", syncOK("数据同步成功"))
	authed.GET("/goods/", listRecords(goods))
	authed.POST("/sync_goods/", syncOK("商品同步成功"))
	authed.GET("/goods_dict/", goodsDict)
	authed.GET("/users", listUsers)
	authed.POST("/users/", createUser)
	authed.GET("/users/:id", getUser)
	authed.PUT("/users/:id", updateUser)
	authed.DELETE("/users/:id", deleteUser)
	authed.GET("/stores_data/", listRecords(stores))
	authed.GET("/store_goods_detail/:id", storeGoodsDetail)
	authed.GET("/cancel_data/", cancelData)
	authed.POST("/sync_cancel_data", syncOK("退货数据同步成功"))
	authed.GET("/cancel_store_details/:id", listRecords(cancelDetails))
	authed.GET("/cancel_product_details/:id", listRecords(cancelDetails))

	fmt.Println("mock upstream listening on", *addr)
	log.Fatal(r.Run(*addr))
}

func requireBearer(c *gin.Context) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") || strings.TrimPrefix(h, "Bearer ") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}
	c.Next()
}

func login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username != "admin" || password != "admin123" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "用户名或密码错误"})
		return
	}
	// userinfo arrives double-encoded, exactly like the real service
	info, _ := json.Marshal(map[string]any{"username": username, "role": "admin"})
	c.JSON(http.StatusOK, gin.H{
		"access_token": uuid.NewString(),
		"token_type":   "bearer",
		"userinfo":     string(info),
	})
}

func dashboardStats(c *gin.Context) {
	c.JSON(200, gin.H{"data": gin.H{
		"total_users":        8,
		"total_goods":        126,
		"total_stores":       12,
		"total_sales_amount": 1893421.5,
		"today_sales":        15998.0,
		"week_sales":         98214.0,
		"month_sales":        412874.5,
	}})
}

func dashboardChart(c *gin.Context) {
	out := []gin.H{}
	for i := 6; i >= 0; i-- {
		d := time.Now().AddDate(0, 0, -i)
		out = append(out, gin.H{"date": d.Format("01-02"), "sales": 8000 + float64(i*1200), "orders": 40 + i*3})
	}
	c.JSON(200, gin.H{"data": out})
}

func activities(c *gin.Context) {
	c.JSON(200, gin.H{"data": []gin.H{
		{"user": "admin", "action": "同步了聚水潭数据", "time": "10分钟前"},
		{"user": "admin", "action": "新建用户 zhangsan", "time": "2小时前"},
	}})
}

// listRecords pages a fixed record set with skip/limit/search.
func listRecords(all []map[string]any) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		search := c.Query("search")

		matched := all
		if search != "" {
			matched = nil
			for _, rec := range all {
				if recContains(rec, search) {
					matched = append(matched, rec)
				}
			}
		}
		end := skip + limit
		if skip > len(matched) {
			skip = len(matched)
		}
		if end > len(matched) {
			end = len(matched)
		}
		c.JSON(200, gin.H{"data": matched[skip:end], "total": len(matched)})
	}
}

func recContains(rec map[string]any, needle string) bool {
	for _, v := range rec {
		if s, ok := v.(string); ok && strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func goodsDict(c *gin.Context) {
	out := []gin.H{}
	for _, g := range goods {
		out = append(out, gin.H{"good_id": g["id"], "good_name": g["name"]})
	}
	c.JSON(200, gin.H{"data": out})
}

var (
	usersMu sync.Mutex
	users   = []map[string]any{
		{"id": "1", "username": "admin", "email": "admin@example.com", "is_active": true,
			"goods_stores": []any{map[string]any{"good_id": "G001", "good_name": "无线蓝牙耳机"}}},
	}
)

func listUsers(c *gin.Context) {
	usersMu.Lock()
	defer usersMu.Unlock()
	listRecords(users)(c)
}

func createUser(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	usersMu.Lock()
	defer usersMu.Unlock()
	in["id"] = strconv.Itoa(len(users) + 1)
	delete(in, "password")
	users = append(users, in)
	c.JSON(200, gin.H{"message": "用户创建成功"})
}

func getUser(c *gin.Context) {
	usersMu.Lock()
	defer usersMu.Unlock()
	for _, u := range users {
		if u["id"] == c.Param("id") {
			c.JSON(200, gin.H{"data": u})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "用户不存在"})
}

func updateUser(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	usersMu.Lock()
	defer usersMu.Unlock()
	for i, u := range users {
		if u["id"] == c.Param("id") {
			in["id"] = u["id"]
			delete(in, "password")
			users[i] = in
			c.JSON(200, gin.H{"message": "用户更新成功"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "用户不存在"})
}

func deleteUser(c *gin.Context) {
	usersMu.Lock()
	defer usersMu.Unlock()
	for i, u := range users {
		if u["id"] == c.Param("id") {
			users = append(users[:i], users[i+1:]...)
			c.JSON(200, gin.H{"message": "用户删除成功"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "用户不存在"})
}

func storeGoodsDetail(c *gin.Context) {
	listRecords(cancelDetails)(c)
}

func cancelData(c *gin.Context) {
	if c.DefaultQuery("dimension", "store") == "product" {
		listRecords(cancelByProduct)(c)
		return
	}
	listRecords(cancelByStore)(c)
}

func syncOK(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			SyncDate string `json:"sync_date"`
		}
		_ = c.ShouldBindJSON(&in)
		if in.SyncDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "缺少同步日期"})
			return
		}
		c.JSON(200, gin.H{"message": msg + " (" + in.SyncDate + ")"})
	}
}

// Canned records. String fields deliberately carry Python repr payloads,
// matching what the sync pipeline writes into the real database.
var products = []map[string]any{
	{
		"id": "JST-20240115-001", "orderStatus": "completed", "payAmount": 15998.0,
		"created_at": "2024-01-15T10:23:00",
		"disInnerOrderGoodsViewList": "[{'supplierName': '深圳华强供应链', 'itemCode': 'SKU-8801', 'itemName': '无线蓝牙耳机', 'properties': '黑色', 'itemCount': 2, 'price': 7999.0, 'totalPrice': 15998.0}]",
		"receiverInfo":               "{'ReceiverName': '张三', 'ReceiverPhone': '138****1234', 'ReceiverAddress': '广东省深圳市南山区科技园'}",
	},
	{
		"id": "JST-20240115-002", "orderStatus": "processing", "payAmount": 8999.0,
		"created_at": "2024-01-15T11:05:00",
		"disInnerOrderGoodsViewList": "[{'supplierName': '杭州品牌直供', 'itemCode': 'SKU-7702', 'itemName': '智能手表', 'properties': '银色 42mm', 'itemCount': 1, 'price': 8999.0, 'totalPrice': 8999.0}]",
		"receiverInfo":               "{'ReceiverName': '李四', 'ReceiverPhone': '139****5678', 'ReceiverAddress': '浙江省杭州市西湖区文三路'}",
	},
	{
		"id": "JST-20240114-003", "orderStatus": "cancel", "payAmount": 1899.0,
		"created_at": "2024-01-14T16:40:00",
		"disInnerOrderGoodsViewList": "[{'itemCode': 'SKU-5503', 'itemName': '机械键盘', 'itemCount': 1, 'price': 1899.0, 'totalPrice': 1899.0}]",
		"receiverInfo":               "{'ReceiverName': '王五', 'ReceiverPhone': '137****9012', 'ReceiverAddress': '北京市朝阳区望京街道'}",
	},
}

var goods = []map[string]any{
	{"id": "G001", "name": "无线蓝牙耳机", "category": "数码产品", "price": 7999.0, "stock": 156, "status": "active", "tags": "['热卖', '新品']", "created_at": "2024-01-10T09:00:00"},
	{"id": "G002", "name": "智能手表", "category": "数码产品", "price": 8999.0, "stock": 8, "status": "low-stock", "tags": "['限量']", "created_at": "2024-01-08T14:30:00"},
	{"id": "G003", "name": "机械键盘", "category": "电脑配件", "price": 1899.0, "stock": 0, "status": "out-of-stock", "tags": "[]", "created_at": "2024-01-05T11:20:00"},
}

var stores = []map[string]any{
	{"id": "S001", "store_name": "旗舰店", "platform": "聚水潭", "totalAmt": 893214.0, "orderCount": 1203, "status": "active"},
	{"id": "S002", "store_name": "拼多多直营店", "platform": "拼多多", "totalAmt": 412874.5, "orderCount": 886, "status": "active"},
}

var cancelByStore = []map[string]any{
	{"id": "S001", "store_name": "旗舰店", "cancelCount": 32, "totalAmt": 28714.0, "data_type": "store"},
	{"id": "S002", "store_name": "拼多多直营店", "cancelCount": 57, "totalAmt": 51208.5, "data_type": "store"},
}

var cancelByProduct = []map[string]any{
	{"id": "G001", "good_name": "无线蓝牙耳机", "cancelCount": 12, "totalAmt": 9598.8, "data_type": "product"},
	{"id": "G003", "good_name": "机械键盘", "cancelCount": 21, "totalAmt": 3987.9, "data_type": "product"},
}

var cancelDetails = []map[string]any{
	{"id": "C-1001", "orderStatus": "cancelled", "payAmount": 799.5, "created_at": "2024-01-14T09:12:00", "reason": "七天无理由退货"},
	{"id": "C-1002", "orderStatus": "cancelled", "payAmount": 1899.0, "created_at": "2024-01-13T18:44:00", "reason": "商品与描述不符"},
}
