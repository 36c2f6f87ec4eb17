package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
	"github.com/AcebergChristian/jushuitan/internal/http/render"
	"github.com/AcebergChristian/jushuitan/internal/http/validation"
	"github.com/AcebergChristian/jushuitan/internal/upstream"
	"github.com/AcebergChristian/jushuitan/pkg/view"
)

type userInput struct {
	Username    string   `form:"username" binding:"required,min=2,max=64"`
	Email       string   `form:"email" binding:"omitempty,email"`
	Password    string   `form:"password"`
	IsActive    bool     `form:"is_active"`
	GoodsStores []string `form:"goods_stores"`
}

type UsersHandler struct {
	Base
}

func NewUsersHandler(b Base) *UsersHandler {
	return &UsersHandler{Base: b}
}

func (h *UsersHandler) Index(c *gin.Context) {
	page, size, search := listParams(c)

	vm := view.ListPage{
		Page:     h.page(c, "用户管理", "users"),
		Search:   search,
		BasePath: "/users",
	}

	list, err := h.Upstream.ListUsers(c.Request.Context(), middleware.Token(c), (page-1)*size, size, search)
	if err != nil {
		if h.expired(c, err) {
			return
		}
		inlineError(&vm.Page, err)
		render.Page(c, http.StatusOK, "users.tmpl", vm)
		return
	}

	vm.Table = view.BuildTable(list.Items)
	vm.Paginator = view.NewPaginator(page, size, list.Total)
	render.Page(c, http.StatusOK, "users.tmpl", vm)
}

func (h *UsersHandler) New(c *gin.Context) {
	form := view.UserForm{IsActive: true}
	form.GoodsStores = h.goodsOptions(c, nil)
	h.renderForm(c, http.StatusOK, form, nil, false)
}

func (h *UsersHandler) Create(c *gin.Context) {
	var in userInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderForm(c, http.StatusBadRequest, h.formFromInput(c, in, ""), errs, false)
		return
	}
	if in.Password == "" {
		h.renderForm(c, http.StatusBadRequest, h.formFromInput(c, in, ""),
			map[string]string{"password": "该字段为必填项"}, false)
		return
	}

	err := h.Upstream.CreateUser(c.Request.Context(), middleware.Token(c), upstream.UserPayload{
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		IsActive:    in.IsActive,
		GoodsStores: goodsStoresPayload(in.GoodsStores),
	})
	if err != nil {
		h.backWithError(c, "/users/new", err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/users", view.FlashSuccess, "用户创建成功")
}

func (h *UsersHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.Upstream.GetUser(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		h.backWithError(c, "/users", err)
		return
	}

	form := view.UserForm{
		ID:       id,
		Username: str(rec["username"]),
		Email:    str(rec["email"]),
		IsActive: rec["is_active"] != false,
	}
	form.GoodsStores = h.goodsOptions(c, selectedGoodIDs(rec["goods_stores"]))
	h.renderForm(c, http.StatusOK, form, nil, true)
}

func (h *UsersHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var in userInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderForm(c, http.StatusBadRequest, h.formFromInput(c, in, id), errs, true)
		return
	}

	err := h.Upstream.UpdateUser(c.Request.Context(), middleware.Token(c), id, upstream.UserPayload{
		Username:    in.Username,
		Email:       in.Email,
		IsActive:    in.IsActive,
		GoodsStores: goodsStoresPayload(in.GoodsStores),
	})
	if err != nil {
		h.backWithError(c, "/users/"+id+"/edit", err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/users", view.FlashSuccess, "用户更新成功")
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Upstream.DeleteUser(c.Request.Context(), middleware.Token(c), id); err != nil {
		h.backWithError(c, "/users", err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/users", view.FlashSuccess, "用户删除成功")
}

func (h *UsersHandler) renderForm(c *gin.Context, status int, form view.UserForm, errs map[string]string, isEdit bool) {
	title := "新建用户"
	if isEdit {
		title = "编辑用户"
	}
	render.Page(c, status, "user_form.tmpl", view.UserFormPage{
		Page:   h.page(c, title, "users"),
		Form:   form,
		Errors: errs,
		IsEdit: isEdit,
	})
}

func (h *UsersHandler) formFromInput(c *gin.Context, in userInput, id string) view.UserForm {
	selected := map[string]bool{}
	for _, g := range in.GoodsStores {
		selected[g] = true
	}
	return view.UserForm{
		ID:          id,
		Username:    in.Username,
		Email:       in.Email,
		IsActive:    in.IsActive,
		GoodsStores: h.goodsOptions(c, selected),
	}
}

// goodsOptions loads the goods dictionary for the association picker.
// Failure degrades to an empty picker, the form still works.
func (h *UsersHandler) goodsOptions(c *gin.Context, selected map[string]bool) []view.GoodsStoreOption {
	dict, err := h.Upstream.GoodsDict(c.Request.Context(), middleware.Token(c))
	if err != nil {
		h.Log.Warn("goods_dict_unavailable", "err", err)
		return nil
	}
	out := make([]view.GoodsStoreOption, 0, len(dict))
	for _, e := range dict {
		out = append(out, view.GoodsStoreOption{
			GoodID:   e.GoodID,
			GoodName: e.GoodName,
			Selected: selected[e.GoodID],
		})
	}
	return out
}

// selectedGoodIDs handles the two historical shapes of goods_stores:
// ["id", ...] and [{"good_id": ..., "good_name": ...}, ...].
func selectedGoodIDs(v any) map[string]bool {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := map[string]bool{}
	for _, it := range arr {
		switch t := it.(type) {
		case string:
			out[t] = true
		case map[string]any:
			if id := str(t["good_id"]); id != "" {
				out[id] = true
			}
		}
	}
	return out
}

func goodsStoresPayload(ids []string) []upstream.GoodsStore {
	out := make([]upstream.GoodsStore, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		out = append(out, upstream.GoodsStore{GoodID: id})
	}
	return out
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
