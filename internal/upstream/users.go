package upstream

import "context"

// GoodsStore associates a user with one good/store pair.
type GoodsStore struct {
	GoodID   string `json:"good_id"`
	GoodName string `json:"good_name,omitempty"`
}

// UserPayload is the create/update body. Password is only sent on create.
type UserPayload struct {
	Username    string       `json:"username"`
	Email       string       `json:"email,omitempty"`
	Password    string       `json:"password,omitempty"`
	IsActive    bool         `json:"is_active"`
	GoodsStores []GoodsStore `json:"goods_stores"`
}

func (c *Client) ListUsers(ctx context.Context, token string, skip, limit int, search string) (ListResult, error) {
	b, err := c.get(ctx, token, "/users", pageQuery(skip, limit, search))
	if err != nil {
		return ListResult{}, err
	}
	return decodeList(b)
}

func (c *Client) CreateUser(ctx context.Context, token string, p UserPayload) error {
	_, err := c.postJSON(ctx, token, "/users/", p)
	return err
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, p UserPayload) error {
	_, err := c.putJSON(ctx, token, "/users/"+id, p)
	return err
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	_, err := c.delete(ctx, token, "/users/"+id)
	return err
}

// GetUser fetches one user row for the edit form.
func (c *Client) GetUser(ctx context.Context, token, id string) (map[string]any, error) {
	b, err := c.get(ctx, token, "/users/"+id, nil)
	if err != nil {
		return nil, err
	}
	obj, err := decodeObject(b)
	if err != nil {
		return nil, err
	}
	return obj, nil
}
