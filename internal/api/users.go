package api

import (
	"context"
	"net/http"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
)

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	raw, err := c.getJSON(ctx, "/dashboard/users")
	if err != nil {
		return nil, err
	}
	items, err := decodeUsers(raw)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return items, nil
}

// UpdateUserRole patches a single user's role. Whatever shape the backend
// answers with ({user}, bare object or message-only), the result is
// guaranteed to carry at least the id and the new role.
func (c *Client) UpdateUserRole(ctx context.Context, id ID, role string) (User, error) {
	raw, err := c.sendJSON(ctx, http.MethodPatch, "/dashboard/users/"+id.String(), map[string]string{"role": role})
	if err != nil {
		return User{}, err
	}

	u, decErr := decodeUser(raw)
	if decErr != nil || u.ID == "" {
		u = User{ID: id}
	}
	if u.Role == "" {
		u.Role = role
	}
	return u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id ID) error {
	return c.delete(ctx, "/dashboard/users/"+id.String())
}
