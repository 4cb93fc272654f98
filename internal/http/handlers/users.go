package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

type UsersHandler struct {
	Store *store.Store
	Flash *flash.Codec
}

func NewUsersHandler(st *store.Store, fc *flash.Codec) *UsersHandler {
	return &UsersHandler{Store: st, Flash: fc}
}

func (h *UsersHandler) List(c *gin.Context) {
	if !listErrOK(c, h.Store.Users.FetchAll(c.Request.Context())) {
		return
	}

	snap := h.Store.Users.Snapshot()
	pager := view.Paginate(len(snap.Items), pageQuery(c), usersPageSize)

	render.Page(c, http.StatusOK, "users", view.UsersPage{
		Layout:    layoutFor(c, "Users", "users"),
		Items:     mapUserList(view.PageSlice(snap.Items, pager)),
		Pager:     pager,
		ListError: snap.List.Err,
		Loading:   snap.List.Loading(),
		Roles:     api.UserRoles,
	})
}

// UpdateRole changes one user's role from the row dropdown.
func (h *UsersHandler) UpdateRole(c *gin.Context) {
	id := api.ID(c.Param("id"))
	role := c.PostForm("role")
	backTo := fmt.Sprintf("/dashboard/users?page=%d", pageQuery(c))

	if !validRole(role) {
		render.RedirectWithFlash(c, h.Flash, backTo, view.FlashError, "Invalid role.")
		return
	}

	err := h.Store.Users.UpdateRole(c.Request.Context(), id, role)
	actionDone(c, h.Flash, backTo, err, "Role updated.")
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id := api.ID(c.Param("id"))
	backTo := fmt.Sprintf("/dashboard/users?page=%d", pageQuery(c))

	err := h.Store.Users.Delete(c.Request.Context(), id)
	actionDone(c, h.Flash, backTo, err, "User deleted.")
}

func validRole(role string) bool {
	for _, r := range api.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

func mapUserList(items []api.User) []view.UserListItem {
	out := make([]view.UserListItem, 0, len(items))
	for _, u := range items {
		out = append(out, view.UserListItem{
			ID:        u.ID.String(),
			Name:      u.FullName(),
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: shortDate(u.CreatedAt),
		})
	}
	return out
}
