package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

const recentUsersLimit = 5

// HomeHandler is the landing dashboard: headline counts, the admin list and
// the newest signups.
type HomeHandler struct {
	Store *store.Store
}

func NewHomeHandler(st *store.Store) *HomeHandler {
	return &HomeHandler{Store: st}
}

func (h *HomeHandler) Get(c *gin.Context) {
	analytics := AnalyticsHandler{Store: h.Store}
	loadErr := analytics.refreshAll(c)
	if c.IsAborted() {
		return
	}

	products := h.Store.Products.Snapshot().Items
	users := h.Store.Users.Snapshot().Items
	reviews := h.Store.Reviews.Snapshot().Items
	faqs := h.Store.Faqs.Snapshot().Items

	all := mapUserList(users)
	var admins []view.UserListItem
	for _, u := range all {
		if u.Role == "admin" {
			admins = append(admins, u)
		}
	}

	recent := all
	if len(recent) > recentUsersLimit {
		recent = recent[:recentUsersLimit]
	}

	render.Page(c, http.StatusOK, "home", view.HomePage{
		Layout:      layoutFor(c, "Dashboard", "home"),
		Metrics:     computeMetrics(products, users, reviews, faqs),
		Admins:      admins,
		RecentUsers: recent,
		LoadError:   loadErr,
	})
}
