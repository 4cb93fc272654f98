package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/validation"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

// ReviewsHandler is the moderation page: list, approve/unapprove, delete,
// plus a small form to post a test review through the public endpoint.
type ReviewsHandler struct {
	Store *store.Store
	Flash *flash.Codec
}

func NewReviewsHandler(st *store.Store, fc *flash.Codec) *ReviewsHandler {
	return &ReviewsHandler{Store: st, Flash: fc}
}

func (h *ReviewsHandler) List(c *gin.Context) {
	if !listErrOK(c, h.Store.Reviews.FetchAll(c.Request.Context())) {
		return
	}

	snap := h.Store.Reviews.Snapshot()
	pager := view.Paginate(len(snap.Items), pageQuery(c), reviewsPageSize)

	items := make([]view.ReviewItem, 0, pager.End-pager.Start)
	for _, r := range view.PageSlice(snap.Items, pager) {
		items = append(items, mapReviewItem(r, snap.ApprovingID, snap.DeletingID))
	}

	render.Page(c, http.StatusOK, "reviews", view.ReviewsPage{
		Layout:      layoutFor(c, "Reviews", "orders"),
		Items:       items,
		Stats:       reviewStats(snap.Items),
		Pager:       pager,
		ListError:   snap.List.Err,
		SubmitError: snap.Submit.Err,
		Loading:     snap.List.Loading(),
	})
}

// Create posts the moderation test review. The rating is validated before
// any request goes out.
func (h *ReviewsHandler) Create(c *gin.Context) {
	rating, ok := validation.Rating(c.PostForm("rating"))
	comment := c.PostForm("comment")

	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/dashboard/orders", view.FlashError, "Rating must be between 1 and 5.")
		return
	}
	if comment == "" {
		render.RedirectWithFlash(c, h.Flash, "/dashboard/orders", view.FlashError, "Comment is required.")
		return
	}

	err := h.Store.Reviews.Add(c.Request.Context(), rating, comment)
	actionDone(c, h.Flash, "/dashboard/orders", err, "Review submitted.")
}

// Update edits a review's rating and comment in place.
func (h *ReviewsHandler) Update(c *gin.Context) {
	id := api.ID(c.Param("id"))
	backTo := fmt.Sprintf("/dashboard/orders?page=%d", pageQuery(c))

	rating, ok := validation.Rating(c.PostForm("rating"))
	comment := c.PostForm("comment")
	if !ok {
		render.RedirectWithFlash(c, h.Flash, backTo, view.FlashError, "Rating must be between 1 and 5.")
		return
	}
	if comment == "" {
		render.RedirectWithFlash(c, h.Flash, backTo, view.FlashError, "Comment is required.")
		return
	}

	err := h.Store.Reviews.Edit(c.Request.Context(), id, rating, comment)
	actionDone(c, h.Flash, backTo, err, "Review updated.")
}

// ToggleApprove flips the approval switch. The store flips first and rolls
// back when the server rejects it, so the failure toast matches a reverted
// switch.
func (h *ReviewsHandler) ToggleApprove(c *gin.Context) {
	id := api.ID(c.Param("id"))
	backTo := fmt.Sprintf("/dashboard/orders?page=%d", pageQuery(c))

	err := h.Store.Reviews.ToggleApproved(c.Request.Context(), id)
	actionDone(c, h.Flash, backTo, err, "Review updated.")
}

func (h *ReviewsHandler) Delete(c *gin.Context) {
	id := api.ID(c.Param("id"))
	backTo := fmt.Sprintf("/dashboard/orders?page=%d", pageQuery(c))

	err := h.Store.Reviews.Delete(c.Request.Context(), id)
	actionDone(c, h.Flash, backTo, err, "Review deleted.")
}

func reviewStats(items []api.Review) view.ReviewStats {
	stats := view.ReviewStats{Total: len(items)}
	sum := 0
	for _, r := range items {
		if r.IsApproved {
			stats.Approved++
		} else {
			stats.Pending++
		}
		sum += r.Rating
	}
	if stats.Total > 0 {
		stats.AvgRating = fmt.Sprintf("%.1f", float64(sum)/float64(stats.Total))
	} else {
		stats.AvgRating = "-"
	}
	return stats
}

func mapReviewItem(r api.Review, approvingID, deletingID api.ID) view.ReviewItem {
	author := "Anonymous"
	if r.User != nil {
		author = r.User.FullName()
	}
	return view.ReviewItem{
		ID:         r.ID.String(),
		Rating:     r.Rating,
		Comment:    r.Comment,
		Author:     author,
		CreatedAt:  shortDate(r.CreatedAt),
		IsApproved: r.IsApproved,
		Busy:       (approvingID != "" && approvingID == r.ID) || (deletingID != "" && deletingID == r.ID),
	}
}
