package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/middleware"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

// Per-list page sizes. The backend never paginates; paging is in-memory.
const (
	productsPageSize = 6
	faqsPageSize     = 6
	usersPageSize    = 10
	reviewsPageSize  = 6
)

// shortDate trims an ISO timestamp to its date part for table cells.
func shortDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func layoutFor(c *gin.Context, title, active string) view.Layout {
	return view.Layout{
		Title:  title,
		Active: active,
		Flash:  middleware.GetFlash(c),
	}
}

// pageQuery reads ?page=N (or the hidden form field on POSTs). Values the
// user can mangle are clamped later by Paginate; here only parse.
func pageQuery(c *gin.Context) int {
	v := c.Query("page")
	if v == "" {
		v = c.PostForm("page")
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// listErrOK filters fetch errors for list pages: unauthorized escalates to
// the error-handler middleware (forced logout), everything else renders
// inline from the slice's own failed state. Returns false when the handler
// must stop.
func listErrOK(c *gin.Context, err error) bool {
	if err == nil || errors.Is(err, store.ErrInFlight) {
		return true
	}
	if apperr.IsUnauthorized(err) {
		middleware.Fail(c, err)
		return false
	}
	if c.Request.Context().Err() != nil {
		c.Abort()
		return false
	}
	return true
}

// actionDone finishes a mutating POST: success and failure both land back on
// backTo, success with the given toast, failure with the error message as a
// flash. Unauthorized escalates.
func actionDone(c *gin.Context, fc *flash.Codec, backTo string, err error, successMsg string) {
	if err == nil {
		render.RedirectWithFlash(c, fc, backTo, view.FlashSuccess, successMsg)
		return
	}
	if errors.Is(err, store.ErrInFlight) {
		render.RedirectWithFlash(c, fc, backTo, view.FlashWarning, "That operation is already in progress.")
		return
	}
	if apperr.IsUnauthorized(err) {
		middleware.Fail(c, err)
		return
	}
	if c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	render.RedirectWithFlash(c, fc, backTo, view.FlashError, apperr.PublicMessage(err))
}
