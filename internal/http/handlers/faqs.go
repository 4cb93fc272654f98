package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/middleware"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

type FaqsHandler struct {
	Store *store.Store
	Flash *flash.Codec
}

func NewFaqsHandler(st *store.Store, fc *flash.Codec) *FaqsHandler {
	return &FaqsHandler{Store: st, Flash: fc}
}

// faqCategory validates the ?category= filter; anything unknown falls back
// to ALL.
func faqCategory(s string) string {
	for _, c := range api.FaqCategories {
		if s == c {
			return s
		}
	}
	return "ALL"
}

// List renders /dashboard/faq with the category filter. Stats count the
// whole list; the pager runs over the filtered subset.
func (h *FaqsHandler) List(c *gin.Context) {
	if !listErrOK(c, h.Store.Faqs.FetchAll(c.Request.Context())) {
		return
	}

	snap := h.Store.Faqs.Snapshot()
	filter := faqCategory(c.Query("category"))

	stats := view.FaqStats{Total: len(snap.Items)}
	for _, f := range snap.Items {
		if f.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}

	filtered := snap.Items
	if filter != "ALL" {
		filtered = nil
		for _, f := range snap.Items {
			if f.Category == filter {
				filtered = append(filtered, f)
			}
		}
	}

	pager := view.Paginate(len(filtered), pageQuery(c), faqsPageSize)
	items := make([]view.FaqItem, 0, pager.End-pager.Start)
	for _, f := range view.PageSlice(filtered, pager) {
		items = append(items, mapFaqItem(f, snap.TogglingID))
	}

	render.Page(c, http.StatusOK, "faqs_list", view.FaqsPage{
		Layout:     layoutFor(c, "FAQ", "faq"),
		Items:      items,
		Stats:      stats,
		Pager:      pager,
		Categories: faqFilterOptions(filter),
		Filter:     filter,
		ListError:  snap.List.Err,
		Loading:    snap.List.Loading(),
	})
}

func (h *FaqsHandler) New(c *gin.Context) {
	render.Page(c, http.StatusOK, "faq_form", view.FaqFormPage{
		Layout:     layoutFor(c, "Add FAQ", "faq"),
		Form:       view.FaqForm{IsActive: true},
		Categories: faqFormOptions(""),
	})
}

func (h *FaqsHandler) Create(c *gin.Context) {
	form, apiForm, errs := parseFaqForm(c)
	if len(errs) > 0 {
		render.Page(c, http.StatusBadRequest, "faq_form", view.FaqFormPage{
			Layout:      layoutFor(c, "Add FAQ", "faq"),
			Form:        form,
			FieldErrors: errs,
			Categories:  faqFormOptions(form.Category),
		})
		return
	}

	err := h.Store.Faqs.Add(c.Request.Context(), apiForm)
	actionDone(c, h.Flash, "/dashboard/faq", err, "FAQ created.")
}

// Edit prefills from the in-memory list; there is no FAQ detail endpoint.
func (h *FaqsHandler) Edit(c *gin.Context) {
	id := api.ID(c.Param("id"))

	f, ok := h.Store.Faqs.Get(id)
	if !ok {
		if err := h.Store.Faqs.FetchAll(c.Request.Context()); err != nil && !listErrOK(c, err) {
			return
		}
		if f, ok = h.Store.Faqs.Get(id); !ok {
			middleware.Fail(c, apperr.NotFoundErr("FAQ not found."))
			return
		}
	}

	render.Page(c, http.StatusOK, "faq_form", view.FaqFormPage{
		Layout:  layoutFor(c, "Edit FAQ", "faq"),
		Editing: true,
		FaqID:   f.ID.String(),
		Form: view.FaqForm{
			Question: f.Question,
			Answer:   f.Answer,
			Category: f.Category,
			IsActive: f.IsActive,
		},
		Categories: faqFormOptions(f.Category),
	})
}

func (h *FaqsHandler) Update(c *gin.Context) {
	id := api.ID(c.Param("id"))
	form, apiForm, errs := parseFaqForm(c)
	if len(errs) > 0 {
		render.Page(c, http.StatusBadRequest, "faq_form", view.FaqFormPage{
			Layout:      layoutFor(c, "Edit FAQ", "faq"),
			Editing:     true,
			FaqID:       id.String(),
			Form:        form,
			FieldErrors: errs,
			Categories:  faqFormOptions(form.Category),
		})
		return
	}

	err := h.Store.Faqs.Update(c.Request.Context(), id, apiForm)
	actionDone(c, h.Flash, "/dashboard/faq", err, "FAQ updated.")
}

// Toggle flips the active flag. The store applies it optimistically and
// rolls back on failure; either way the redirect lands on the same page and
// filter the form came from.
func (h *FaqsHandler) Toggle(c *gin.Context) {
	id := api.ID(c.Param("id"))
	err := h.Store.Faqs.ToggleActive(c.Request.Context(), id)
	actionDone(c, h.Flash, h.backToList(c), err, "FAQ updated.")
}

func (h *FaqsHandler) Delete(c *gin.Context) {
	id := api.ID(c.Param("id"))
	err := h.Store.Faqs.Delete(c.Request.Context(), id)
	actionDone(c, h.Flash, h.backToList(c), err, "FAQ deleted.")
}

func (h *FaqsHandler) backToList(c *gin.Context) string {
	filter := faqCategory(c.PostForm("category"))
	return fmt.Sprintf("/dashboard/faq?category=%s&page=%d", url.QueryEscape(filter), pageQuery(c))
}

func parseFaqForm(c *gin.Context) (view.FaqForm, api.FaqForm, map[string]string) {
	form := view.FaqForm{
		Question: c.PostForm("question"),
		Answer:   c.PostForm("answer"),
		Category: c.PostForm("category"),
		IsActive: c.PostForm("is_active") == "true",
	}

	errs := map[string]string{}
	if form.Question == "" {
		errs["question"] = "This field is required."
	}
	if form.Answer == "" {
		errs["answer"] = "This field is required."
	}
	if !validFaqFormCategory(form.Category) {
		errs["category"] = "Please choose a category."
	}

	if len(errs) > 0 {
		return form, api.FaqForm{}, errs
	}
	return form, api.FaqForm{
		Question: form.Question,
		Answer:   form.Answer,
		Category: form.Category,
		IsActive: form.IsActive,
	}, nil
}

// validFaqFormCategory: ALL sadece filtrede var, formda seçilemez.
func validFaqFormCategory(s string) bool {
	for _, c := range api.FaqCategories {
		if c != "ALL" && s == c {
			return true
		}
	}
	return false
}

func faqFilterOptions(selected string) []view.Option {
	out := make([]view.Option, 0, len(api.FaqCategories))
	for _, c := range api.FaqCategories {
		out = append(out, view.Option{Value: c, Label: c, Selected: c == selected})
	}
	return out
}

func faqFormOptions(selected string) []view.Option {
	out := make([]view.Option, 0, len(api.FaqCategories)-1)
	for _, c := range api.FaqCategories {
		if c == "ALL" {
			continue
		}
		out = append(out, view.Option{Value: c, Label: c, Selected: c == selected})
	}
	return out
}

func mapFaqItem(f api.Faq, togglingID api.ID) view.FaqItem {
	atts := make([]view.FaqAttachment, 0, len(f.Attachments))
	for _, a := range f.Attachments {
		atts = append(atts, view.FaqAttachment{Name: a.Name, URL: a.URL})
	}
	return view.FaqItem{
		ID:          f.ID.String(),
		Question:    f.Question,
		Answer:      f.Answer,
		Category:    f.Category,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		Attachments: atts,
		Busy:        togglingID != "" && togglingID == f.ID,
	}
}
