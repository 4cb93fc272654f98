package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

// barMaxPx is the tallest bar in the CSS charts.
const barMaxPx = 120

// AnalyticsHandler aggregates over the four in-memory lists; there is no
// dedicated analytics endpoint on the backend.
type AnalyticsHandler struct {
	Store *store.Store
}

func NewAnalyticsHandler(st *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{Store: st}
}

func (h *AnalyticsHandler) Get(c *gin.Context) {
	loadErr := h.refreshAll(c)
	if c.IsAborted() {
		return
	}

	products := h.Store.Products.Snapshot().Items
	users := h.Store.Users.Snapshot().Items
	reviews := h.Store.Reviews.Snapshot().Items
	faqs := h.Store.Faqs.Snapshot().Items

	render.Page(c, http.StatusOK, "analytics", view.AnalyticsPage{
		Layout:      layoutFor(c, "Analytics", "analytics"),
		Metrics:     computeMetrics(products, users, reviews, faqs),
		UsersGrowth: usersByMonth(users),
		Ratings:     ratingCounts(reviews),
		FaqsByCat:   faqsByCategory(faqs),
		LoadError:   loadErr,
	})
}

// refreshAll fetches every list; the first renderable error message wins.
// An unauthorized error aborts through listErrOK and forces logout.
func (h *AnalyticsHandler) refreshAll(c *gin.Context) string {
	ctx := c.Request.Context()
	fetches := []func() (error, string){
		func() (error, string) { return h.Store.Products.FetchAll(ctx), h.Store.Products.Snapshot().List.Err },
		func() (error, string) { return h.Store.Users.FetchAll(ctx), h.Store.Users.Snapshot().List.Err },
		func() (error, string) { return h.Store.Reviews.FetchAll(ctx), h.Store.Reviews.Snapshot().List.Err },
		func() (error, string) { return h.Store.Faqs.FetchAll(ctx), h.Store.Faqs.Snapshot().List.Err },
	}

	loadErr := ""
	for _, fetch := range fetches {
		err, msg := fetch()
		if !listErrOK(c, err) {
			return ""
		}
		if loadErr == "" && msg != "" {
			loadErr = msg
		}
	}
	return loadErr
}

func computeMetrics(products []api.Product, users []api.User, reviews []api.Review, faqs []api.Faq) view.KeyMetrics {
	m := view.KeyMetrics{
		TotalProducts: len(products),
		TotalUsers:    len(users),
		TotalReviews:  len(reviews),
		TotalFaqs:     len(faqs),
	}

	priceSum := 0.0
	for _, p := range products {
		m.TotalStock += p.Stock
		priceSum += p.Price
	}
	if len(products) > 0 {
		m.AvgPrice = fmt.Sprintf("$%.2f", priceSum/float64(len(products)))
	} else {
		m.AvgPrice = "-"
	}

	for _, u := range users {
		if u.Role == "admin" {
			m.AdminCount++
		}
	}

	approved := 0
	for _, r := range reviews {
		if r.IsApproved {
			approved++
		}
	}
	if len(reviews) > 0 {
		m.ApprovedPct = approved * 100 / len(reviews)
	}

	for _, f := range faqs {
		if f.IsActive {
			m.ActiveFaqCount++
		}
	}
	return m
}

// usersByMonth buckets signups by "YYYY-MM" from the createdAt strings and
// scales bar heights against the busiest month.
func usersByMonth(users []api.User) []view.MonthCount {
	buckets := map[string]int{}
	for _, u := range users {
		if len(u.CreatedAt) < 7 {
			continue
		}
		buckets[u.CreatedAt[:7]]++
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	max := 0
	for _, m := range months {
		if buckets[m] > max {
			max = buckets[m]
		}
	}

	out := make([]view.MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, view.MonthCount{
			Month: m,
			Count: buckets[m],
			Pct:   scaleBar(buckets[m], max),
		})
	}
	return out
}

func ratingCounts(reviews []api.Review) []view.RatingCount {
	counts := [6]int{}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating]++
		}
	}
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	out := make([]view.RatingCount, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		out = append(out, view.RatingCount{
			Rating: rating,
			Count:  counts[rating],
			Pct:    scaleBar(counts[rating], max),
		})
	}
	return out
}

func faqsByCategory(faqs []api.Faq) []view.CategoryCount {
	out := make([]view.CategoryCount, 0, len(api.FaqCategories)-1)
	for _, cat := range api.FaqCategories {
		if cat == "ALL" {
			continue
		}
		cc := view.CategoryCount{Category: cat}
		for _, f := range faqs {
			if f.Category != cat {
				continue
			}
			cc.Count++
			if f.IsActive {
				cc.Active++
			}
		}
		out = append(out, cc)
	}
	return out
}

// scaleBar maps a count to a pixel height; zero counts keep a visible stub.
func scaleBar(n, max int) int {
	if max <= 0 || n <= 0 {
		return 2
	}
	return 2 + n*(barMaxPx-2)/max
}
