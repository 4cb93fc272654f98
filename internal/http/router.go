// Package http wires the gin engine: middleware chain, page routes and the
// handler construction. One router, one store, one API client.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/config"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/authcookie"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/handlers"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/middleware"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
)

func NewRouter(logger *slog.Logger, cfg config.Config, apic *api.Client, st *store.Store) *gin.Engine {
	r := gin.New()

	flashCodec := flash.NewCodec(cfg.CookieSecret, "sl_flash", cfg.CookieSecure)
	authCodec := authcookie.New(cfg.CookieSecret, "sl_token", cfg.CookieSecure)

	// Sıra önemli: request id -> log -> recovery -> error handler -> flash -> token
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger, authCodec, flashCodec))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.TokenMiddleware(authCodec))

	login := handlers.NewLoginHandler(apic, authCodec, flashCodec)
	home := handlers.NewHomeHandler(st)
	products := handlers.NewProductsHandler(st, apic, flashCodec)
	faqs := handlers.NewFaqsHandler(st, flashCodec)
	users := handlers.NewUsersHandler(st, flashCodec)
	reviews := handlers.NewReviewsHandler(st, flashCodec)
	analytics := handlers.NewAnalyticsHandler(st)

	r.GET("/", func(c *gin.Context) {
		if middleware.HasToken(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", login.Get)
	r.POST("/login", login.Post)
	r.POST("/logout", login.LogoutPost)

	dash := r.Group("/dashboard", middleware.RequireToken(flashCodec))
	{
		dash.GET("", home.Get)

		dash.GET("/products", products.List)
		dash.GET("/product/:id", products.Detail)
		dash.POST("/product/:id/delete", products.Delete)
		dash.GET("/add-product", products.New)
		dash.POST("/add-product", products.Create)
		dash.GET("/edit-product/:id", products.Edit)
		dash.POST("/edit-product/:id", products.Update)

		dash.GET("/faq", faqs.List)
		dash.GET("/add-faq", faqs.New)
		dash.POST("/add-faq", faqs.Create)
		dash.GET("/edit-faq/:id", faqs.Edit)
		dash.POST("/edit-faq/:id", faqs.Update)
		dash.POST("/faq/:id/toggle", faqs.Toggle)
		dash.POST("/faq/:id/delete", faqs.Delete)

		dash.GET("/users", users.List)
		dash.POST("/users/:id/role", users.UpdateRole)
		dash.POST("/users/:id/delete", users.Delete)

		dash.GET("/orders", reviews.List)
		dash.POST("/orders", reviews.Create)
		dash.POST("/reviews/:id/approve", reviews.ToggleApprove)
		dash.POST("/reviews/:id/edit", reviews.Update)
		dash.POST("/reviews/:id/delete", reviews.Delete)

		dash.GET("/analytics", analytics.Get)
	}

	return r
}
