package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/authcookie"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

const ctxKeyToken = "api_token"

// TokenMiddleware decodes the auth cookie on every request and threads the
// bearer token through the request context, where the API client picks it
// up per call (the SSR equivalent of the localStorage interceptor).
func TokenMiddleware(codec *authcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, ok := codec.Token(c); ok {
			c.Set(ctxKeyToken, tok)
			c.Request = c.Request.WithContext(api.WithToken(c.Request.Context(), tok))
		}
		c.Next()
	}
}

// HasToken reports whether this request carries a session token.
func HasToken(c *gin.Context) bool {
	_, ok := c.Get(ctxKeyToken)
	return ok
}

// RequireToken: token yoksa login'e yönlendir (return_to ile) + flash.
// Token'ın hâlâ geçerli olup olmadığına backend karar verir; burada sadece
// varlık kontrolü yapılır.
func RequireToken(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if HasToken(c) {
			c.Next()
			return
		}

		returnTo := c.Request.URL.RequestURI()
		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Please log in to continue.",
		})

		c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
		c.Abort()
	}
}
