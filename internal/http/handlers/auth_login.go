package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/authcookie"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/middleware"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/validation"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

// normalizeReturnTo: open-redirect koruması, sadece relative path kabul.
func normalizeReturnTo(s string) string {
	if s == "" || s[0] != '/' {
		return ""
	}
	if len(s) >= 2 && s[:2] == "//" {
		return ""
	}
	if containsScheme(s) {
		return ""
	}
	if s == "/login" {
		return ""
	}
	return s
}

func containsScheme(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == ':' && s[i+1] == '/' && s[i+2] == '/' {
			return true
		}
	}
	return false
}

// LoginHandler exchanges credentials for an API bearer token and stores it
// in the signed auth cookie. The token itself never reaches a template.
type LoginHandler struct {
	API   *api.Client
	Auth  *authcookie.Codec
	Flash *flash.Codec
}

func NewLoginHandler(apic *api.Client, auth *authcookie.Codec, fc *flash.Codec) *LoginHandler {
	return &LoginHandler{API: apic, Auth: auth, Flash: fc}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *LoginHandler) Get(c *gin.Context) {
	if middleware.HasToken(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render.Page(c, http.StatusOK, "login", view.LoginPage{
		Layout:   layoutFor(c, "Login", ""),
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
	})
}

func (h *LoginHandler) Post(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.Page(c, http.StatusBadRequest, "login", view.LoginPage{
			Layout:      layoutFor(c, "Login", ""),
			Form:        view.LoginForm{Email: in.Email},
			FieldErrors: errs,
			ReturnTo:    returnTo,
		})
		return
	}

	token, err := h.API.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		// Credentials hatası page-level render edilir; buradaki 401
		// error-handler'a gitmez (login'de zaten login'deyiz).
		render.Page(c, apperr.HTTPStatus(err), "login", view.LoginPage{
			Layout:    layoutFor(c, "Login", ""),
			Form:      view.LoginForm{Email: in.Email},
			PageError: apperr.PublicMessage(err),
			ReturnTo:  returnTo,
		})
		return
	}

	h.Auth.Set(c, token)

	dest := "/dashboard"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Welcome back!")
}

func (h *LoginHandler) LogoutPost(c *gin.Context) {
	h.Auth.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/login", view.FlashInfo, "You have been logged out.")
}
