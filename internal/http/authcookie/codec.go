// Package authcookie persists the API bearer token between requests. It is
// the only client-side persistence in the console: one signed, HttpOnly
// cookie, written on login, read on every request, deleted on logout.
package authcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid auth cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(token).base64(hmac(token))
// The token is opaque to us; signing only keeps a tampered cookie from
// being treated as a session at the routing layer. The API re-checks it
// on every call anyway.
func (c *Codec) Encode(token string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(token))
	return payload + "." + sign(c.Secret, payload)
}

func (c *Codec) Decode(v string) (string, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || payload == "" {
		return "", ErrInvalid
	}
	if !verify(c.Secret, payload, sig) {
		return "", ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalid
	}
	if len(raw) == 0 {
		return "", ErrInvalid
	}
	return string(raw), nil
}

// Token reads and verifies the cookie from the request. A malformed cookie
// is cleared so it is not retried forever.
func (c *Codec) Token(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return "", false
	}
	tok, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return "", false
	}
	return tok, true
}

func (c *Codec) Set(ctx *gin.Context, token string) {
	// Backend'de expiry yok; 7 gün sonra yeniden login yeterli.
	maxAge := int((7 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, c.Encode(token), maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
