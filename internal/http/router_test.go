package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/config"
	apphttp "github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
)

// fakeBackend is a minimal dashboard API for router-level tests.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "admin@example.com") {
			_, _ = w.Write([]byte(`{"token":"tok-1"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password."}`))
	})
	mux.HandleFunc("/product", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"product":[{"id":"p1","name":"Shirt","price":29.9,"stock":3}]}`))
	})
	mux.HandleFunc("/dashboard/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":[{"id":1,"first_name":"Wajd","email":"a@b.c","role":"admin","createdAt":"2026-03-01T00:00:00Z"}]}`))
	})
	mux.HandleFunc("/dashboard/webReview", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	mux.HandleFunc("/dashboard/faq", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := fakeBackend(t)
	cfg := config.Config{
		APIBaseURL:   backend.URL,
		CookieSecret: []byte("test-secret"),
		APITimeout:   2 * time.Second,
	}
	apic := api.New(cfg.APIBaseURL, cfg.APITimeout)
	st := store.New(apic)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return apphttp.NewRouter(logger, cfg, apic, st)
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "sl_token" && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestLoginSuccessSetsSignedCookieAndRedirects(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(r, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"admin123"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	c := tokenCookie(w)
	require.NotNil(t, c, "session cookie must be set")
	assert.True(t, c.HttpOnly)
	assert.NotContains(t, c.Value, "tok-1", "the raw token never appears in the cookie value")
}

func TestLoginBadCredentialsRendersInline(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(r, "/login", url.Values{
		"email":    {"wrong@example.com"},
		"password": {"bad"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password.")
	assert.Nil(t, tokenCookie(w))
}

func TestLoginValidationErrorsSkipBackend(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(r, "/login", url.Values{"email": {"not-an-email"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a valid email address.")
	assert.Contains(t, w.Body.String(), "This field is required.")
}

func TestDashboardRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/dashboard/products")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?return_to=%2Fdashboard%2Fproducts", w.Header().Get("Location"))
}

func TestLoginThenBrowseProducts(t *testing.T) {
	r := newTestRouter(t)

	login := postForm(r, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"admin123"},
	})
	c := tokenCookie(login)
	require.NotNil(t, c)

	w := get(r, "/dashboard/products", c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Shirt")
	assert.Contains(t, w.Body.String(), "Showing 1 — 1 of 1")
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t)

	login := postForm(r, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"admin123"},
	})
	c := tokenCookie(login)
	require.NotNil(t, c)

	w := postForm(r, "/logout", url.Values{}, c)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sl_token" {
			assert.Empty(t, ck.Value)
			assert.Negative(t, ck.MaxAge)
		}
	}
}

func TestRootRedirects(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	login := postForm(r, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"admin123"},
	})
	c := tokenCookie(login)
	require.NotNil(t, c)

	w = get(r, "/", c)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestTamperedCookieBouncesToLogin(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/dashboard/products", &http.Cookie{Name: "sl_token", Value: "forged.payload"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login"))
}
