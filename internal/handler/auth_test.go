package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/higholive/party-api/internal/config"
	"github.com/higholive/party-api/internal/handler"
	"github.com/higholive/party-api/internal/middleware"
	"github.com/higholive/party-api/internal/utils"
)

func authConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	return config.Config{
		Env:               "dev",
		JWTSecret:         "test-secret",
		TokenTTLMin:       60,
		AdminPasswordHash: hash,
	}
}

func adminCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AdminCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	h := handler.NewAuthHandler(authConfig(t))

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"password":"s3cret"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := adminCookie(rec)
	require.NotNil(t, cookie, "login must set the admin cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "dev environment keeps the cookie usable over http")
	assert.NoError(t, utils.ParseAdminToken("test-secret", cookie.Value))
}

func TestLogin_SecureCookieOutsideDev(t *testing.T) {
	cfg := authConfig(t)
	cfg.Env = "prod"
	h := handler.NewAuthHandler(cfg)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"password":"s3cret"}`)
	require.NoError(t, h.Login(c))

	cookie := adminCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := handler.NewAuthHandler(authConfig(t))

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"password":"nope"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mot de passe incorrect")
	assert.Nil(t, adminCookie(rec))
}

func TestLogin_PlainPasswordFallback(t *testing.T) {
	cfg := authConfig(t)
	cfg.AdminPasswordHash = ""
	cfg.AdminPassword = "plain"
	h := handler.NewAuthHandler(cfg)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"password":"plain"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_MissingConfiguration(t *testing.T) {
	h := handler.NewAuthHandler(config.Config{JWTSecret: "s"})

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"password":"whatever"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := handler.NewAuthHandler(authConfig(t))

	c, rec := newJSONContext(http.MethodPost, "/api/auth/logout", "")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := adminCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestStatus(t *testing.T) {
	h := handler.NewAuthHandler(authConfig(t))

	t.Run("no cookie", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/api/auth/status", "")
		require.NoError(t, h.Status(c))
		assert.Contains(t, rec.Body.String(), `"isAuthenticated":false`)
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := utils.NewAdminToken("test-secret", time.Hour)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodGet, "/api/auth/status", "")
		c.Request().AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: tok.Token})
		require.NoError(t, h.Status(c))
		assert.Contains(t, rec.Body.String(), `"isAuthenticated":true`)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := utils.NewAdminToken("test-secret", -time.Minute)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodGet, "/api/auth/status", "")
		c.Request().AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: tok.Token})
		require.NoError(t, h.Status(c))
		assert.Contains(t, rec.Body.String(), `"isAuthenticated":false`)
	})
}
