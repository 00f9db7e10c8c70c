package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/higholive/party-api/internal/config"
	"github.com/higholive/party-api/internal/middleware"
	"github.com/higholive/party-api/internal/utils"
)

// AuthHandler implements the admin login flow. There is a single shared
// admin password and no user table: a successful login issues a signed,
// time-limited token carried in an HttpOnly cookie, and validating that
// token is the entire session mechanism.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
	Password string `json:"password"`
}

// Login checks the password and sets the admin token cookie. The bcrypt
// hash is preferred when configured; the plain password comparison exists
// for low-ceremony deployments and is constant-time either way.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Corps de la requête JSON invalide.",
		})
	}
	if h.Cfg.JWTSecret == "" || (h.Cfg.AdminPassword == "" && h.Cfg.AdminPasswordHash == "") {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur de configuration serveur.",
		})
	}

	ok := false
	if h.Cfg.AdminPasswordHash != "" {
		ok = utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password)
	} else {
		ok = utils.EqualPasswords(h.Cfg.AdminPassword, req.Password)
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false, "message": "Mot de passe incorrect.",
		})
	}

	ttl := time.Duration(h.Cfg.TokenTTLMin) * time.Minute
	token, err := utils.NewAdminToken(h.Cfg.JWTSecret, ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Une erreur s'est produite lors de la tentative de connexion.",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    token.Token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.Cfg.Env != "dev",
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Connexion réussie."})
}

// Logout clears the admin cookie. The token itself stays valid until it
// expires; there is no server-side session to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.Env != "dev",
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Déconnexion réussie."})
}

// Status reports whether the caller currently holds a valid admin token,
// so the dashboard can decide between the login form and the data view.
func (h *AuthHandler) Status(c echo.Context) error {
	cookie, err := c.Cookie(middleware.AdminCookieName)
	authenticated := err == nil && cookie.Value != "" &&
		utils.ParseAdminToken(h.Cfg.JWTSecret, cookie.Value) == nil
	return c.JSON(http.StatusOK, echo.Map{"isAuthenticated": authenticated})
}
