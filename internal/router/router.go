// Package router wires the HTTP surface: public reservation endpoints,
// the admin login flow and the cookie-protected dashboard routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/higholive/party-api/internal/handler"
	"github.com/higholive/party-api/internal/middleware"
)

// Handlers bundles everything the routes need.
type Handlers struct {
	Auth        *handler.AuthHandler
	Reservation *handler.ReservationHandler
	Payment     *handler.PaymentHandler
	Admin       *handler.AdminHandler

	JWTSecret string
	RateLimit echo.MiddlewareFunc // applied to reservation creation
	Cache     echo.MiddlewareFunc // applied to public reservation reads
}

// RegisterRoutes registers the whole API on the provided Echo instance.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", handler.Health)

	// Public guest endpoints. Creation is rate limited per IP; lookups of
	// an already-issued id are cheap and cacheable.
	api := e.Group("/api")
	api.POST("/reservations", h.Reservation.Create, h.RateLimit)
	api.GET("/reservations/:id", h.Reservation.Get, h.Cache)
	api.GET("/reservations/:id/qrbill", h.Payment.QRBill)
	api.GET("/reservations/:id/calendar", h.Payment.Calendar)

	// Admin session management. Login is rate limited with the same bucket
	// as creation so the password cannot be brute forced.
	auth := e.Group("/api/auth")
	auth.POST("/login", h.Auth.Login, h.RateLimit)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/status", h.Auth.Status)

	// Dashboard routes, all behind the admin cookie.
	admin := e.Group("/api/admin", middleware.AdminAuth(h.JWTSecret))
	admin.GET("/reservations", h.Admin.List)
	admin.GET("/summary", h.Admin.Summary)
	admin.PUT("/reservations/:id", h.Admin.UpdateStatus)
	admin.GET("/notifications", h.Admin.ListFailedNotifications)
	admin.POST("/notifications/:id/replay", h.Admin.ReplayNotification)
}
