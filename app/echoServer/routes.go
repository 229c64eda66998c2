package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/courtesy"
	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/payment"
	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/rental"
	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/vehicle"
	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/jwtx"
)

type C struct {
	Rental   *rental.Controller
	Payment  *payment.Controller
	Courtesy *courtesy.Controller
	Vehicle  *vehicle.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Operators (any authenticated back-office user)
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))

	auth.GET("/rentals", c.Rental.Agenda)
	auth.GET("/rentals/:id", c.Rental.Detail)
	auth.GET("/rentals/:id/contract", c.Rental.Contract)
	auth.POST("/rentals/:id/recalculate", c.Rental.Recalculate)

	auth.GET("/rentals/:id/payments", c.Payment.ListByRental)

	auth.GET("/courtesy-items", c.Courtesy.Items)
	auth.GET("/rentals/:id/courtesies", c.Courtesy.ByRental)

	auth.GET("/vehicles", c.Vehicle.List)
	auth.GET("/vehicles/:id", c.Vehicle.Detail)

	// Admin-only state transitions
	admin := auth.Group("", RequireAdmin())
	admin.PUT("/rentals/:id/toggle-status", c.Rental.ToggleStatus)
	admin.PUT("/rentals/:id/pending-issues", c.Rental.PendingIssues)
	admin.PUT("/payments/:id/confirm", c.Payment.Confirm)
	admin.PUT("/payments/:id/reject", c.Payment.Reject)
	admin.POST("/rentals/:id/courtesies", c.Courtesy.Grant)
	admin.DELETE("/rentals/:id/courtesies/:grantId", c.Courtesy.Revoke)
	admin.POST("/vehicles", c.Vehicle.Create)
}

// RequireAdmin gates the one-way transitions (approve, confirm/reject,
// pending-issues) behind the role claim.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := jwtx.RoleFromContext(c)
			if err != nil || role != "admin" {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "admin only"})
			}
			return next(c)
		}
	}
}
