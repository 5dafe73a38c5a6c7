package v1

import (
	"net/http"

	"github.com/danvelq/RaceTracker/internal/auth"
	"github.com/labstack/echo/v4"
)

const INVALID_REQUEST = "invalid request"

var AuthService *auth.AuthService

func RegisterAuthRoutes(g *echo.Group) {
	g.POST("/verify", VerifyHandler)
}

func VerifyHandler(c echo.Context) error {
	var r auth.VerifyRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	token, err := AuthService.Verify(r.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
	})
}
