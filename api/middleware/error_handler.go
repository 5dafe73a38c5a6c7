package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// ErrorHandler converts service errors into the unified error envelope:
// {"error": message, "details": cause} with the status the error carries.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := echo.Map{"error": appErr.Message}
		if details := appErr.Details(); details != "" {
			body["details"] = details
		}
		if jsonErr := c.JSON(appErr.Code, body); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if jsonErr := c.JSON(httpErr.Code, echo.Map{"error": fmt.Sprintf("%v", httpErr.Message)}); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
		return
	}

	if jsonErr := c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "Internal server error",
		"details": err.Error(),
	}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
