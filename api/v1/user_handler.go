package v1

import (
	"net/http"
	"strconv"

	"github.com/danvelq/RaceTracker/internal/user"
	"github.com/labstack/echo/v4"
)

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.GET("", GetUsersHandler)
	g.POST("", CreateUserHandler)
	g.PATCH("/:id", UpdateUserHandler)
	g.DELETE("/:id", DeactivateUserHandler)
	g.GET("/stats/:id", GetUserStatsHandler)
}

func GetUsersHandler(c echo.Context) error {
	search := c.QueryParam("search")
	activeOnly := c.QueryParam("activeOnly") == "true"

	users, err := UserService.GetUsers(search, activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func CreateUserHandler(c echo.Context) error {
	var r user.UserRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	created, err := UserService.CreateUser(&r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func UpdateUserHandler(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var r user.UserUpdateRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	updated, err := UserService.UpdateUser(id, &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func DeactivateUserHandler(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	if err := UserService.DeactivateUser(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deactivated successfully"})
}

func GetUserStatsHandler(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	stats, err := UserService.GetUserStats(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func userIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	return uint(id), nil
}
