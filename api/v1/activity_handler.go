package v1

import (
	"net/http"

	"github.com/danvelq/RaceTracker/internal/activity"
	"github.com/labstack/echo/v4"
)

var ActivityService *activity.ActivityService

func RegisterActivityRoutes(g *echo.Group) {
	g.GET("", GetActivitiesHandler)
	g.POST("", CreateActivityHandler)
}

func GetActivitiesHandler(c echo.Context) error {
	activities, err := ActivityService.GetActivities()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

func CreateActivityHandler(c echo.Context) error {
	var r activity.ActivityRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	created, err := ActivityService.CreateActivity(&r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
