package v1

import (
	"net/http"

	"github.com/danvelq/RaceTracker/internal/race"
	"github.com/labstack/echo/v4"
)

var RaceService *race.RaceService

func RegisterRaceRoutes(g *echo.Group) {
	g.GET("", GetRacesHandler)
	g.POST("", CreateRaceHandler)
	g.DELETE("/:id", DeleteRaceHandler)
}

func GetRacesHandler(c echo.Context) error {
	races, err := RaceService.GetRaces()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, races)
}

func CreateRaceHandler(c echo.Context) error {
	var r race.RaceRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	created, err := RaceService.CreateRace(&r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func DeleteRaceHandler(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := RaceService.DeleteRace(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Race deleted successfully"})
}
