package v1

import (
	"net/http"

	"github.com/danvelq/RaceTracker/internal/playlist"
	"github.com/labstack/echo/v4"
)

var PlaylistService *playlist.PlaylistService

func RegisterPlaylistRoutes(g *echo.Group) {
	g.GET("", GetPlaylistsHandler)
	g.POST("", CreatePlaylistHandler)
	g.GET("/:id", GetPlaylistHandler)
	g.PATCH("/:id", UpdatePlaylistHandler)
	g.DELETE("/:id", DeletePlaylistHandler)
	g.POST("/:id/races", AttachRaceHandler)
	g.DELETE("/:id/races/:raceId", DetachRaceHandler)
	g.PATCH("/:id/races/:raceId", UpdateScoreHandler)
	g.PATCH("/:id/races/:raceId/stats", UpdateStatsHandler)
}

func GetPlaylistsHandler(c echo.Context) error {
	playlists, err := PlaylistService.GetPlaylists()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, playlists)
}

func GetPlaylistHandler(c echo.Context) error {
	p, err := PlaylistService.GetPlaylist(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func CreatePlaylistHandler(c echo.Context) error {
	var r playlist.PlaylistRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	created, err := PlaylistService.CreatePlaylist(&r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func UpdatePlaylistHandler(c echo.Context) error {
	var r playlist.PlaylistUpdateRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	updated, err := PlaylistService.UpdatePlaylist(c.Param("id"), &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func DeletePlaylistHandler(c echo.Context) error {
	if err := PlaylistService.DeletePlaylist(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Playlist deleted successfully"})
}

func AttachRaceHandler(c echo.Context) error {
	var r playlist.AttachRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	updated, err := PlaylistService.AttachRace(c.Param("id"), r.RaceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func DetachRaceHandler(c echo.Context) error {
	updated, err := PlaylistService.DetachRace(c.Param("id"), c.Param("raceId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func UpdateScoreHandler(c echo.Context) error {
	var r playlist.ScoreRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Score must be a number")
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	updated, err := PlaylistService.UpdateScore(c.Param("id"), c.Param("raceId"), *r.Score)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func UpdateStatsHandler(c echo.Context) error {
	var r playlist.StatsRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := c.Validate(&r); err != nil {
		return err
	}

	updated, err := PlaylistService.UpdateStats(c.Param("id"), c.Param("raceId"), &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
