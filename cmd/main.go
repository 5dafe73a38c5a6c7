package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/danvelq/RaceTracker/api/middleware"
	v1 "github.com/danvelq/RaceTracker/api/v1"
	"github.com/danvelq/RaceTracker/internal/activity"
	"github.com/danvelq/RaceTracker/internal/auth"
	"github.com/danvelq/RaceTracker/internal/playlist"
	"github.com/danvelq/RaceTracker/internal/race"
	"github.com/danvelq/RaceTracker/internal/user"
	"github.com/danvelq/RaceTracker/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	handles, err := db.Connect()
	if err != nil {
		log.Fatalf("error opening persistence clients: %v", err)
	}
	defer handles.Close()

	if err := handles.DB.AutoMigrate(&user.User{}, &race.Race{}, &activity.Activity{}); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	userRepo := user.NewGormUserRepository(handles.DB)
	raceRepo := race.NewGormRaceRepository(handles.DB)
	playlistRepo := playlist.NewRedisPlaylistRepository(handles.Rdb)
	activityRepo := activity.NewGormActivityRepository(handles.DB)

	v1.AuthService = auth.NewAuthService()
	v1.RaceService = race.NewRaceService(raceRepo)
	v1.PlaylistService = playlist.NewPlaylistService(playlistRepo, raceRepo, userRepo)
	v1.UserService = user.NewUserService(userRepo, playlistRepo)
	v1.ActivityService = activity.NewActivityService(activityRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = api_middleware.NewRequestValidator()
	e.HTTPErrorHandler = api_middleware.ErrorHandler

	api := e.Group("/api/v1")
	v1.RegisterAuthRoutes(api.Group("/auth"))

	jwt := api_middleware.SetupJWTMiddleware()
	for path, register := range map[string]func(*echo.Group){
		"/races":      v1.RegisterRaceRoutes,
		"/playlists":  v1.RegisterPlaylistRoutes,
		"/users":      v1.RegisterUserRoutes,
		"/activities": v1.RegisterActivityRoutes,
	} {
		g := api.Group(path)
		g.Use(jwt)
		register(g)
	}

	e.Logger.Fatal(e.Start(":8080"))
}
