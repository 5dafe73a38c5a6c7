package race

import "time"

// Race is a catalog entry for a playable job. Playlists reference races
// by ID only; deleting a race leaves any playlist references dangling.
type Race struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"not null" json:"type"`
	Difficulty  string    `gorm:"not null" json:"difficulty"`
	BestTime    string    `json:"bestTime,omitempty"`
	Title       string    `json:"title,omitempty"`
	Creator     string    `json:"creator,omitempty"`
	Description string    `json:"description,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	PlayersMin  int       `gorm:"default:1" json:"playersMin"`
	PlayersMax  int       `gorm:"default:16" json:"playersMax"`
	GameMode    string    `json:"gameMode,omitempty"`
	RouteType   string    `json:"routeType,omitempty"`
	RouteLength float64   `json:"routeLength,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RaceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Difficulty  string  `json:"difficulty" validate:"required,oneof=Easy Medium Hard Expert"`
	BestTime    string  `json:"bestTime"`
	Title       string  `json:"title"`
	Creator     string  `json:"creator"`
	Description string  `json:"description"`
	Rating      *int    `json:"rating" validate:"omitempty,min=0,max=100"`
	PlayersMin  *int    `json:"playersMin" validate:"omitempty,min=1"`
	PlayersMax  *int    `json:"playersMax" validate:"omitempty,min=1"`
	GameMode    string  `json:"gameMode"`
	RouteType   string  `json:"routeType"`
	RouteLength float64 `json:"routeLength"`
	URL         string  `json:"url" validate:"omitempty,url"`
}
