package playlist

import (
	"time"

	"github.com/danvelq/RaceTracker/internal/race"
)

type RaceStats struct {
	BestTime string `json:"bestTime"`
	Attempts int    `json:"attempts"`
}

// PlaylistRace pairs one race with the playlist-local state for it. It
// exists only inside a playlist document and dies with it.
type PlaylistRace struct {
	RaceID string    `json:"raceId"`
	Score  int       `json:"score"`
	Stats  RaceStats `json:"stats"`
}

// Playlist is stored as a single JSON document. Races keeps insertion
// order; a race id appears at most once, enforced by the attach operation.
type Playlist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	UserID      uint           `json:"userId,omitempty"`
	Races       []PlaylistRace `json:"races"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type Owner struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ExpandedRace is a relationship entry with its race reference resolved.
// Race is null when the referenced catalog entry no longer exists.
type ExpandedRace struct {
	Race  *race.Race `json:"race"`
	Score int        `json:"score"`
	Stats RaceStats  `json:"stats"`
}

type ExpandedPlaylist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	User        *Owner         `json:"user,omitempty"`
	Races       []ExpandedRace `json:"races"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type PlaylistRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	UserID      uint   `json:"userId"`
}

type PlaylistUpdateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type AttachRequest struct {
	RaceID string `json:"raceId" validate:"required"`
}

type ScoreRequest struct {
	Score *int `json:"score" validate:"required"`
}

// StatsRequest is a partial update: only fields present in the body are
// applied, omitted fields keep their stored value.
type StatsRequest struct {
	BestTime *string `json:"bestTime"`
	Attempts *int    `json:"attempts" validate:"omitempty,min=0"`
}
