package user

import "time"

// User is never hard-deleted; IsActive false marks a deactivated account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserStats is derived from the user's live playlists on every request,
// never stored.
type UserStats struct {
	TotalPlaylists int     `json:"totalPlaylists"`
	TotalRaces     int     `json:"totalRaces"`
	AverageScore   float64 `json:"averageScore"`
}

type UserStatsResponse struct {
	Username string    `json:"username"`
	Stats    UserStats `json:"stats"`
}

type UserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
}

type UserUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	IsActive *bool  `json:"isActive"`
}
