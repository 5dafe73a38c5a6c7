package activity

import "time"

type Rewards struct {
	Money int      `json:"money"`
	RP    int      `json:"rp"`
	Items []string `json:"items"`
}

type Activity struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       string     `gorm:"not null" json:"userId"`
	Type         string     `gorm:"not null" json:"type"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description,omitempty"`
	Status       string     `gorm:"default:pending" json:"status"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Rewards      Rewards    `gorm:"serializer:json" json:"rewards"`
	Location     string     `json:"location,omitempty"`
	Difficulty   string     `gorm:"default:medium" json:"difficulty"`
	Participants []string   `gorm:"serializer:json" json:"participants"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type ActivityRequest struct {
	Type         string     `json:"type" validate:"required,oneof=mission heist race business other"`
	Name         string     `json:"name" validate:"required"`
	Description  string     `json:"description"`
	Status       string     `json:"status" validate:"omitempty,oneof=pending in_progress completed failed"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Rewards      *Rewards   `json:"rewards"`
	Location     string     `json:"location"`
	Difficulty   string     `json:"difficulty" validate:"omitempty,oneof=easy medium hard very_hard"`
	Participants []string   `json:"participants"`
	Notes        string     `json:"notes"`
}
