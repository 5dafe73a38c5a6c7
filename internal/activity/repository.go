package activity

import (
	"github.com/danvelq/RaceTracker/internal/apperrors"
	"gorm.io/gorm"
)

type GormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

func (r *GormActivityRepository) ListActivities() ([]Activity, error) {
	activities := []Activity{}
	if err := r.db.Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error fetching activities", err)
	}
	return activities, nil
}

func (r *GormActivityRepository) CreateActivity(a *Activity) error {
	if err := r.db.Create(a).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating activity", err)
	}
	return nil
}
