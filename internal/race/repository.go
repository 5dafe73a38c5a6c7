package race

import (
	"errors"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"gorm.io/gorm"
)

type GormRaceRepository struct {
	db *gorm.DB
}

func NewGormRaceRepository(db *gorm.DB) *GormRaceRepository {
	return &GormRaceRepository{db: db}
}

func (r *GormRaceRepository) ListRaces() ([]Race, error) {
	races := []Race{}
	if err := r.db.Order("created_at DESC").Find(&races).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error fetching races", err)
	}
	return races, nil
}

// GetRace returns nil without an error when no race has the given id.
func (r *GormRaceRepository) GetRace(id string) (*Race, error) {
	var race Race
	result := r.db.Where("id = ?", id).First(&race)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching race", result.Error)
	}
	return &race, nil
}

func (r *GormRaceRepository) CreateRace(race *Race) error {
	if err := r.db.Create(race).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating race", err)
	}
	return nil
}

func (r *GormRaceRepository) DeleteRace(id string) error {
	if err := r.db.Delete(&Race{}, "id = ?", id).Error; err != nil {
		return apperrors.NewAppError(500, "Error deleting race", err)
	}
	return nil
}
