package race

import (
	"errors"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/google/uuid"
)

type RaceRepository interface {
	ListRaces() ([]Race, error)
	GetRace(id string) (*Race, error)
	CreateRace(race *Race) error
	DeleteRace(id string) error
}

type RaceService struct {
	repo RaceRepository
}

func NewRaceService(repo RaceRepository) *RaceService {
	return &RaceService{repo: repo}
}

func (s *RaceService) GetRaces() ([]Race, error) {
	return s.repo.ListRaces()
}

func (s *RaceService) GetRace(id string) (*Race, error) {
	race, err := s.repo.GetRace(id)
	if err != nil {
		return nil, err
	}
	if race == nil {
		return nil, apperrors.NewAppError(404, "Race not found", errors.New("race not found"))
	}
	return race, nil
}

func (s *RaceService) CreateRace(request *RaceRequest) (*Race, error) {
	race := Race{
		ID:          uuid.New().String(),
		Name:        request.Name,
		Type:        request.Type,
		Difficulty:  request.Difficulty,
		BestTime:    request.BestTime,
		Title:       request.Title,
		Creator:     request.Creator,
		Description: request.Description,
		Rating:      request.Rating,
		PlayersMin:  1,
		PlayersMax:  16,
		GameMode:    request.GameMode,
		RouteType:   request.RouteType,
		RouteLength: request.RouteLength,
		URL:         request.URL,
	}
	if request.PlayersMin != nil {
		race.PlayersMin = *request.PlayersMin
	}
	if request.PlayersMax != nil {
		race.PlayersMax = *request.PlayersMax
	}

	if err := s.repo.CreateRace(&race); err != nil {
		return nil, err
	}
	return &race, nil
}

// DeleteRace removes the catalog entry only. Playlist entries referencing
// the race are left in place and resolve to null on expansion.
func (s *RaceService) DeleteRace(id string) error {
	race, err := s.repo.GetRace(id)
	if err != nil {
		return err
	}
	if race == nil {
		return apperrors.NewAppError(404, "Race not found", errors.New("race not found"))
	}
	return s.repo.DeleteRace(id)
}
