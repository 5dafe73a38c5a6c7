package playlist

import (
	"github.com/danvelq/RaceTracker/internal/race"
	"github.com/stretchr/testify/mock"
)

type RaceFinderMock struct {
	mock.Mock
}

func (m *RaceFinderMock) GetRace(id string) (*race.Race, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*race.Race), args.Error(1)
}

type UserFinderMock struct {
	mock.Mock
}

func (m *UserFinderMock) GetUserUsername(id uint) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}
