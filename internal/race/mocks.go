package race

import "github.com/stretchr/testify/mock"

type RaceRepositoryMock struct {
	mock.Mock
}

func (m *RaceRepositoryMock) ListRaces() ([]Race, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Race), args.Error(1)
}

func (m *RaceRepositoryMock) GetRace(id string) (*Race, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Race), args.Error(1)
}

func (m *RaceRepositoryMock) CreateRace(race *Race) error {
	args := m.Called(race)
	return args.Error(0)
}

func (m *RaceRepositoryMock) DeleteRace(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
