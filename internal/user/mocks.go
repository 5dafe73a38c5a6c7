package user

import (
	"github.com/danvelq/RaceTracker/internal/playlist"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(search string, activeOnly bool) ([]User, error) {
	args := m.Called(search, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockUserRepository) GetUser(id uint) (*User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetUserUsername(id uint) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) CreateUser(u *User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(u *User) error {
	args := m.Called(u)
	return args.Error(0)
}

type MockPlaylistSource struct {
	mock.Mock
}

func (m *MockPlaylistSource) GetUserPlaylists(userID uint) ([]playlist.Playlist, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]playlist.Playlist), args.Error(1)
}
