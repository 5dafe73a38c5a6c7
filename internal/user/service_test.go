package user

import (
	"testing"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/danvelq/RaceTracker/internal/playlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (*UserService, *MockUserRepository, *MockPlaylistSource) {
	repo := &MockUserRepository{}
	playlists := &MockPlaylistSource{}
	return NewUserService(repo, playlists), repo, playlists
}

func TestUserService_CreateUser(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUserByUsername", "alice").Return(nil, nil)
	repo.On("CreateUser", mock.AnythingOfType("*user.User")).Return(nil)

	created, err := service.CreateUser(&UserRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.True(t, created.IsActive)
	repo.AssertExpectations(t)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUserByUsername", "alice").Return(&User{ID: 1, Username: "alice"}, nil)

	_, err := service.CreateUser(&UserRequest{Username: "alice"})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateUser_RenameChecksUniqueness(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUser", uint(1)).Return(&User{ID: 1, Username: "alice", IsActive: true}, nil)
	repo.On("GetUserByUsername", "bob").Return(&User{ID: 2, Username: "bob"}, nil)

	_, err := service.UpdateUser(1, &UserUpdateRequest{Username: "bob"})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateUser_FlagOnly(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUser", uint(1)).Return(&User{ID: 1, Username: "alice", IsActive: false}, nil)
	repo.On("UpdateUser", mock.AnythingOfType("*user.User")).Return(nil)

	active := true
	updated, err := service.UpdateUser(1, &UserUpdateRequest{IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.True(t, updated.IsActive)
	repo.AssertExpectations(t)
}

func TestUserService_DeactivateUser(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUser", uint(1)).Return(&User{ID: 1, Username: "alice", IsActive: true}, nil)
	repo.On("UpdateUser", mock.MatchedBy(func(u *User) bool { return !u.IsActive })).Return(nil)

	require.NoError(t, service.DeactivateUser(1))
	repo.AssertExpectations(t)
}

func TestUserService_DeactivateUser_NotFound(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUser", uint(9)).Return(nil, nil)

	err := service.DeactivateUser(9)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestUserService_GetUserStats(t *testing.T) {
	service, repo, playlists := newTestUserService()
	repo.On("GetUser", uint(3)).Return(&User{ID: 3, Username: "alice"}, nil)
	playlists.On("GetUserPlaylists", uint(3)).Return([]playlist.Playlist{
		{ID: "p1", UserID: 3, Races: []playlist.PlaylistRace{
			{RaceID: "r1", Score: 10},
			{RaceID: "r2", Score: 20},
		}},
		{ID: "p2", UserID: 3, Races: []playlist.PlaylistRace{
			{RaceID: "r3", Score: 60},
		}},
	}, nil)

	resp, err := service.GetUserStats(3)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, 2, resp.Stats.TotalPlaylists)
	assert.Equal(t, 3, resp.Stats.TotalRaces)
	assert.InDelta(t, 30.0, resp.Stats.AverageScore, 0.01)
}

// averageScore over zero relationships is exactly 0, not NaN.
func TestUserService_GetUserStats_NoRelationships(t *testing.T) {
	service, repo, playlists := newTestUserService()
	repo.On("GetUser", uint(3)).Return(&User{ID: 3, Username: "alice"}, nil)
	playlists.On("GetUserPlaylists", uint(3)).Return([]playlist.Playlist{
		{ID: "p1", UserID: 3, Races: []playlist.PlaylistRace{}},
	}, nil)

	resp, err := service.GetUserStats(3)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.TotalPlaylists)
	assert.Equal(t, 0, resp.Stats.TotalRaces)
	assert.Equal(t, 0.0, resp.Stats.AverageScore)
}

func TestUserService_GetUserStats_UnknownUser(t *testing.T) {
	service, repo, _ := newTestUserService()
	repo.On("GetUser", uint(9)).Return(nil, nil)

	_, err := service.GetUserStats(9)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
