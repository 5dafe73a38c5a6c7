package user

import (
	"errors"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/danvelq/RaceTracker/internal/playlist"
)

type UserRepository interface {
	ListUsers(search string, activeOnly bool) ([]User, error)
	GetUser(id uint) (*User, error)
	GetUserByUsername(username string) (*User, error)
	GetUserUsername(id uint) (string, error)
	CreateUser(u *User) error
	UpdateUser(u *User) error
}

// PlaylistSource provides the live playlists a user owns; stats are
// recomputed from it on every request rather than kept in sync.
type PlaylistSource interface {
	GetUserPlaylists(userID uint) ([]playlist.Playlist, error)
}

type UserService struct {
	repo      UserRepository
	playlists PlaylistSource
}

func NewUserService(repo UserRepository, playlists PlaylistSource) *UserService {
	return &UserService{repo: repo, playlists: playlists}
}

func (s *UserService) GetUsers(search string, activeOnly bool) ([]User, error) {
	return s.repo.ListUsers(search, activeOnly)
}

func (s *UserService) CreateUser(request *UserRequest) (*User, error) {
	existing, err := s.repo.GetUserByUsername(request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(400, "Username already exists", errors.New("username already exists"))
	}

	u := User{Username: request.Username, IsActive: true}
	if err := s.repo.CreateUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) UpdateUser(id uint, request *UserUpdateRequest) (*User, error) {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "User not found", errors.New("user not found"))
	}

	if request.Username != "" && request.Username != u.Username {
		existing, err := s.repo.GetUserByUsername(request.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewAppError(400, "Username already exists", errors.New("username already exists"))
		}
		u.Username = request.Username
	}

	if request.IsActive != nil {
		u.IsActive = *request.IsActive
	}

	if err := s.repo.UpdateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeactivateUser flips the active flag instead of removing the record.
func (s *UserService) DeactivateUser(id uint) error {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperrors.NewAppError(404, "User not found", errors.New("user not found"))
	}

	u.IsActive = false
	return s.repo.UpdateUser(u)
}

// GetUserStats recomputes the aggregate from every playlist the user
// owns: playlist count, total relationship entries, and the average of
// all entry scores flattened across playlists. Zero entries averages to 0.
func (s *UserService) GetUserStats(id uint) (*UserStatsResponse, error) {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "User not found", errors.New("user not found"))
	}

	playlists, err := s.playlists.GetUserPlaylists(id)
	if err != nil {
		return nil, err
	}

	totalRaces := 0
	scoreSum := 0
	for _, p := range playlists {
		totalRaces += len(p.Races)
		for _, entry := range p.Races {
			scoreSum += entry.Score
		}
	}

	averageScore := 0.0
	if totalRaces > 0 {
		averageScore = float64(scoreSum) / float64(totalRaces)
	}

	return &UserStatsResponse{
		Username: u.Username,
		Stats: UserStats{
			TotalPlaylists: len(playlists),
			TotalRaces:     totalRaces,
			AverageScore:   averageScore,
		},
	}, nil
}
