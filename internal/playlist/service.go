package playlist

import (
	"errors"
	"time"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/danvelq/RaceTracker/internal/race"
	"github.com/google/uuid"
)

type PlaylistRepository interface {
	SavePlaylist(playlist *Playlist) error
	GetPlaylist(id string) (*Playlist, error)
	GetPlaylists() ([]Playlist, error)
	GetUserPlaylists(userID uint) ([]Playlist, error)
	DeletePlaylist(id string) error
	MutatePlaylist(id string, mutate func(*Playlist) error) (*Playlist, error)
}

// RaceFinder resolves race references during expansion. A nil race with a
// nil error means the reference is dangling.
type RaceFinder interface {
	GetRace(id string) (*race.Race, error)
}

// UserFinder resolves a playlist owner to a username, "" when the user
// does not exist.
type UserFinder interface {
	GetUserUsername(id uint) (string, error)
}

type PlaylistService struct {
	repo  PlaylistRepository
	races RaceFinder
	users UserFinder
}

func NewPlaylistService(repo PlaylistRepository, races RaceFinder, users UserFinder) *PlaylistService {
	return &PlaylistService{repo: repo, races: races, users: users}
}

func (s *PlaylistService) GetPlaylists() ([]ExpandedPlaylist, error) {
	playlists, err := s.repo.GetPlaylists()
	if err != nil {
		return nil, err
	}

	expanded := []ExpandedPlaylist{}
	for i := range playlists {
		e, err := s.expand(&playlists[i])
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, *e)
	}
	return expanded, nil
}

func (s *PlaylistService) GetPlaylist(id string) (*ExpandedPlaylist, error) {
	playlist, err := s.repo.GetPlaylist(id)
	if err != nil {
		return nil, err
	}
	return s.expand(playlist)
}

func (s *PlaylistService) CreatePlaylist(request *PlaylistRequest) (*ExpandedPlaylist, error) {
	if request.UserID != 0 {
		username, err := s.users.GetUserUsername(request.UserID)
		if err != nil {
			return nil, err
		}
		if username == "" {
			return nil, apperrors.NewAppError(404, "User not found", errors.New("user not found"))
		}
	}

	now := time.Now().UTC()
	playlist := Playlist{
		ID:          uuid.New().String()[:8],
		Name:        request.Name,
		Description: request.Description,
		UserID:      request.UserID,
		Races:       []PlaylistRace{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.SavePlaylist(&playlist); err != nil {
		return nil, err
	}
	return s.expand(&playlist)
}

func (s *PlaylistService) UpdatePlaylist(id string, request *PlaylistUpdateRequest) (*ExpandedPlaylist, error) {
	playlist, err := s.repo.MutatePlaylist(id, func(p *Playlist) error {
		if request.Name != "" {
			p.Name = request.Name
		}
		if request.Description != nil {
			p.Description = *request.Description
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.expand(playlist)
}

func (s *PlaylistService) DeletePlaylist(id string) error {
	if _, err := s.repo.GetPlaylist(id); err != nil {
		return err
	}
	return s.repo.DeletePlaylist(id)
}

// AttachRace appends a fresh relationship entry with a zeroed score and
// stats. A race already in the playlist is a conflict, never a duplicate.
func (s *PlaylistService) AttachRace(playlistID, raceID string) (*ExpandedPlaylist, error) {
	playlist, err := s.repo.MutatePlaylist(playlistID, func(p *Playlist) error {
		raceEntry, err := s.races.GetRace(raceID)
		if err != nil {
			return err
		}
		if raceEntry == nil {
			return apperrors.NewAppError(404, "Race not found", errors.New("race not found"))
		}

		if findRace(p, raceID) != -1 {
			return apperrors.NewAppError(400, "Race is already in playlist", nil)
		}

		p.Races = append(p.Races, PlaylistRace{
			RaceID: raceID,
			Score:  0,
			Stats:  RaceStats{BestTime: "", Attempts: 0},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.expand(playlist)
}

// DetachRace removes the entry for raceID. Detaching a race that is not
// in the playlist is NotFound, symmetric with the update operations.
func (s *PlaylistService) DetachRace(playlistID, raceID string) (*ExpandedPlaylist, error) {
	playlist, err := s.repo.MutatePlaylist(playlistID, func(p *Playlist) error {
		i := findRace(p, raceID)
		if i == -1 {
			return apperrors.NewAppError(404, "Race not found in playlist", errors.New("race not found in playlist"))
		}
		p.Races = append(p.Races[:i], p.Races[i+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.expand(playlist)
}

func (s *PlaylistService) UpdateScore(playlistID, raceID string, score int) (*ExpandedPlaylist, error) {
	playlist, err := s.repo.MutatePlaylist(playlistID, func(p *Playlist) error {
		i := findRace(p, raceID)
		if i == -1 {
			return apperrors.NewAppError(404, "Race not found in playlist", errors.New("race not found in playlist"))
		}
		p.Races[i].Score = score
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.expand(playlist)
}

// UpdateStats merges the supplied fields into the entry's stats; fields
// omitted from the request keep their stored value.
func (s *PlaylistService) UpdateStats(playlistID, raceID string, request *StatsRequest) (*ExpandedPlaylist, error) {
	playlist, err := s.repo.MutatePlaylist(playlistID, func(p *Playlist) error {
		i := findRace(p, raceID)
		if i == -1 {
			return apperrors.NewAppError(404, "Race not found in playlist", errors.New("race not found in playlist"))
		}
		if request.BestTime != nil {
			p.Races[i].Stats.BestTime = *request.BestTime
		}
		if request.Attempts != nil {
			p.Races[i].Stats.Attempts = *request.Attempts
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.expand(playlist)
}

func findRace(p *Playlist, raceID string) int {
	for i, entry := range p.Races {
		if entry.RaceID == raceID {
			return i
		}
	}
	return -1
}

// expand resolves race references and the owning user for display. A
// dangling race reference becomes a null race, never a failed read.
func (s *PlaylistService) expand(p *Playlist) (*ExpandedPlaylist, error) {
	expanded := ExpandedPlaylist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Races:       []ExpandedRace{},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	for _, entry := range p.Races {
		raceEntry, err := s.races.GetRace(entry.RaceID)
		if err != nil {
			return nil, err
		}
		expanded.Races = append(expanded.Races, ExpandedRace{
			Race:  raceEntry,
			Score: entry.Score,
			Stats: entry.Stats,
		})
	}

	if p.UserID != 0 {
		username, err := s.users.GetUserUsername(p.UserID)
		if err != nil {
			return nil, err
		}
		if username != "" {
			expanded.User = &Owner{ID: p.UserID, Username: username}
		}
	}

	return &expanded, nil
}
