package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const playlistIndex = "playlists_id"

// maxMutateRetries bounds the optimistic-transaction retry loop when a
// concurrent writer touches the same playlist document.
const maxMutateRetries = 5

type RedisPlaylistRepository struct {
	rdb *redis.Client
}

func NewRedisPlaylistRepository(rdb *redis.Client) *RedisPlaylistRepository {
	return &RedisPlaylistRepository{rdb: rdb}
}

func playlistKey(id string) string {
	return "playlist:" + id
}

func (r *RedisPlaylistRepository) SavePlaylist(playlist *Playlist) error {
	data, err := json.Marshal(playlist)
	if err != nil {
		return apperrors.NewAppError(500, "Error serializing playlist data", err)
	}

	if err := r.rdb.Set(ctx, playlistKey(playlist.ID), data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving playlist", err)
	}

	timestamp := float64(playlist.CreatedAt.Unix())
	if err := r.rdb.ZAdd(ctx, playlistIndex, redis.Z{Score: timestamp, Member: playlist.ID}).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving playlist ID", err)
	}

	return nil
}

func (r *RedisPlaylistRepository) GetPlaylist(id string) (*Playlist, error) {
	val, err := r.rdb.Get(ctx, playlistKey(id)).Result()
	if err == redis.Nil {
		return nil, apperrors.NewAppError(404, "Playlist not found", errors.New("playlist not found"))
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting playlist", err)
	}

	var playlist Playlist
	if err := json.Unmarshal([]byte(val), &playlist); err != nil {
		return nil, apperrors.NewAppError(500, "Error unmarshalling playlist data", err)
	}

	return &playlist, nil
}

// GetPlaylists returns every playlist, newest first.
func (r *RedisPlaylistRepository) GetPlaylists() ([]Playlist, error) {
	ids, err := r.rdb.ZRevRange(ctx, playlistIndex, 0, -1).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting playlist IDs", err)
	}

	playlists := []Playlist{}
	for _, id := range ids {
		playlist, err := r.GetPlaylist(id)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *playlist)
	}

	return playlists, nil
}

func (r *RedisPlaylistRepository) GetUserPlaylists(userID uint) ([]Playlist, error) {
	playlists, err := r.GetPlaylists()
	if err != nil {
		return nil, err
	}

	owned := []Playlist{}
	for _, p := range playlists {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *RedisPlaylistRepository) DeletePlaylist(id string) error {
	if err := r.rdb.Del(ctx, playlistKey(id)).Err(); err != nil {
		return apperrors.NewAppError(500, "Error deleting playlist", err)
	}
	if err := r.rdb.ZRem(ctx, playlistIndex, id).Err(); err != nil {
		return apperrors.NewAppError(500, "Error removing playlist ID from index", err)
	}
	return nil
}

// MutatePlaylist applies mutate to the stored document inside an
// optimistic WATCH transaction, so two concurrent mutations of the same
// playlist never overwrite each other; the loser retries on a fresh read.
func (r *RedisPlaylistRepository) MutatePlaylist(id string, mutate func(*Playlist) error) (*Playlist, error) {
	var mutated *Playlist

	txn := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, playlistKey(id)).Result()
		if err == redis.Nil {
			return apperrors.NewAppError(404, "Playlist not found", errors.New("playlist not found"))
		} else if err != nil {
			return apperrors.NewAppError(500, "Error getting playlist", err)
		}

		var playlist Playlist
		if err := json.Unmarshal([]byte(val), &playlist); err != nil {
			return apperrors.NewAppError(500, "Error unmarshalling playlist data", err)
		}

		if err := mutate(&playlist); err != nil {
			return err
		}
		playlist.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(&playlist)
		if err != nil {
			return apperrors.NewAppError(500, "Error serializing playlist data", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, playlistKey(id), data, 0)
			return nil
		})
		if err == nil {
			mutated = &playlist
		}
		return err
	}

	for i := 0; i < maxMutateRetries; i++ {
		err := r.rdb.Watch(ctx, txn, playlistKey(id))
		if err == nil {
			return mutated, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, err
	}

	return nil, apperrors.NewAppError(500, "Error saving playlist", redis.TxFailedErr)
}
