package playlist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/danvelq/RaceTracker/internal/apperrors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisPlaylistRepository {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisPlaylistRepository(rdb)
}

func testPlaylist(id string, createdAt time.Time) *Playlist {
	return &Playlist{
		ID:        id,
		Name:      "Weeklies",
		Races:     []PlaylistRace{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestRepository_SaveAndGetPlaylist(t *testing.T) {
	repo := newTestRepository(t)
	p := testPlaylist("p1", time.Now().UTC())
	p.UserID = 7

	require.NoError(t, repo.SavePlaylist(p))

	got, err := repo.GetPlaylist("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "Weeklies", got.Name)
	assert.Equal(t, uint(7), got.UserID)
	assert.Empty(t, got.Races)
}

func TestRepository_GetPlaylist_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetPlaylist("missing")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestRepository_GetPlaylists_NewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Now().UTC()

	require.NoError(t, repo.SavePlaylist(testPlaylist("old", base.Add(-2*time.Hour))))
	require.NoError(t, repo.SavePlaylist(testPlaylist("mid", base.Add(-time.Hour))))
	require.NoError(t, repo.SavePlaylist(testPlaylist("new", base)))

	playlists, err := repo.GetPlaylists()
	require.NoError(t, err)
	require.Len(t, playlists, 3)
	assert.Equal(t, "new", playlists[0].ID)
	assert.Equal(t, "mid", playlists[1].ID)
	assert.Equal(t, "old", playlists[2].ID)
}

func TestRepository_GetUserPlaylists(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Now().UTC()

	mine := testPlaylist("mine", now)
	mine.UserID = 1
	other := testPlaylist("other", now.Add(time.Second))
	other.UserID = 2
	anonymous := testPlaylist("anon", now.Add(2*time.Second))

	require.NoError(t, repo.SavePlaylist(mine))
	require.NoError(t, repo.SavePlaylist(other))
	require.NoError(t, repo.SavePlaylist(anonymous))

	owned, err := repo.GetUserPlaylists(1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "mine", owned[0].ID)
}

func TestRepository_DeletePlaylist(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.SavePlaylist(testPlaylist("p1", time.Now().UTC())))

	require.NoError(t, repo.DeletePlaylist("p1"))

	_, err := repo.GetPlaylist("p1")
	assert.Error(t, err)

	playlists, err := repo.GetPlaylists()
	require.NoError(t, err)
	assert.Empty(t, playlists)
}

func TestRepository_MutatePlaylist(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.SavePlaylist(testPlaylist("p1", time.Now().UTC())))

	mutated, err := repo.MutatePlaylist("p1", func(p *Playlist) error {
		p.Races = append(p.Races, PlaylistRace{RaceID: "r1"})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, mutated.Races, 1)

	got, err := repo.GetPlaylist("p1")
	require.NoError(t, err)
	require.Len(t, got.Races, 1)
	assert.Equal(t, "r1", got.Races[0].RaceID)
}

func TestRepository_MutatePlaylist_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.MutatePlaylist("missing", func(p *Playlist) error {
		t.Fatal("mutate must not run for a missing playlist")
		return nil
	})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

// A write to the playlist between the transaction's read and its EXEC
// must abort the optimistic transaction; the retry re-reads the fresh
// document so neither writer's change is lost.
func TestRepository_MutatePlaylist_RetriesOnConcurrentWrite(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	writer := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { writer.Close() })

	repo := NewRedisPlaylistRepository(rdb)
	require.NoError(t, repo.SavePlaylist(testPlaylist("p1", time.Now().UTC())))

	calls := 0
	mutated, err := repo.MutatePlaylist("p1", func(p *Playlist) error {
		calls++
		if calls == 1 {
			// a second client attaches its own entry to the watched key
			conflicting := *p
			conflicting.Races = append([]PlaylistRace{}, p.Races...)
			conflicting.Races = append(conflicting.Races, PlaylistRace{RaceID: "r-other"})
			data, marshalErr := json.Marshal(&conflicting)
			require.NoError(t, marshalErr)
			require.NoError(t, writer.Set(ctx, playlistKey("p1"), data, 0).Err())
		}
		p.Races = append(p.Races, PlaylistRace{RaceID: "r-mine"})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "first attempt must fail and be retried")

	raceIDs := func(p *Playlist) []string {
		ids := []string{}
		for _, entry := range p.Races {
			ids = append(ids, entry.RaceID)
		}
		return ids
	}
	assert.Equal(t, []string{"r-other", "r-mine"}, raceIDs(mutated))

	got, err := repo.GetPlaylist("p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r-other", "r-mine"}, raceIDs(got))
}

func TestRepository_MutatePlaylist_MutateErrorLeavesDocument(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.SavePlaylist(testPlaylist("p1", time.Now().UTC())))

	wantErr := apperrors.NewAppError(400, "Race is already in playlist", nil)
	_, err := repo.MutatePlaylist("p1", func(p *Playlist) error {
		p.Name = "should not persist"
		return wantErr
	})
	assert.Equal(t, wantErr, err)

	got, err := repo.GetPlaylist("p1")
	require.NoError(t, err)
	assert.Equal(t, "Weeklies", got.Name)
}
