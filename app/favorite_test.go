package app

import (
	"net/http"
	"testing"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	ts := setupTestServer(t)
	ada := ts.register(t, "ada")
	bob := ts.register(t, "bob")

	first := models.Track{ID: "t1", SpotifyID: "s1", Title: "First"}
	second := models.Track{ID: "t2", Title: "Second"}

	check := func(t *testing.T, user testUser, trackID string) bool {
		t.Helper()

		rec := ts.do(t, http.MethodGet, "/api/favorites/check/"+trackID, user.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		return decode[models.FavoriteCheckResponse](t, rec).IsFavorited
	}

	t.Run("requires a token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/favorites", "", nil)
		requireError(t, rec, http.StatusUnauthorized, models.ErrNoToken)
	})

	t.Run("add", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/favorites", ada.Token, models.TrackRequest{Track: &first})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		fav := decode[models.FavoriteResponse](t, rec)
		assert.NotEmpty(t, fav.ID)
		assert.Equal(t, ada.ID, fav.User)
		assert.Equal(t, "First", fav.Track.Title)

		rec = ts.do(t, http.MethodPost, "/api/favorites", ada.Token, models.TrackRequest{Track: &second})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("duplicate", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/favorites", ada.Token, models.TrackRequest{Track: &first})
		requireError(t, rec, http.StatusBadRequest, models.ErrAlreadyFavorited)

		rec = ts.do(t, http.MethodGet, "/api/favorites", ada.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]models.FavoriteResponse](t, rec), 2)
	})

	t.Run("track required", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/favorites", ada.Token, models.TrackRequest{})
		requireError(t, rec, http.StatusBadRequest, models.ErrTrackRequired)
	})

	t.Run("list is newest first and per user", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/favorites", ada.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		favs := decode[[]models.FavoriteResponse](t, rec)
		require.Len(t, favs, 2)
		assert.Equal(t, "Second", favs[0].Track.Title)
		assert.Equal(t, "First", favs[1].Track.Title)

		rec = ts.do(t, http.MethodGet, "/api/favorites", bob.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]models.FavoriteResponse](t, rec))
	})

	t.Run("check by either identifier", func(t *testing.T) {
		assert.True(t, check(t, ada, "s1"))
		assert.True(t, check(t, ada, "t1"))
		assert.True(t, check(t, ada, "t2"))
		assert.False(t, check(t, ada, "t3"))
		assert.False(t, check(t, bob, "s1"))
	})

	t.Run("remove", func(t *testing.T) {
		rec := ts.do(t, http.MethodDelete, "/api/favorites/t1", ada.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Removed from favorites", decode[models.MessageResponse](t, rec).Message)
		assert.False(t, check(t, ada, "s1"))

		rec = ts.do(t, http.MethodDelete, "/api/favorites/t1", ada.Token, nil)
		requireError(t, rec, http.StatusNotFound, models.ErrFavoriteNotFound)

		rec = ts.do(t, http.MethodDelete, "/api/favorites/t2", bob.Token, nil)
		requireError(t, rec, http.StatusNotFound, models.ErrFavoriteNotFound)
	})
}

func TestFavoritesEscapedTrackIDs(t *testing.T) {
	ts := setupTestServer(t)
	ada := ts.register(t, "ada")

	tests := []struct {
		id      string
		escaped string
	}{
		{id: "x%41", escaped: "x%2541"},
		{id: "a/b", escaped: "a%2Fb"},
		{id: "lo fi", escaped: "lo%20fi"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/favorites", ada.Token, models.TrackRequest{
				Track: &models.Track{ID: tt.id},
			})
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			rec = ts.do(t, http.MethodGet, "/api/favorites/check/"+tt.escaped, ada.Token, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, decode[models.FavoriteCheckResponse](t, rec).IsFavorited)

			rec = ts.do(t, http.MethodDelete, "/api/favorites/"+tt.escaped, ada.Token, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}
