package music

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHandleToggleLike(t *testing.T) {
	songID := primitive.NewObjectID()
	song := Song{ID: songID, Name: "Track", Artist: "Artist"}
	userID := primitive.NewObjectID()

	t.Run("Add", func(t *testing.T) {
		user := User{ID: userID, LikedSongs: []string{}}
		store := new(MockStore)
		store.On("FindSongByID", mock.Anything, songID.Hex()).Return(song, nil)
		store.On("FindUserByID", mock.Anything, userID.Hex()).Return(user, nil)
		store.On("AddLikedSong", mock.Anything, userID.Hex(), songID.Hex()).Return(nil)
		server := newTestServer(store, nil)

		req := httptest.NewRequest("PUT", "/api/songs/like/"+songID.Hex(), nil)
		req.Header.Set("Authorization", bearerToken(t, server, user))
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Added to your liked songs")
		store.AssertExpectations(t)
	})

	t.Run("Remove", func(t *testing.T) {
		user := User{ID: userID, LikedSongs: []string{songID.Hex()}}
		store := new(MockStore)
		store.On("FindSongByID", mock.Anything, songID.Hex()).Return(song, nil)
		store.On("FindUserByID", mock.Anything, userID.Hex()).Return(user, nil)
		store.On("RemoveLikedSong", mock.Anything, userID.Hex(), songID.Hex()).Return(nil)
		server := newTestServer(store, nil)

		req := httptest.NewRequest("PUT", "/api/songs/like/"+songID.Hex(), nil)
		req.Header.Set("Authorization", bearerToken(t, server, user))
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Removed from your liked songs")
		store.AssertExpectations(t)
	})

	t.Run("Song Does Not Exist", func(t *testing.T) {
		store := new(MockStore)
		missing := primitive.NewObjectID().Hex()
		store.On("FindSongByID", mock.Anything, missing).Return(Song{}, ErrSongNotFound)
		server := newTestServer(store, nil)

		req := httptest.NewRequest("PUT", "/api/songs/like/"+missing, nil)
		req.Header.Set("Authorization", bearerToken(t, server, User{ID: userID}))
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "AddLikedSong", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No Token", func(t *testing.T) {
		store := new(MockStore)
		server := newTestServer(store, nil)

		req := httptest.NewRequest("PUT", "/api/songs/like/"+songID.Hex(), nil)
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// Toggling twice returns the relation to its original state.
func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	songID := primitive.NewObjectID()
	song := Song{ID: songID, Name: "Track", Artist: "Artist"}
	userID := primitive.NewObjectID()

	store := new(MockStore)
	server := newTestServer(store, nil)
	token := bearerToken(t, server, User{ID: userID})

	store.On("FindSongByID", mock.Anything, songID.Hex()).Return(song, nil)
	// First call: not liked yet, so it gets added.
	store.On("FindUserByID", mock.Anything, userID.Hex()).
		Return(User{ID: userID, LikedSongs: []string{}}, nil).Once()
	store.On("AddLikedSong", mock.Anything, userID.Hex(), songID.Hex()).Return(nil).Once()
	// Second call: liked now, so it gets removed.
	store.On("FindUserByID", mock.Anything, userID.Hex()).
		Return(User{ID: userID, LikedSongs: []string{songID.Hex()}}, nil).Once()
	store.On("RemoveLikedSong", mock.Anything, userID.Hex(), songID.Hex()).Return(nil).Once()

	toggle := func() string {
		req := httptest.NewRequest("PUT", "/api/songs/like/"+songID.Hex(), nil)
		req.Header.Set("Authorization", token)
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	assert.Contains(t, toggle(), "Added")
	assert.Contains(t, toggle(), "Removed")
	store.AssertExpectations(t)
}

func TestHandleListLiked(t *testing.T) {
	userID := primitive.NewObjectID()
	songID := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		user := User{ID: userID, LikedSongs: []string{songID.Hex()}}
		liked := []Song{{ID: songID, Name: "Track", Artist: "Artist"}}

		store := new(MockStore)
		store.On("FindUserByID", mock.Anything, userID.Hex()).Return(user, nil)
		store.On("FindSongsByIDs", mock.Anything, []string{songID.Hex()}).Return(liked, nil)
		server := newTestServer(store, nil)

		req := httptest.NewRequest("GET", "/api/songs/like", nil)
		req.Header.Set("Authorization", bearerToken(t, server, user))
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []Song `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, songID, resp.Data[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		user := User{ID: userID, LikedSongs: []string{}}

		store := new(MockStore)
		store.On("FindUserByID", mock.Anything, userID.Hex()).Return(user, nil)
		store.On("FindSongsByIDs", mock.Anything, []string{}).Return([]Song{}, nil)
		server := newTestServer(store, nil)

		req := httptest.NewRequest("GET", "/api/songs/like", nil)
		req.Header.Set("Authorization", bearerToken(t, server, user))
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []Song `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data)
	})

	t.Run("No Token", func(t *testing.T) {
		server := newTestServer(new(MockStore), nil)

		req := httptest.NewRequest("GET", "/api/songs/like", nil)
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
