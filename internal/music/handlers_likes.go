package music

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleToggleLike alternates the (user, song) like state on every call.
func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "id")

	song, err := s.store.FindSongByID(r.Context(), songID)
	if err != nil {
		if errors.Is(err, ErrSongNotFound) {
			writeError(w, http.StatusBadRequest, "Song does not exist")
			return
		}
		s.logger.Error("toggle like: find song", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to update liked songs")
		return
	}

	claims := claimsFromContext(r.Context())
	user, err := s.store.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error("toggle like: find user", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to update liked songs")
		return
	}

	var msg string
	if user.Likes(song.ID.Hex()) {
		err = s.store.RemoveLikedSong(r.Context(), user.ID.Hex(), song.ID.Hex())
		msg = "Removed from your liked songs"
	} else {
		err = s.store.AddLikedSong(r.Context(), user.ID.Hex(), song.ID.Hex())
		msg = "Added to your liked songs"
	}
	if err != nil {
		s.logger.Error("toggle like: update user", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to update liked songs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleListLiked(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	user, err := s.store.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error("list liked: find user", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch liked songs")
		return
	}

	songs, err := s.store.FindSongsByIDs(r.Context(), user.LikedSongs)
	if err != nil {
		s.logger.Error("list liked: find songs", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch liked songs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": songs})
}
