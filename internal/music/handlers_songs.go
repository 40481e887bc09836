package music

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadSize = 32 << 20 // 32 MiB multipart memory cap

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := SongRequest{
		Name:     r.FormValue("name"),
		Artist:   r.FormValue("artist"),
		Img:      r.FormValue("img"),
		Duration: r.FormValue("duration"),
	}
	if msg := validatePayload(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Audio file is required")
		return
	}
	defer file.Close()

	objectName := "songs/" + uuid.NewString() + filepath.Ext(header.Filename)
	audioURL, err := s.uploads.Upload(r.Context(), objectName, file, header.Size,
		header.Header.Get("Content-Type"))
	if err != nil {
		s.logger.Error("create song: upload audio", "object", objectName, "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	song, err := s.store.CreateSong(r.Context(), Song{
		Name:     req.Name,
		Artist:   req.Artist,
		Song:     audioURL,
		Img:      req.Img,
		Duration: req.Duration,
	})
	if err != nil {
		s.logger.Error("create song: persist", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"data":    song,
		"message": "Song created successfully",
	})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.store.ListSongs(r.Context())
	if err != nil {
		s.logger.Error("list songs", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch songs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": songs})
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	var update SongUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	song, err := s.store.UpdateSong(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		if errors.Is(err, ErrSongNotFound) {
			writeError(w, http.StatusNotFound, "Song not found")
			return
		}
		s.logger.Error("update song", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to update song")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    song,
		"message": "Updated song successfully",
	})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteSong(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrSongNotFound) {
			writeError(w, http.StatusNotFound, "Song not found")
			return
		}
		s.logger.Error("delete song", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete song")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Song deleted successfully",
	})
}
