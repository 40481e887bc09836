package music

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if msg := validatePayload(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := s.store.FindUserByEmail(r.Context(), req.Email); err == nil {
		writeError(w, http.StatusConflict, "User with given email already exists")
		return
	} else if !errors.Is(err, ErrUserNotFound) {
		s.logger.Error("register: find by email", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register: hash password", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	user, err := s.store.CreateUser(r.Context(), User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	})
	if err != nil {
		// The unique email index closes the race between the check above and
		// this insert.
		if errors.Is(err, ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "User with given email already exists")
			return
		}
		s.logger.Error("register: create user", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("register: issue token", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    user,
		"token":   token,
		"message": "Account created successfully",
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.FindUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("get user", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": user})
}
