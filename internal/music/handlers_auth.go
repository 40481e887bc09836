package music

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))

	if msg := validatePayload(creds); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := s.store.FindUserByEmail(r.Context(), creds.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Same response as a wrong password, to avoid user enumeration.
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error("login: find by email", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("login: issue token", "err", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    token,
		"message": "Signing in, please wait",
	})
}
