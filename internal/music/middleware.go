package music

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxClaimsKey struct{}

func claimsFromContext(ctx context.Context) *TokenClaims {
	claims, _ := ctx.Value(ctxClaimsKey{}).(*TokenClaims)
	return claims
}

// requireAuth rejects requests without a valid bearer token and stores the
// decoded claims in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			writeError(w, http.StatusUnauthorized, "Access denied, no token provided")
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeError(w, http.StatusUnauthorized, "invalid Authorization header")
			return
		}

		claims, err := s.parseToken(parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin runs the auth check first, then the admin flag check.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return s.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "Access denied, you are not an admin")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// requireObjectID rejects routes whose {id} param is not a valid ObjectID hex.
func requireObjectID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id")); err != nil {
			writeError(w, http.StatusNotFound, "Invalid ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}
