package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jtng3/taskade/internal/domain"
	"github.com/jtng3/taskade/internal/graph"
	"github.com/jtng3/taskade/internal/service"
)

// Authenticate builds the per-request identity context from the
// Authorization header.
//
//   - no header: the request proceeds anonymously.
//   - invalid, expired, or forged token: the request is rejected with 401.
//     An unusable token is a hard error, not a downgrade to anonymous.
//   - valid token whose subject no longer exists: anonymous.
//   - valid token with a known subject: that user is placed in the context.
func Authenticate(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			return
		}

		user, err := auth.GetUserByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Token outlived its account; treat as anonymous.
				next.ServeHTTP(w, r)
				return
			}
			slog.Error("load user for token", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		next.ServeHTTP(w, r.WithContext(graph.WithUser(r.Context(), user)))
	})
}

// bearerToken extracts the token from the Authorization header. A "Bearer "
// prefix is accepted but not required.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return header
}
