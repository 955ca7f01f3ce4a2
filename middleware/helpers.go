package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// SessionExistsFunc reports whether an editor session is live.
type SessionExistsFunc func(sessionID string) bool

// RequireSession rejects requests whose {sessionID} URL parameter does not
// name a live session and stores the id in the context otherwise.
func RequireSession(exists SessionExistsFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
			if sessionID == "" {
				writeError(w, http.StatusBadRequest, "missing sessionID in URL path")
				return
			}
			if !exists(sessionID) {
				writeError(w, http.StatusNotFound, "editor session not found")
				return
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(sessionContextKey).(string)
	if !ok || sessionID == "" {
		return "", errors.New("session id not found in context")
	}
	return sessionID, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
