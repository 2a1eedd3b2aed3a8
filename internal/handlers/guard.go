package handlers

import (
	"net/http"
	"strings"

	"github.com/myung2-love/Miniter/internal/logging"
)

// authorize extracts the bearer token from the Authorization header and
// resolves it to a user identifier. Every protected handler calls it before
// touching user-scoped data.
func authorize(r *http.Request, auth Authenticator) (int64, error) {
	token := strings.TrimSpace(r.Header.Get("Authorization"))
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	return auth.Authenticate(token)
}

// unauthorized writes the 401 response for a failed guard: status only, no body.
func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Warn("request rejected", "error", err)
	w.WriteHeader(http.StatusUnauthorized)
}
