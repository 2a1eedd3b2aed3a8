package handlers

import (
	"errors"
	"net/http"

	"github.com/myung2-love/Miniter/internal/logging"
	"github.com/myung2-love/Miniter/internal/repositories"
)

// AccountHandler implements account removal for the authenticated user.
type AccountHandler struct {
	Auth  Authenticator
	Users UserDeleter
}

// Delete handles DELETE /api/v1/users/me requests.
func (h AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	userID, err := authorize(r, h.Auth)
	if err != nil {
		unauthorized(w, r, err)
		return
	}

	if err := h.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn("account already removed", "userId", userID)
			respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "account not found"})
			return
		}
		logger.Error("failed to delete account", "error", err, "userId", userID)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to delete account"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
