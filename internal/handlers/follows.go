package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myung2-love/Miniter/internal/feed"
	"github.com/myung2-love/Miniter/internal/logging"
	"github.com/myung2-love/Miniter/internal/repositories"
)

// FollowHandler implements follow-graph mutation endpoints. The follower is
// always the authenticated user; only the target comes from the payload.
type FollowHandler struct {
	Auth Authenticator
	Feed Feed
}

// Follow handles POST /api/v1/follow requests.
func (h FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
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

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid follow payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Follow == 0 {
		logger.Warn("follow missing target", "userId", userID)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "follow target is required"})
		return
	}

	if err := h.Feed.Follow(ctx, userID, req.Follow); err != nil {
		switch {
		case errors.Is(err, feed.ErrSelfFollow):
			logger.Warn("self follow rejected", "userId", userID)
			respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "cannot follow yourself"})
		case errors.Is(err, repositories.ErrNotFound):
			logger.Warn("follow target missing", "userId", userID, "targetId", req.Follow)
			respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "user not found"})
		default:
			logger.Error("failed to follow", "error", err, "userId", userID, "targetId", req.Follow)
			respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to follow user"})
		}
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Unfollow handles POST /api/v1/unfollow requests. Unfollowing a user who was
// never followed succeeds.
func (h FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
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

	var req unfollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid unfollow payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Unfollow == 0 {
		logger.Warn("unfollow missing target", "userId", userID)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "unfollow target is required"})
		return
	}

	if err := h.Feed.Unfollow(ctx, userID, req.Unfollow); err != nil {
		logger.Error("failed to unfollow", "error", err, "userId", userID, "targetId", req.Unfollow)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to unfollow user"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type followRequest struct {
	Follow int64 `json:"follow"`
}

type unfollowRequest struct {
	Unfollow int64 `json:"unfollow"`
}
