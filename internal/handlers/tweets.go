package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myung2-love/Miniter/internal/feed"
	"github.com/myung2-love/Miniter/internal/logging"
	"github.com/myung2-love/Miniter/internal/models"
)

// TweetHandler implements tweet posting and timeline retrieval.
type TweetHandler struct {
	Auth Authenticator
	Feed Feed
}

// Create handles POST /api/v1/tweet requests.
func (h TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid tweet payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Tweet == "" {
		logger.Warn("tweet missing body", "userId", userID)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "tweet body is required"})
		return
	}

	id, err := h.Feed.PostTweet(ctx, userID, req.Tweet)
	if err != nil {
		if errors.Is(err, feed.ErrBodyTooLong) {
			logger.Warn("tweet body too long", "userId", userID)
			respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "tweet may not exceed 300 characters"})
			return
		}
		logger.Error("failed to post tweet", "error", err, "userId", userID)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to post tweet"})
		return
	}

	respondJSON(ctx, w, http.StatusCreated, tweetResponse{ID: id})
}

// Timeline handles GET /api/v1/timeline requests.
func (h TweetHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	userID, err := authorize(r, h.Auth)
	if err != nil {
		unauthorized(w, r, err)
		return
	}

	ctx, span := logging.StartSpan(ctx, "timeline")
	entries, err := h.Feed.Timeline(ctx, userID)
	span.End()
	if err != nil {
		logging.FromContext(ctx).Error("failed to load timeline", "error", err, "userId", userID)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to load timeline"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, newTimelineResponse(userID, entries))
}

type tweetRequest struct {
	Tweet string `json:"tweet"`
}

type tweetResponse struct {
	ID int64 `json:"id"`
}

type timelineEntryView struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

type timelineResponse struct {
	UserID   int64               `json:"user_id"`
	Timeline []timelineEntryView `json:"timeline"`
}

func newTimelineResponse(userID int64, entries []models.TimelineEntry) timelineResponse {
	views := make([]timelineEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, timelineEntryView{UserID: entry.UserID, Tweet: entry.Body})
	}
	return timelineResponse{UserID: userID, Timeline: views}
}
