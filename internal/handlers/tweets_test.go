package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/myung2-love/Miniter/internal/auth"
	"github.com/myung2-love/Miniter/internal/feed"
	"github.com/myung2-love/Miniter/internal/models"
)

// inMemoryGraph backs both feed stores so timeline visibility tracks edges.
type inMemoryGraph struct {
	nextID int64
	tweets []models.Tweet
	edges  map[[2]int64]bool
}

func newInMemoryGraph() *inMemoryGraph {
	return &inMemoryGraph{edges: make(map[[2]int64]bool)}
}

func (g *inMemoryGraph) Create(_ context.Context, tweet models.Tweet) (int64, error) {
	g.nextID++
	tweet.ID = g.nextID
	g.tweets = append(g.tweets, tweet)
	return tweet.ID, nil
}

func (g *inMemoryGraph) ListTimeline(_ context.Context, userID int64) ([]models.TimelineEntry, error) {
	var entries []models.TimelineEntry
	for i := len(g.tweets) - 1; i >= 0; i-- {
		tweet := g.tweets[i]
		if tweet.UserID == userID || g.edges[[2]int64{userID, tweet.UserID}] {
			entries = append(entries, models.TimelineEntry{UserID: tweet.UserID, Body: tweet.Body})
		}
	}
	return entries, nil
}

type inMemoryFollowStore struct {
	graph *inMemoryGraph
}

func (s inMemoryFollowStore) Create(_ context.Context, follow models.Follow) error {
	s.graph.edges[[2]int64{follow.FollowerID, follow.FollowedID}] = true
	return nil
}

func (s inMemoryFollowStore) Delete(_ context.Context, followerID, followedID int64) error {
	delete(s.graph.edges, [2]int64{followerID, followedID})
	return nil
}

func newTestFeed() (*feed.Aggregator, *inMemoryGraph) {
	graph := newInMemoryGraph()
	return feed.NewAggregator(graph, inMemoryFollowStore{graph: graph}), graph
}

func issueToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.SignToken(userID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTweetHandlerCreate(t *testing.T) {
	aggregator, graph := newTestFeed()
	handler := TweetHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(tweetRequest{Tweet: "hello world"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tweet", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 7))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d got %d", http.StatusCreated, rec.Code)
	}

	var resp tweetResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("expected a generated tweet id")
	}

	if len(graph.tweets) != 1 || graph.tweets[0].UserID != 7 {
		t.Fatalf("expected tweet stored for user 7, got %+v", graph.tweets)
	}
}

func TestTweetHandlerCreateTooLong(t *testing.T) {
	aggregator, graph := newTestFeed()
	handler := TweetHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(tweetRequest{Tweet: strings.Repeat("a", feed.MaxTweetLength+1)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tweet", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 7))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d got %d", http.StatusBadRequest, rec.Code)
	}
	if len(graph.tweets) != 0 {
		t.Fatal("rejected tweet must not be stored")
	}
}

func TestTweetHandlerCreateUnauthenticated(t *testing.T) {
	aggregator, _ := newTestFeed()
	handler := TweetHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(tweetRequest{Tweet: "hello"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tweet", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d got %d", http.StatusUnauthorized, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 401 body, got %q", rec.Body.String())
	}
}

func TestTweetHandlerCreateExpiredToken(t *testing.T) {
	aggregator, _ := newTestFeed()
	handler := TweetHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	expired, err := auth.SignToken(7, []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	body, err := json.Marshal(tweetRequest{Tweet: "hello"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tweet", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestTweetHandlerTimeline(t *testing.T) {
	aggregator, _ := newTestFeed()
	handler := TweetHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}
	ctx := context.Background()

	if _, err := aggregator.PostTweet(ctx, 1, "from alice"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := aggregator.PostTweet(ctx, 2, "from bob"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if err := aggregator.Follow(ctx, 2, 1); err != nil {
		t.Fatalf("follow: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timeline", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 2))
	rec := httptest.NewRecorder()

	handler.Timeline(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp timelineResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.UserID != 2 {
		t.Fatalf("expected viewer id 2 got %d", resp.UserID)
	}
	if len(resp.Timeline) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(resp.Timeline))
	}
}
