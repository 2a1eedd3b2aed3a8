package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFollowHandlerFollow(t *testing.T) {
	aggregator, graph := newTestFeed()
	handler := FollowHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(followRequest{Follow: 9})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 3))
	rec := httptest.NewRecorder()

	handler.Follow(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
	if !graph.edges[[2]int64{3, 9}] {
		t.Fatal("expected follow edge to be stored")
	}
}

func TestFollowHandlerSelfFollow(t *testing.T) {
	aggregator, graph := newTestFeed()
	handler := FollowHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(followRequest{Follow: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 3))
	rec := httptest.NewRecorder()

	handler.Follow(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d got %d", http.StatusBadRequest, rec.Code)
	}
	if len(graph.edges) != 0 {
		t.Fatal("self-follow must not create an edge")
	}
}

func TestFollowHandlerUnfollowAbsentEdge(t *testing.T) {
	aggregator, _ := newTestFeed()
	handler := FollowHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(unfollowRequest{Unfollow: 9})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/unfollow", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 3))
	rec := httptest.NewRecorder()

	handler.Unfollow(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected unfollow of absent edge to succeed, got %d", rec.Code)
	}
}

func TestFollowHandlerUnauthenticated(t *testing.T) {
	aggregator, _ := newTestFeed()
	handler := FollowHandler{Auth: newTestAuthenticator(newInMemoryUserStore()), Feed: aggregator}

	body, err := json.Marshal(followRequest{Follow: 9})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Follow(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d got %d", http.StatusUnauthorized, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 401 body, got %q", rec.Body.String())
	}
}
