package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/myung2-love/Miniter/internal/models"
)

func TestAccountHandlerDelete(t *testing.T) {
	store := newInMemoryUserStore()
	store.users["gone@example.com"] = models.User{ID: 4, Email: "gone@example.com"}
	handler := AccountHandler{Auth: newTestAuthenticator(store), Users: store}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 4))
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d got %d", http.StatusNoContent, rec.Code)
	}

	if _, err := store.FindByEmail(context.Background(), "gone@example.com"); err == nil {
		t.Fatal("expected account to be removed")
	}
}

func TestAccountHandlerDeleteTwice(t *testing.T) {
	store := newInMemoryUserStore()
	store.users["gone@example.com"] = models.User{ID: 4, Email: "gone@example.com"}
	handler := AccountHandler{Auth: newTestAuthenticator(store), Users: store}

	token := issueToken(t, 4)

	for i, want := range []int{http.StatusNoContent, http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		// The token stays valid after deletion (tokens are stateless), so the
		// second attempt reaches the store and finds nothing.
		if rec.Code != want {
			t.Fatalf("attempt %d: expected status %d got %d", i+1, want, rec.Code)
		}
	}
}

func TestAccountHandlerDeleteUnauthenticated(t *testing.T) {
	store := newInMemoryUserStore()
	handler := AccountHandler{Auth: newTestAuthenticator(store), Users: store}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d got %d", http.StatusUnauthorized, rec.Code)
	}
}
