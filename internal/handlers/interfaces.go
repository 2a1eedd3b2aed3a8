package handlers

import (
	"context"

	"github.com/myung2-love/Miniter/internal/models"
)

// Authenticator establishes and verifies user identity for the HTTP layer.
type Authenticator interface {
	Register(ctx context.Context, name, email, profile, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(token string) (int64, error)
}

// Feed exposes the timeline and social-graph operations to the HTTP layer.
type Feed interface {
	PostTweet(ctx context.Context, authorID int64, body string) (int64, error)
	Timeline(ctx context.Context, userID int64) ([]models.TimelineEntry, error)
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
}

// UserDeleter removes an account; tweets and follow edges cascade at the
// storage layer.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}
