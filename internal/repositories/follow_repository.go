package repositories

import (
	"context"

	"github.com/myung2-love/Miniter/internal/models"
)

// FollowRepository defines data access for directed follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow models.Follow) error
	Delete(ctx context.Context, followerID, followedID int64) error
}
