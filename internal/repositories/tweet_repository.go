package repositories

import (
	"context"

	"github.com/myung2-love/Miniter/internal/models"
)

// TweetRepository defines data access for tweets, including the aggregated
// timeline query across the follow graph.
type TweetRepository interface {
	Create(ctx context.Context, tweet models.Tweet) (int64, error)
	ListTimeline(ctx context.Context, userID int64) ([]models.TimelineEntry, error)
}
