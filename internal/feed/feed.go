package feed

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/myung2-love/Miniter/internal/models"
)

// MaxTweetLength bounds tweet bodies, counted in characters.
const MaxTweetLength = 300

var (
	// ErrBodyTooLong indicates the tweet body exceeds MaxTweetLength characters.
	ErrBodyTooLong = errors.New("tweet body exceeds maximum length")
	// ErrSelfFollow indicates a user attempted to follow themselves. A user's
	// own tweets are always visible, so a self-edge is never meaningful.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// TweetStore persists authored messages and resolves the aggregated timeline.
type TweetStore interface {
	Create(ctx context.Context, tweet models.Tweet) (int64, error)
	ListTimeline(ctx context.Context, userID int64) ([]models.TimelineEntry, error)
}

// FollowStore persists directed follow edges between users.
type FollowStore interface {
	Create(ctx context.Context, follow models.Follow) error
	Delete(ctx context.Context, followerID, followedID int64) error
}

// Aggregator computes the set of tweets visible to a user: their own plus
// those of every user they follow.
type Aggregator struct {
	tweets  TweetStore
	follows FollowStore

	// NowFunc overrides the clock in tests.
	NowFunc func() time.Time
}

// NewAggregator constructs a feed aggregator over the provided stores.
func NewAggregator(tweets TweetStore, follows FollowStore) *Aggregator {
	if tweets == nil || follows == nil {
		panic("feed: tweet and follow stores must not be nil")
	}
	return &Aggregator{tweets: tweets, follows: follows}
}

// PostTweet validates and persists a new tweet, returning its generated
// identifier. The length check runs before any persistence.
func (a *Aggregator) PostTweet(ctx context.Context, authorID int64, body string) (int64, error) {
	if utf8.RuneCountInString(body) > MaxTweetLength {
		return 0, ErrBodyTooLong
	}

	id, err := a.tweets.Create(ctx, models.Tweet{
		UserID:    authorID,
		Body:      body,
		CreatedAt: a.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("insert tweet: %w", err)
	}

	return id, nil
}

// Timeline returns the tweets visible to the user, newest first. A user with
// no tweets and no followed users gets an empty timeline, not an error.
func (a *Aggregator) Timeline(ctx context.Context, userID int64) ([]models.TimelineEntry, error) {
	entries, err := a.tweets.ListTimeline(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query timeline: %w", err)
	}

	if entries == nil {
		entries = []models.TimelineEntry{}
	}

	return entries, nil
}

// Follow inserts a follow edge. Following the same user twice is idempotent.
func (a *Aggregator) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	err := a.follows.Create(ctx, models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  a.now(),
	})
	if err != nil {
		return fmt.Errorf("insert follow edge: %w", err)
	}

	return nil
}

// Unfollow removes a follow edge. Removing an edge that does not exist is a
// no-op, not an error.
func (a *Aggregator) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if err := a.follows.Delete(ctx, followerID, followedID); err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}
	return nil
}

func (a *Aggregator) now() time.Time {
	if a.NowFunc != nil {
		return a.NowFunc()
	}
	return time.Now().UTC()
}
